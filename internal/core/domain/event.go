package domain

// LifecycleEvent identifies a host dependency manager lifecycle point.
type LifecycleEvent string

const (
	// EventPostInstall fires after dependencies have been installed.
	EventPostInstall LifecycleEvent = "post-install-cmd"

	// EventPostUpdate fires after dependencies have been updated.
	EventPostUpdate LifecycleEvent = "post-update-cmd"
)

// String returns the event identifier.
func (e LifecycleEvent) String() string {
	return string(e)
}

// WriteOutcome reports what the artifact writer did.
type WriteOutcome uint8

const (
	// OutcomeNone means the pipeline stopped before the writer was reached.
	OutcomeNone WriteOutcome = iota
	// OutcomeWritten means the version file was overwritten.
	OutcomeWritten
	// OutcomeSkipped means the target directory was missing and nothing was written.
	OutcomeSkipped
)

// String returns a lower-case name for the outcome.
func (o WriteOutcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "none"
	}
}
