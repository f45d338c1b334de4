package domain

import "go.trai.ch/zerr"

var (
	// ErrLockReadFailed is returned when the lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockParseFailed is returned when the lock file is not valid JSON.
	ErrLockParseFailed = zerr.New("failed to parse lock file")

	// ErrMalformedLock is returned when the lock data is missing a required field.
	ErrMalformedLock = zerr.New("malformed lock data")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingRootName is returned when no root package name is configured.
	ErrMissingRootName = zerr.New("root package name is not configured")

	// ErrFailedToGetRoot is returned when the working directory cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of working directory")

	// ErrArtifactRenderFailed is returned when the generated source is not valid Go.
	ErrArtifactRenderFailed = zerr.New("failed to render version file")

	// ErrArtifactStatFailed is returned when the target directory cannot be inspected.
	ErrArtifactStatFailed = zerr.New("failed to stat target directory")

	// ErrArtifactWriteFailed is returned when the version file cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write version file")

	// ErrArtifactChmodFailed is returned when the version file mode cannot be set.
	ErrArtifactChmodFailed = zerr.New("failed to set version file mode")

	// ErrArtifactReadFailed is returned when the existing version file cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read version file")

	// ErrArtifactStale is returned by check when the version file differs from the lock data.
	ErrArtifactStale = zerr.New("version file is out of date")

	// ErrArtifactMissing is returned by check when no version file exists.
	ErrArtifactMissing = zerr.New("version file does not exist")

	// ErrNotDirectDependency is returned by check when the project does not require the coordinator package.
	ErrNotDirectDependency = zerr.New("project does not require " + CoordinatorPackage)

	// ErrUnknownEvent is returned when a lifecycle event has no registered hook.
	ErrUnknownEvent = zerr.New("unknown lifecycle event")

	// ErrPackageNotInstalled is returned when a requested package is not in the version map.
	ErrPackageNotInstalled = zerr.New("package is not installed")

	// ErrUnknownOutputFormat is returned when an output format flag is not recognised.
	ErrUnknownOutputFormat = zerr.New("unknown output format")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
