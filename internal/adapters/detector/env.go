// Package detector selects the log format from the environment.
package detector

import (
	"os"

	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents how log records are rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty forces colored output.
	ModePretty
	// ModePlain forces uncolored human-readable output.
	ModePlain
	// ModeJSON forces one JSON object per record.
	ModeJSON
)

// String returns the flag value selecting m.
func (m OutputMode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// Logs go to stderr, so it checks whether stderr is a TTY and whether CI is set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	return detect(isTTY, os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModePretty
}

// ResolveMode applies the --log-format flag to the auto-detected mode.
// userFlag should be one of "auto", "pretty", "plain", "json" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) (OutputMode, error) {
	switch userFlag {
	case "pretty":
		return ModePretty, nil
	case "plain":
		return ModePlain, nil
	case "json":
		return ModeJSON, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return ModeAuto, zerr.With(domain.ErrUnknownOutputFormat, "log_format", userFlag)
	}
}
