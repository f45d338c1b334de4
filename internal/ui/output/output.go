// Package output builds termenv outputs for the log handlers.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the profile for interactive terminals.
// NO_COLOR forces Ascii, otherwise the terminal capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileASCII returns the profile for plain output without escape codes.
// It is used when stderr is not a terminal or CI is set.
func ColorProfileASCII() termenv.Profile {
	return termenv.Ascii
}

// NewWithProfile creates a termenv.Output on w using the profile chosen by profileFn.
// A nil w writes to stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	return termenv.NewOutput(w,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)
}
