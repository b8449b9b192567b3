// Package output creates termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/spaceman/internal/core/domain"
)

// ColorProfile returns the profile for the given mode.
// In auto mode NO_COLOR forces Ascii, otherwise the terminal is asked.
func ColorProfile(mode domain.ColorMode) termenv.Profile {
	switch mode {
	case domain.ColorNever:
		return termenv.Ascii
	case domain.ColorAlways:
		return termenv.ANSI256
	case domain.ColorAuto:
	}
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w (stderr when nil) with the profile for mode.
func New(w io.Writer, mode domain.ColorMode, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(mode)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
