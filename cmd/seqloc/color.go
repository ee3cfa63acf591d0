package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds color formatters for human output
type styles struct {
	heading  *color.Color
	id       *color.Color
	kind     *color.Color
	location *color.Color
	reverse  *color.Color
	remote   *color.Color
	metadata *color.Color
}

// newStyles creates color formatters.
// enabled=false respects --color never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:  color.New(color.Bold),
		id:       color.New(color.FgHiGreen),
		kind:     color.New(color.Bold, color.FgHiBlue),
		location: color.New(color.FgYellow),
		reverse:  color.New(color.FgMagenta),
		remote:   color.New(color.FgRed),
		metadata: color.New(color.FgHiBlue),
	}

	if !enabled {
		s.heading.DisableColor()
		s.id.DisableColor()
		s.kind.DisableColor()
		s.location.DisableColor()
		s.reverse.DisableColor()
		s.remote.DisableColor()
		s.metadata.DisableColor()
	}

	return s
}

// resolveStyles applies a --color mode (auto, always, never).
func resolveStyles(mode string) (*styles, error) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		// Color only when stdout is a TTY and NO_COLOR is not set
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""
	default:
		return nil, fmt.Errorf("unknown color mode: %s", mode)
	}
	return newStyles(!color.NoColor), nil
}
