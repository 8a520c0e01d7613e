package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/colours/internal/colour"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
)

// swatch returns a solid block of c, width characters wide.
func swatch(c colour.Packed, width int) string {
	r, g, b := colour.Decompose(c)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// swatchWithText returns a block of c with text centred on it, drawn in the
// black or white picked by colour.ContrastingColour.
func swatchWithText(c colour.Packed, text string, width int) string {
	r, g, b := colour.Decompose(c)
	fr, fg, fb := colour.Decompose(colour.ContrastingColour(c))

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	fgc := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fr, fg, fb, ansiSuffix)

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg + fgc + display + ansiReset
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// previewer renders swatches only when enabled and writing to a terminal.
type previewer struct {
	enabled bool
	width   int
}

func (a *app) previewer(w io.Writer) previewer {
	return previewer{
		enabled: a.settings.Preview && isTerminal(w),
		width:   a.settings.PreviewWidth,
	}
}

// label returns hex, preceded by a swatch when previews are enabled.
func (p previewer) label(c colour.Packed) string {
	if !p.enabled {
		return c.Hex()
	}
	return swatch(c, p.width) + " " + c.Hex()
}
