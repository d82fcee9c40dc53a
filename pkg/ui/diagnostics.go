package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Banner prefixes every diagnostics block.
const Banner = "xpile:"

// Diagnostics prints resolution failures for the user.
type Diagnostics struct {
	out   io.Writer
	theme Theme
}

// NewDiagnostics returns a printer writing to w. Colors are used only when
// w is a terminal with color support and NO_COLOR is unset.
func NewDiagnostics(w io.Writer) *Diagnostics {
	r := lipgloss.NewRenderer(w)
	if !colorEnabled(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Diagnostics{out: w, theme: defaultTheme(r)}
}

// NewDiagnosticsWithTheme returns a printer using the given theme as is.
func NewDiagnosticsWithTheme(w io.Writer, theme Theme) *Diagnostics {
	return &Diagnostics{out: w, theme: theme}
}

// Report writes the banner followed by one indented line per message of
// err.
func (d *Diagnostics) Report(err error) error {
	if err == nil {
		return nil
	}
	if _, werr := fmt.Fprintln(d.out, d.theme.Banner.Render(Banner)); werr != nil {
		return werr
	}
	for _, msg := range errors.Messages(err) {
		if _, werr := fmt.Fprintf(d.out, "  %s\n", d.theme.Message.Render(msg)); werr != nil {
			return werr
		}
	}
	return nil
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}
