package ui

import (
	"io"

	"github.com/fatih/color"
)

// ColorMode controls when output is colorized.
type ColorMode string

const (
	// ColorModeAuto colorizes only when writing to a terminal.
	ColorModeAuto ColorMode = "auto"

	// ColorModeAlways forces colorized output.
	ColorModeAlways ColorMode = "always"

	// ColorModeNever disables colorized output.
	ColorModeNever ColorMode = "never"
)

// Printer renders the tool's console status lines. Progress lines are blue,
// success lines green and error lines red, each with the marker the level
// implies ([*], [+], [-]).
type Printer struct {
	out    io.Writer
	errOut io.Writer

	info    *color.Color
	success *color.Color
	failure *color.Color
}

// NewPrinter creates a Printer writing status to out and errors to errOut.
func NewPrinter(out, errOut io.Writer, mode ColorMode) *Printer {
	p := &Printer{
		out:     out,
		errOut:  errOut,
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	// ColorModeAuto leaves the library's terminal detection in charge,
	// which also honors NO_COLOR.
	switch mode {
	case ColorModeAlways:
		p.info.EnableColor()
		p.success.EnableColor()
		p.failure.EnableColor()
	case ColorModeNever:
		p.info.DisableColor()
		p.success.DisableColor()
		p.failure.DisableColor()
	}

	return p
}

// Infof prints a progress line.
func (p *Printer) Infof(format string, args ...interface{}) {
	p.info.Fprintf(p.out, "[*] "+format+"\n", args...)
}

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...interface{}) {
	p.success.Fprintf(p.out, "[+] "+format+"\n", args...)
}

// Errorf prints an error line to the error stream.
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.failure.Fprintf(p.errOut, "[-] "+format+"\n", args...)
}
