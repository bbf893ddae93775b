package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Notifier displays editor feedback. The editing loop funnels every warning,
// validation failure and success notice through it.
type Notifier interface {
	Warn(msg string)
	Error(msg string)
	Success(msg string)
	Info(msg string)
}

// PtermNotifier prints styled notices with pterm prefix printers.
type PtermNotifier struct {
	out io.Writer
}

// NewPtermNotifier returns a notifier writing to w (stdout when nil).
func NewPtermNotifier(w io.Writer) *PtermNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &PtermNotifier{out: w}
}

func (n *PtermNotifier) Warn(msg string)    { n.print(pterm.Warning, msg) }
func (n *PtermNotifier) Error(msg string)   { n.print(pterm.Error, msg) }
func (n *PtermNotifier) Success(msg string) { n.print(pterm.Success, msg) }
func (n *PtermNotifier) Info(msg string)    { n.print(pterm.Info, msg) }

func (n *PtermNotifier) print(printer pterm.PrefixPrinter, msg string) {
	fmt.Fprint(n.out, printer.Sprintln(msg))
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Warn(string)    {}
func (Discard) Error(string)   {}
func (Discard) Success(string) {}
func (Discard) Info(string)    {}
