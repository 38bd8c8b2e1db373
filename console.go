package objmodel

import (
	"fmt"
	"io"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console is the sink operations write to. Text goes to the output writer;
// failures go to a logger on the error writer.
type Console struct {
	out  io.Writer
	fail *log.Logger
	// p localizes numbers. If nil, formatting is plain fmt.
	p *message.Printer
}

// NewConsole creates a console writing text to out and failures to errw.
// Numbers are printed as fmt prints them, without digit grouping.
func NewConsole(out, errw io.Writer) *Console {
	return &Console{out: out, fail: log.New(errw, "", 0)}
}

// NewConsoleLang creates a console that formats numbers for the given
// language, e.g. with digit grouping.
func NewConsoleLang(out, errw io.Writer, lang language.Tag) *Console {
	return &Console{
		out:  out,
		fail: log.New(errw, "", 0),
		p:    message.NewPrinter(lang),
	}
}

// Printf writes formatted text to the console's output.
func (c *Console) Printf(format string, args ...interface{}) {
	if c.p == nil {
		fmt.Fprintf(c.out, format, args...)
		return
	}
	c.p.Fprintf(c.out, format, args...)
}

// Println writes the arguments and a newline to the console's output.
func (c *Console) Println(args ...interface{}) {
	if c.p == nil {
		fmt.Fprintln(c.out, args...)
		return
	}
	c.p.Fprintln(c.out, args...)
}

// Sprintf formats text the same way Printf does.
func (c *Console) Sprintf(format string, args ...interface{}) string {
	if c.p == nil {
		return fmt.Sprintf(format, args...)
	}
	return c.p.Sprintf(format, args...)
}

// Failf reports a failure to the console's error writer.
func (c *Console) Failf(format string, args ...interface{}) {
	c.fail.Printf(format, args...)
}

// Logger returns the logger that receives failures.
func (c *Console) Logger() *log.Logger {
	return c.fail
}

// Out returns the console's output writer.
func (c *Console) Out() io.Writer {
	return c.out
}
