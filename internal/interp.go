package internal

import (
	"io"
	"strings"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// ErrorIndicator is printed in place of the report when a run fails
const ErrorIndicator = "error"

// Binding is the final value of one variable
type Binding struct {
	Name  string
	Value number
}

func (b Binding) String() string {
	return b.Name + " = " + b.Value.String()
}

// Report lists the variables of a successful run in order of first assignment
type Report struct {
	Bindings []Binding
}

// Lookup returns the printed value of the named variable
func (r *Report) Lookup(name string) (string, bool) {
	for _, b := range r.Bindings {
		if b.Name == name {
			return b.Value.String(), true
		}
	}
	return "", false
}

func (r *Report) String() string {
	lines := make([]string, len(r.Bindings))
	for i, b := range r.Bindings {
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RunSource evaluates source on a fresh lexer, parser and variable table
func RunSource(source string, opts Options) (report *Report, err error) {
	state := newInterpreterState(source, opts)
	parser := newParser(state)

	defer state.recoverError(&err)

	return &Report{Bindings: parser.parse()}, nil
}

// RunSourceWithPrinter runs source and prints either the report or the
// error indicator. It returns true on success.
func RunSourceWithPrinter(source string, p IPrinter, opts Options) bool {
	report, err := RunSource(source, opts)
	if err != nil {
		if opts.Diagnostics != nil {
			p.Fprintln(opts.Diagnostics, formatError(err))
		}
		p.Println(ErrorIndicator)
		return false
	}
	if len(report.Bindings) > 0 {
		p.Println(report.String())
	}
	return true
}
