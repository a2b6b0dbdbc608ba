package main

import (
	"assignlang/internal"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: assignlang [-Svnh] [-f file | -s addr] ['program']

  -f file  read the program from file ('-' for stdin)
  -s addr  serve POST /eval on addr
  -S       fail on reads of unassigned variables
  -v       print diagnostics and debug logs to stderr
  -n       disable colored diagnostics
  -h       show this help`

var errHelp = errors.New("help requested")
var errTooManyArgs = errors.New("expected at most one program argument")

type stdPrinter struct {
	out io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

type config struct {
	file    string
	addr    string
	strict  bool
	verbose bool
	noColor bool
	source  string
}

func parseArgs(args []string) (*config, error) {
	opts, optind, err := getopt.Getopts(args, "f:s:Svnh")
	if err != nil {
		return nil, err
	}

	cfg := &config{}
	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			cfg.file = opt.Value
		case 's':
			cfg.addr = opt.Value
		case 'S':
			cfg.strict = true
		case 'v':
			cfg.verbose = true
		case 'n':
			cfg.noColor = true
		case 'h':
			return nil, errHelp
		}
	}

	rest := args[optind:]
	if len(rest) > 1 || (len(rest) == 1 && cfg.file != "") {
		return nil, errTooManyArgs
	}
	if len(rest) == 1 {
		cfg.source = rest[0]
	}
	return cfg, nil
}

func newLogger(cfg *config, stderr io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)
	if cfg.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if cfg.noColor {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}
	return logger
}

func readSource(cfg *config, stdin io.Reader) (string, error) {
	if cfg.file == "" {
		return cfg.source, nil
	}
	if cfg.file == "-" {
		b, err := ioutil.ReadAll(stdin)
		return string(b), err
	}
	b, err := ioutil.ReadFile(cfg.file)
	return string(b), err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args)
	if err == errHelp {
		fmt.Fprintln(stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return 2
	}

	if cfg.noColor {
		internal.DisableColor()
	}
	logger := newLogger(cfg, stderr)

	if cfg.addr != "" {
		logger.WithField("addr", cfg.addr).Warn("serving POST /eval")
		if err := internal.NewServer(logger).ListenAndServe(cfg.addr); err != nil {
			logger.WithError(err).Error("server stopped")
			return 1
		}
		return 0
	}

	source, err := readSource(cfg, stdin)
	if err != nil {
		logger.WithError(err).Error("cannot read program")
		return 2
	}

	opts := internal.Options{
		Strict: cfg.strict,
		Logger: logger,
	}
	if cfg.verbose {
		opts.Diagnostics = stderr
	}
	if !internal.RunSourceWithPrinter(source, stdPrinter{out: stdout}, opts) {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
