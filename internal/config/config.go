package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/lenient/internal/output"
)

var (
	ErrNoArguments       = errors.New("no arguments provided")
	ErrHelp              = errors.New("help requested")
	ErrTooManyArguments  = errors.New("at most one input file may be given")
	ErrInvalidFormat     = errors.New("--format must be one of: text, json, yaml")
	ErrInputNotReachable = errors.New("input file not accessible")
)

// Config defines CLI options for the lenient command.
type Config struct {
	// InputFile is empty when the document is read from stdin.
	InputFile string
	Path      string
	Format    output.Format
	Strict    bool
	Debug     bool
}

// Parse parses and validates CLI arguments.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	path := fs.String("path", "", "Dotted path to follow, e.g. a.b.first.c")
	format := fs.String("format", "text", "Output format: text, json or yaml")
	strict := fs.Bool("strict", false, "Exit with status 1 when the path yields nothing")
	debug := fs.Bool("debug", false, "Trace every navigation step to stderr")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%w, got: %s", ErrTooManyArguments, strings.Join(fs.Args(), " "))
	}

	inputFile := fs.Arg(0)
	if inputFile == "-" {
		inputFile = ""
	}
	if inputFile != "" {
		if _, err := os.Stat(inputFile); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputNotReachable, err)
		}
	}

	parsedFormat, err := parseFormat(*format)
	if err != nil {
		return nil, err
	}

	return &Config{
		InputFile: inputFile,
		Path:      strings.TrimSpace(*path),
		Format:    parsedFormat,
		Strict:    *strict,
		Debug:     *debug,
	}, nil
}

func parseFormat(input string) (output.Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(output.FormatText):
		return output.FormatText, nil
	case string(output.FormatJSON):
		return output.FormatJSON, nil
	case string(output.FormatYAML):
		return output.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidFormat, input)
	}
}

// Usage returns command usage text.
func Usage() string {
	return `lenient - read a value out of a JSON document without failing on missing paths

Usage:
  lenient [--path a.b.first.c] [--format text|json|yaml] [--strict] [--debug] [FILE]

Reads FILE, or stdin when FILE is omitted or "-".

Options:
  --path PATH       Dotted path; numeric segments index lists, "first" and "last" pick list ends
  --format FORMAT   Output format: text, json or yaml (default: text)
  --strict          Exit with status 1 when the path yields nothing
  --debug           Trace every navigation step to stderr
  -h, --help        Show this help message`
}
