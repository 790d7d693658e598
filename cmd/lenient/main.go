package main

import (
	"errors"
	"io"
	"os"

	"github.com/jacoelho/lenient"
	"github.com/jacoelho/lenient/internal/config"
	"github.com/jacoelho/lenient/internal/exit"
	"github.com/jacoelho/lenient/internal/output"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	result := execute(args, stdin, stdout, stderr)
	result.Print(stdout, stderr)
	return result.ExitCode
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) *exit.Result {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return exit.Success(config.Usage())
		}
		return exit.Usage(err.Error(), config.Usage())
	}

	input := stdin
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return exit.Errorf("Error: %v", err)
		}
		defer f.Close()
		input = f
	}

	doc, err := lenient.ParseReader(input)
	if err != nil {
		return exit.Errorf("Error: %v", err)
	}

	var tracer *output.Tracer
	if cfg.Debug {
		tracer = output.NewTracer(stderr)
	}
	value := tracer.Follow(doc, lenient.ParseKeys(cfg.Path))

	if err := output.Write(stdout, cfg.Format, value); err != nil {
		return exit.Errorf("Error: failed to write output: %v", err)
	}

	if cfg.Strict && value.EqualsAbsence() {
		return exit.Silent(exit.CodeFailure)
	}

	return exit.Success("")
}
