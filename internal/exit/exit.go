package exit

import (
	"fmt"
	"io"
)

const (
	CodeSuccess = 0
	CodeFailure = 1
	CodeUsage   = 2
)

// Stream names where a result's message goes.
type Stream uint8

const (
	Stdout Stream = iota
	Stderr
	Discard
)

// Result holds the message, its stream and the exit code for program termination.
type Result struct {
	Stream   Stream
	ExitCode int
	Message  string
}

// Print writes the message to the stream it targets, adding a trailing newline
// when it is missing.
func (r *Result) Print(stdout, stderr io.Writer) {
	if r.Message == "" || r.Stream == Discard {
		return
	}

	w := stdout
	if r.Stream == Stderr {
		w = stderr
	}
	if r.Message[len(r.Message)-1] == '\n' {
		fmt.Fprint(w, r.Message)
		return
	}
	fmt.Fprintln(w, r.Message)
}

func Success(message string) *Result {
	return &Result{
		Stream:   Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

func Error(message string) *Result {
	return &Result{
		Stream:   Stderr,
		ExitCode: CodeFailure,
		Message:  message,
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Usage reports a command-line mistake together with the usage text.
func Usage(message, usage string) *Result {
	return &Result{
		Stream:   Stderr,
		ExitCode: CodeUsage,
		Message:  fmt.Sprintf("Error: %s\n\n%s", message, usage),
	}
}

// Silent ends the program with code and prints nothing.
func Silent(code int) *Result {
	return &Result{
		Stream:   Discard,
		ExitCode: code,
	}
}
