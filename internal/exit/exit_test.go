package exit

import (
	"bytes"
	"strings"
	"testing"
)

func TestSuccess(t *testing.T) {
	message := "done"
	result := Success(message)

	if result.ExitCode != CodeSuccess {
		t.Errorf("Success() ExitCode = %d, want 0", result.ExitCode)
	}
	if result.Message != message {
		t.Errorf("Success() Message = %q, want %q", result.Message, message)
	}
	if result.Stream != Stdout {
		t.Errorf("Success() Stream = %d, want Stdout", result.Stream)
	}
}

func TestErrorf(t *testing.T) {
	result := Errorf("read %s: %v", "doc.json", "denied")

	if result.ExitCode != CodeFailure {
		t.Errorf("Errorf() ExitCode = %d, want 1", result.ExitCode)
	}
	if result.Message != "read doc.json: denied" {
		t.Errorf("Errorf() Message = %q", result.Message)
	}
	if result.Stream != Stderr {
		t.Errorf("Errorf() Stream = %d, want Stderr", result.Stream)
	}
}

func TestUsage(t *testing.T) {
	result := Usage("bad flag", "Usage: lenient")

	if result.ExitCode != CodeUsage {
		t.Errorf("Usage() ExitCode = %d, want 2", result.ExitCode)
	}
	if !strings.HasPrefix(result.Message, "Error: bad flag\n\n") || !strings.HasSuffix(result.Message, "Usage: lenient") {
		t.Errorf("Usage() Message = %q", result.Message)
	}
}

func TestSilent(t *testing.T) {
	result := Silent(CodeFailure)

	if result.ExitCode != CodeFailure || result.Message != "" || result.Stream != Discard {
		t.Errorf("Silent() = %+v", result)
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name       string
		result     Result
		wantStdout string
		wantStderr string
	}{
		{name: "adds newline", result: Result{Stream: Stdout, Message: "hello"}, wantStdout: "hello\n"},
		{name: "keeps newline", result: Result{Stream: Stdout, Message: "hello\n"}, wantStdout: "hello\n"},
		{name: "stderr", result: Result{Stream: Stderr, Message: "oops"}, wantStderr: "oops\n"},
		{name: "discard", result: Result{Stream: Discard, Message: "hidden"}},
		{name: "empty", result: Result{Stream: Stdout}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			tt.result.Print(&stdout, &stderr)
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("Print() stdout = %q, want %q", got, tt.wantStdout)
			}
			if got := stderr.String(); got != tt.wantStderr {
				t.Errorf("Print() stderr = %q, want %q", got, tt.wantStderr)
			}
		})
	}
}
