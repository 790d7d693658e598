package output

import (
	"fmt"
	"io"

	"github.com/jacoelho/lenient"
)

// Tracer reports every navigation step. A nil Tracer follows paths silently.
type Tracer struct {
	writer io.Writer
}

// NewTracer creates a tracer that writes one line per step to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{writer: w}
}

// Follow walks keys from v and returns the value reached.
func (t *Tracer) Follow(v lenient.Value, keys []lenient.Key) lenient.Value {
	for depth, k := range keys {
		next, found := v.Lookup(k)
		t.step(depth, k, next, found)
		v = next
	}
	return v
}

func (t *Tracer) step(depth int, k lenient.Key, v lenient.Value, found bool) {
	if t == nil {
		return
	}

	// Trace output is best effort.
	_, _ = fmt.Fprintf(t.writer, "step %d key=%q found=%t kind=%s empty=%t\n",
		depth, k.String(), found, v.Kind(), v.IsEmpty())
}
