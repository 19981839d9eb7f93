// FILE: sinks/dump.go
package sinks

import (
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/loggable-io/loggable"
)

// Dump writes a full structural dump of each record, field names and types
// included. Intended for debugging the pipeline itself rather than for
// production output.
type Dump struct {
	mu     sync.Mutex
	w      io.Writer
	dumper *spew.ConfigState
}

// NewDump creates a dump sink. A nil writer defaults to stderr.
func NewDump(w io.Writer) *Dump {
	if w == nil {
		w = os.Stderr
	}
	return &Dump{
		w: w,
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// Consume implements loggable.Sink.
func (s *Dump) Consume(rec loggable.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dumper.Fdump(s.w, rec)
}
