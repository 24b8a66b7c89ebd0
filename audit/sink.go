package audit

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/rowmend/rowmend/heal"
)

// ErrClosed is returned by Append after a sink has been closed.
var ErrClosed = errors.New("audit: sink closed")

// Sink is an append-only destination for audit entries.
type Sink interface {
	// Append records one entry. Entries should arrive in row order.
	Append(entry heal.AuditEntry) error
	// Close flushes and releases the sink. Further Appends fail with
	// ErrClosed.
	Close() error
}

// MemorySink buffers entries in memory.
type MemorySink struct {
	entries []heal.AuditEntry
	closed  bool
}

// NewMemorySink returns an empty in-memory sink.
func NewMemorySink() *MemorySink { return &MemorySink{} }

// Append stores the entry.
func (m *MemorySink) Append(entry heal.AuditEntry) error {
	if m.closed {
		return ErrClosed
	}
	m.entries = append(m.entries, entry)
	return nil
}

// Close marks the sink closed.
func (m *MemorySink) Close() error {
	m.closed = true
	return nil
}

// Entries returns the recorded entries in append order. The returned
// slice is a copy.
func (m *MemorySink) Entries() []heal.AuditEntry {
	out := make([]heal.AuditEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// JSONLSink encodes each entry as one JSON object per line.
type JSONLSink struct {
	enc    *json.Encoder
	closer io.Closer
	closed bool
}

// NewJSONLSink writes JSON Lines to w. When w is also an io.Closer it
// is closed by Close.
func NewJSONLSink(w io.Writer) *JSONLSink {
	s := &JSONLSink{enc: json.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Append encodes the entry followed by a newline.
func (s *JSONLSink) Append(entry heal.AuditEntry) error {
	if s.closed {
		return ErrClosed
	}
	return s.enc.Encode(entry)
}

// Close closes the underlying writer when it supports closing.
func (s *JSONLSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Stats aggregates a replayed audit trail.
type Stats struct {
	Rows        int
	Clean       int
	Healed      int
	Rejected    int
	Corrections int
	// Reasons counts rejected rows per reason string.
	Reasons map[string]int
}

// Replay folds entries into aggregate statistics.
func Replay(entries []heal.AuditEntry) Stats {
	st := Stats{Reasons: make(map[string]int)}
	for _, e := range entries {
		st.Rows++
		st.Corrections += len(e.Corrections)
		switch e.Outcome {
		case heal.OutcomeClean:
			st.Clean++
		case heal.OutcomeHealed:
			st.Healed++
		case heal.OutcomeRejected:
			st.Rejected++
			st.Reasons[e.Reason]++
		}
	}
	return st
}

// Drain appends every entry of a batch to the sink, stopping at the
// first failure.
func Drain(sink Sink, entries []heal.AuditEntry) error {
	for _, e := range entries {
		if err := sink.Append(e); err != nil {
			return err
		}
	}
	return nil
}
