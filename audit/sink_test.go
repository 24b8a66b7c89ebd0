package audit_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowmend/rowmend/audit"
	"github.com/rowmend/rowmend/heal"
)

// sampleTrail covers all three outcomes with and without corrections.
func sampleTrail() []heal.AuditEntry {
	return []heal.AuditEntry{
		{RowIndex: 0, Raw: "TXN1|ACC1|ACC2|55.00", Outcome: heal.OutcomeClean},
		{
			RowIndex: 1,
			Raw:      "TXN2|ACC1lACC2|10.50",
			Outcome:  heal.OutcomeHealed,
			Corrections: []heal.CorrectionResult{
				{Field: "from_id", Original: "ACC1", Corrected: "ACC1", Confidence: 1.0, Method: heal.MethodFuzzy},
				{Field: "to_id", Original: "ACC2", Corrected: "ACC2", Confidence: 1.0, Method: heal.MethodFuzzy},
			},
		},
		{RowIndex: 2, Raw: "BAD3|ACC1|ACC2|1.00", Outcome: heal.OutcomeRejected, Reason: "ValidationFailure: id"},
	}
}

// TestMemorySink_RoundTrip verifies append order, the defensive copy,
// and use-after-close.
func TestMemorySink_RoundTrip(t *testing.T) {
	sink := audit.NewMemorySink()
	require.NoError(t, audit.Drain(sink, sampleTrail()))

	got := sink.Entries()
	assert.Equal(t, sampleTrail(), got)

	got[0].Raw = "tampered"
	assert.Equal(t, sampleTrail(), sink.Entries())

	require.NoError(t, sink.Close())
	assert.ErrorIs(t, sink.Append(heal.AuditEntry{}), audit.ErrClosed)
}

// TestJSONLSink_OneObjectPerLine verifies the JSON Lines framing and
// that each line decodes back to its entry.
func TestJSONLSink_OneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	sink := audit.NewJSONLSink(&buf)
	require.NoError(t, audit.Drain(sink, sampleTrail()))
	require.NoError(t, sink.Close())

	sc := bufio.NewScanner(&buf)
	var lines int
	for sc.Scan() {
		var e heal.AuditEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		assert.Equal(t, sampleTrail()[lines].RowIndex, e.RowIndex)
		assert.Equal(t, sampleTrail()[lines].Outcome, e.Outcome)
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, len(sampleTrail()), lines)
}

// TestSQLiteSink_RoundTrip verifies that entries written to the
// database load back identical, corrections included.
func TestSQLiteSink_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	sink, err := audit.NewSQLiteSink(path)
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, audit.Drain(sink, sampleTrail()))

	got, err := sink.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleTrail(), got)
}

// TestSQLiteSink_Closed verifies use-after-close and idempotent Close.
func TestSQLiteSink_Closed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	sink, err := audit.NewSQLiteSink(path)
	require.NoError(t, err)

	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())
	assert.ErrorIs(t, sink.Append(heal.AuditEntry{}), audit.ErrClosed)
}

// TestReplay_Stats verifies the aggregate fold over a mixed trail.
func TestReplay_Stats(t *testing.T) {
	st := audit.Replay(sampleTrail())
	assert.Equal(t, 3, st.Rows)
	assert.Equal(t, 1, st.Clean)
	assert.Equal(t, 1, st.Healed)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, 2, st.Corrections)
	assert.Equal(t, map[string]int{"ValidationFailure: id": 1}, st.Reasons)
}
