package heal

import (
	"encoding/json"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/rowmend/rowmend/fuzzy"
)

// Outcome is a row's terminal classification.
type Outcome int

const (
	// OutcomeClean — reconstructed on the first exact split, no
	// corrections applied.
	OutcomeClean Outcome = iota
	// OutcomeHealed — corrections applied, confidence at or above the
	// acceptance threshold.
	OutcomeHealed
	// OutcomeRejected — no valid record producible, or confidence
	// below the threshold.
	OutcomeRejected
)

// String returns the canonical outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "Clean"
	case OutcomeHealed:
		return "Healed"
	case OutcomeRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalJSON encodes the outcome as its canonical name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical outcome name.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Clean":
		*o = OutcomeClean
	case "Healed":
		*o = OutcomeHealed
	case "Rejected":
		*o = OutcomeRejected
	default:
		return fmt.Errorf("heal: unknown outcome %q", s)
	}
	return nil
}

// Method names how a correction was produced.
type Method string

const (
	// MethodReconstruction — split points were rebuilt combinatorially;
	// the field value is schema-exact.
	MethodReconstruction Method = "reconstruction"
	// MethodFuzzy — the value was repaired by reference matching or
	// marker-pattern surgery.
	MethodFuzzy Method = "fuzzy"
)

// CorrectionResult records one field-level correction attempt.
type CorrectionResult struct {
	Field      string  `json:"field"`
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"`
	Method     Method  `json:"method"`
}

// AuditEntry is the immutable record of one row's healing, retained for
// traceability regardless of success. Exactly one entry exists per
// input row; RowIndex correlates entries back to the source stream so
// a concurrent batch's log can be re-sorted deterministically.
type AuditEntry struct {
	RowIndex    int                `json:"row_index"`
	Raw         string             `json:"raw"`
	Outcome     Outcome            `json:"outcome"`
	Corrections []CorrectionResult `json:"corrections,omitempty"`
	Reason      string             `json:"reason,omitempty"`
}

// Record is a fully validated, trimmed record with exactly the schema
// arity. Immutable once constructed.
type Record []string

// HealedRecord pairs an accepted record with its source row index.
type HealedRecord struct {
	Row    int
	Record Record
}

// Options configures a Healer.
//
// Fields:
//   - Delimiter     — the expected field separator (required).
//   - MaxMergeSpan  — maximum surplus delimiters absorbed by the merge
//     search (see split.Options); default 2.
//   - MaxCandidates — total candidate budget per row; default 4096.
//   - MinConfidence — acceptance threshold for fuzzy corrections in
//     [0,1]; default 0.7. A fuzzy-only result below it is demoted to
//     Rejected.
//   - Workers       — batch worker-pool size; default GOMAXPROCS.
//   - References    — optional known-good value sets per field; absent
//     fields simply have fuzzy matching disabled.
//   - Logger        — structured logger for batch processing; nil means
//     no logging.
type Options struct {
	Delimiter     rune
	MaxMergeSpan  int
	MaxCandidates int
	MinConfidence float64
	Workers       int
	References    *fuzzy.ReferenceSet
	Logger        *zap.Logger
}

// DefaultOptions returns the documented defaults: delimiter '|', merge
// span 2, 4096-candidate budget, 0.7 confidence threshold and one
// worker per CPU.
func DefaultOptions() Options {
	return Options{
		Delimiter:     '|',
		MaxMergeSpan:  2,
		MaxCandidates: 4096,
		MinConfidence: 0.7,
		Workers:       runtime.GOMAXPROCS(0),
	}
}
