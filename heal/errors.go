package heal

import "errors"

var (
	// ErrNoDelimiter indicates Options without a delimiter character.
	ErrNoDelimiter = errors.New("heal: delimiter is required")
	// ErrBadConfidence indicates MinConfidence outside [0,1].
	ErrBadConfidence = errors.New("heal: minimum confidence must be in [0,1]")
	// ErrBadMergeSpan indicates a negative MaxMergeSpan.
	ErrBadMergeSpan = errors.New("heal: merge span must be non-negative")
)

// Reason labels why a row was rejected; it prefixes the audit entry's
// reason string.
type Reason string

const (
	// ReasonSchemaMismatch — no bounded candidate search can
	// reconstruct the row to the required arity.
	ReasonSchemaMismatch Reason = "SchemaMismatch"
	// ReasonValidationFailure — a field rejected every candidate value;
	// the reason names the offending field.
	ReasonValidationFailure Reason = "ValidationFailure"
	// ReasonBudgetExceeded — the merge search would exceed the
	// configured cap; treated identically to a schema mismatch rather
	// than silently truncating the search.
	ReasonBudgetExceeded Reason = "CandidateBudgetExceeded"
	// ReasonLowConfidence — a correction was found but fell below the
	// acceptance threshold; the attempt is preserved in the entry.
	ReasonLowConfidence Reason = "LowConfidenceCorrection"
)
