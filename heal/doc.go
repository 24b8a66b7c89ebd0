// Package heal sequences the corruption-healing pipeline per row and
// classifies every row into exactly one terminal outcome.
//
// State machine:
//
//	Received → Split → {ReconstructedValid, ReconstructionFailed}
//	         → {Clean, Healed, Rejected}
//
//   - Clean: the naive split already has the schema arity and every
//     field validates; zero corrections.
//   - Healed: corrections were applied (split-point reconstruction
//     and/or fuzzy value repair) and every fuzzy confidence clears
//     Options.MinConfidence.
//   - Rejected: no valid record is producible, or the best correction
//     falls below the threshold. The attempted corrections stay in the
//     audit entry — the evidence remains inspectable.
//
// Per-row healing is a pure function of the raw row: no shared mutable
// state, no retries across rows, exactly one AuditEntry per row.
// Per-row problems (SchemaMismatch, ValidationFailure,
// CandidateBudgetExceeded, LowConfidenceCorrection) are outcomes, never
// errors; only malformed configuration aborts, once, at construction.
//
// HealAll partitions a batch across an errgroup worker pool — the
// pipeline is embarrassingly parallel — and merges per-worker audit
// slices, re-sorted by row index for a deterministic log. The only
// shared state is the read-only reference set, injected at
// construction.
//
// Candidate selection order: the split generator yields concentrated
// merges before spread-out ones, and reconstruction is first-match-wins
// across that order, so a single spurious delimiter repairs at its most
// likely position. When no candidate validates exactly, fuzzy repair is
// attempted against the candidates in the same order, again first
// acceptable match wins.
package heal
