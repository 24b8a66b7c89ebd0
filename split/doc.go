// Package split generates merge candidates for over-split delimited
// rows: all ways to regroup p naive pieces into exactly k ordered
// fields by merging adjacent pieces, never reordering them.
//
// What:
//
//   - NewGenerator(pieces, delimiter, arity, opts) builds a lazy
//     Generator; Next() yields one Candidate at a time so callers can
//     stop at the first candidate that validates.
//   - A Candidate carries the k regrouped field strings plus the group
//     sizes; merged groups rejoin their pieces with the delimiter
//     verbatim, preserving the raw text between the chosen split points.
//
// Cost model (documented deliberately):
//
//   - p == k: exactly one trivial candidate, O(n) in the row length.
//   - p == k+m, m ≥ 1: C(k+m-1, k-1) candidates — exponential in m.
//     The design accepts this because m is 0 or 1 for the overwhelming
//     majority of corrupted rows; Options.MaxMergeSpan bounds m and
//     Options.MaxCandidates bounds the total, and both fail closed
//     (ErrBudgetExceeded) instead of searching a silent truncation.
//   - p < k: the candidate set is empty. Under-split rows are out of
//     scope for reconstruction and fall through to fuzzy correction.
//
// Enumeration order:
//
//	Candidates that concentrate the merge into a single position appear
//	before candidates that spread it out, leftmost position first. A
//	spurious delimiter is a single-character substitution, so a
//	concentrated merge is the statistically likely repair; first-match
//	selection downstream inherits this prior.
//
// The iterator walks group-size compositions with an in-place successor
// step — no recursion, bounded memory, O(k) per candidate advance.
//
// Errors:
//
//   - ErrArity: arity < 2.
//   - ErrBudgetExceeded: m exceeds MaxMergeSpan, or the candidate count
//     exceeds MaxCandidates.
package split
