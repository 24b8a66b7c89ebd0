// Package rowmend recovers fixed-arity delimited records whose field
// separator was corrupted at the source — a visually similar character
// substituted for the true delimiter — and emits auditable confidence
// information for every correction it makes.
//
// What rowmend does:
//
//	A small, deterministic healing pipeline that brings together:
//		• Schema-aware splitting with per-field validators
//		• Combinatorial reconstruction of split points when the
//		  delimiter count is wrong (bounded, fail-closed search)
//		• Fuzzy, edit-distance correction against reference value sets
//		• Confidence-scored, append-only audit logging
//		• An embarrassingly parallel batch orchestrator
//
// Why choose rowmend?
//
//   - Pure per-row computation – a row heals to exactly one outcome,
//     with no shared mutable state and no retries across rows
//   - Every correction is evidence – rejected rows keep their attempted
//     corrections and confidences in the audit trail
//   - Bounded worst case – the merge search caps its candidate budget
//     and fails closed rather than degrading silently
//
// The work is organized under five subpackages plus a CLI:
//
//	schema/      — row schemas and the closed set of field validators
//	split/       — merge-candidate generation for over-split rows
//	fuzzy/       — Levenshtein matching, reference sets, numeric repair
//	heal/        — the per-row state machine and batch orchestrator
//	audit/       — audit entry sinks: memory, JSONL, SQLite
//	cmd/rowmend/ — heal, gen and sum commands
//
// Quick example, schema {id, from_id, to_id, amount} with delimiter '|':
//
//	"TXN1|ACC1|ACC2|55.00"  → Clean   (naive split already validates)
//	"TXN1|ACC1lACC2|55.00"  → Healed  (fused fields split at the marker)
//	"TXN1|ACC1|ACC2|12|34.56" → Healed (merge + numeric marker repair)
//
// Dive into the per-package doc.go files for contracts, complexity and
// error semantics.
//
//	go get github.com/rowmend/rowmend
package rowmend
