// Package fuzzy performs value-level repair of corrupted fields using
// edit-distance matching against reference value sets, plus two
// pattern-based repairs for delimiter-substitution corruption.
//
// What:
//
//   - Levenshtein(a, b) — rune-based edit distance, two-row DP.
//   - ReferenceSet — immutable, named known-good value sets, loaded once
//     before healing starts and safe for unsynchronized concurrent
//     reads. Match finds the minimum-distance reference for a value.
//   - RepairNumeric — merges a "digits, corruption marker, digits,
//     decimal separator, digits" value by dropping the marker.
//   - SplitFused — splits a value that fuses two adjacent fields around
//     a single substituted delimiter character, scoring every interior
//     cut against the fields' reference sets.
//
// Confidence:
//
//	Reference matches score 1 − distance/max(1, candidate rune length),
//	clamped to [0,1]: distance 0 is exactly 1.0, distance ≥ length is
//	exactly 0.0, never negative. Pattern repairs carry the fixed
//	conservative MarkerRepairConfidence (0.8) because a pattern match
//	carries no distance-based evidence.
//
// Complexity:
//
//   - Levenshtein: O(len(a)·len(b)) time, O(min(len(a),len(b))) memory.
//   - Match: O(|set|·n·m) over the field's reference values.
//   - SplitFused: O(n · cost(Match)) over the interior cut positions.
package fuzzy
