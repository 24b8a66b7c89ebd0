package fuzzy

import "regexp"

// MarkerRepairConfidence is the fixed confidence assigned to
// pattern-based repairs (numeric marker removal, validator-accepted
// fused halves). It is deliberately conservative — below 1.0 — because
// a pattern match is not a distance-based estimate; it still clears the
// default acceptance threshold of 0.7.
const MarkerRepairConfidence = 0.8

// numericMarker captures "digits, single non-digit corruption marker,
// digits, decimal separator, digits". The marker class excludes the
// decimal separator so "12.34.56" is not silently collapsed.
var numericMarker = regexp.MustCompile(`^([0-9]+)[^0-9.]([0-9]+)\.([0-9]+)$`)

// RepairNumeric scans value for the numeric corruption pattern and,
// when found, merges the digit runs by removing the marker, yielding a
// corrected numeric string. ok is false when the pattern does not
// apply. The repair's confidence is MarkerRepairConfidence.
//
// "12l34.56" → "1234.56"; "12|34.56" → "1234.56".
func RepairNumeric(value string) (repaired string, ok bool) {
	m := numericMarker.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	return m[1] + m[2] + "." + m[3], true
}

// Side describes one half of a fused-field split: the field's name (for
// reference lookup) and an optional validator fallback used when the
// field has no reference set.
type Side struct {
	// Field is the schema field name the half must satisfy.
	Field string
	// Accept is the field's validation predicate; consulted only when
	// Refs has no set for Field. May be nil.
	Accept func(string) bool
}

// Half is one corrected half of a fused value.
type Half struct {
	// Original is the half as cut out of the fused value.
	Original string
	// Value is the corrected value (reference match or the half
	// itself when accepted by validator).
	Value string
	// Confidence is the half's correction confidence.
	Confidence float64
}

// SplitFused splits a value that fuses two adjacent fields around a
// single substituted delimiter character. Every interior cut position
// is tried: the rune at the cut is dropped (it is the corrupted
// delimiter) and both halves are scored — by minimum-distance reference
// match when the field has a reference set, otherwise by the field's
// validator at MarkerRepairConfidence. The cut with the highest
// combined confidence wins; ok is false when no cut yields two
// acceptable halves.
//
// Complexity: O(n) cuts, each costing one Match per reference-backed
// side.
func SplitFused(value string, refs *ReferenceSet, left, right Side) (Half, Half, bool) {
	runes := []rune(value)
	var bestL, bestR Half
	bestTotal := -1.0
	for cut := 1; cut < len(runes)-1; cut++ {
		l, lok := scoreHalf(string(runes[:cut]), refs, left)
		if !lok {
			continue
		}
		r, rok := scoreHalf(string(runes[cut+1:]), refs, right)
		if !rok {
			continue
		}
		if total := l.Confidence + r.Confidence; total > bestTotal {
			bestTotal = total
			bestL, bestR = l, r
		}
	}
	return bestL, bestR, bestTotal >= 0
}

// scoreHalf scores one half of a fused value against its Side.
func scoreHalf(half string, refs *ReferenceSet, side Side) (Half, bool) {
	if refs.Has(side.Field) {
		m, _ := refs.Match(side.Field, half)
		return Half{Original: half, Value: m.Value, Confidence: m.Confidence}, true
	}
	if side.Accept != nil && side.Accept(half) {
		return Half{Original: half, Value: half, Confidence: MarkerRepairConfidence}, true
	}
	return Half{}, false
}
