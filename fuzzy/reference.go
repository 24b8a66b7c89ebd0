package fuzzy

// Match is the outcome of a reference-set lookup: the minimum-distance
// reference value and its normalized confidence.
type Match struct {
	// Value is the selected known-good reference value.
	Value string
	// Distance is the edit distance from the candidate to Value.
	Distance int
	// Confidence is 1 − Distance/max(1, candidate rune length),
	// clamped to [0,1].
	Confidence float64
}

// ReferenceSet maps field names to sets of known-good values used for
// fuzzy matching. It is immutable after construction: initialize once
// before any healing worker starts, then share freely across
// goroutines without synchronization. Inject it explicitly into every
// healing invocation rather than holding ambient global state, so tests
// can substitute fixtures.
type ReferenceSet struct {
	values map[string][]string
	lookup map[string]map[string]struct{}
}

// NewReferenceSet copies the given field→values mapping into an
// immutable ReferenceSet. Empty value lists are dropped: a field
// without reference values simply has fuzzy correction disabled, which
// is not an error.
// Complexity: O(total values) time and memory.
func NewReferenceSet(byField map[string][]string) *ReferenceSet {
	rs := &ReferenceSet{
		values: make(map[string][]string, len(byField)),
		lookup: make(map[string]map[string]struct{}, len(byField)),
	}
	for field, vals := range byField {
		if len(vals) == 0 {
			continue
		}
		cp := make([]string, len(vals))
		copy(cp, vals)
		set := make(map[string]struct{}, len(vals))
		for _, v := range vals {
			set[v] = struct{}{}
		}
		rs.values[field] = cp
		rs.lookup[field] = set
	}
	return rs
}

// Has reports whether the field has a reference value set. A nil
// ReferenceSet has none.
func (rs *ReferenceSet) Has(field string) bool {
	if rs == nil {
		return false
	}
	_, ok := rs.values[field]
	return ok
}

// Match selects the minimum-distance reference value for candidate in
// the named field's set. Ties keep the earliest value in declaration
// order, so matching is deterministic. ok is false when the field has
// no reference set.
//
// An exact member short-circuits to distance 0, confidence 1.0.
// Complexity: O(|set| · n · m) worst case.
func (rs *ReferenceSet) Match(field, candidate string) (Match, bool) {
	if rs == nil {
		return Match{}, false
	}
	vals, ok := rs.values[field]
	if !ok {
		return Match{}, false
	}
	if _, exact := rs.lookup[field][candidate]; exact {
		return Match{Value: candidate, Distance: 0, Confidence: 1.0}, true
	}
	best := Match{Distance: -1}
	for _, ref := range vals {
		d := Levenshtein(candidate, ref)
		if best.Distance < 0 || d < best.Distance {
			best = Match{Value: ref, Distance: d}
		}
	}
	best.Confidence = Confidence(best.Distance, candidate)
	return best, true
}

// Confidence maps an edit distance to [0,1] relative to the candidate
// length: 1 − distance/max(1, rune length), clamped so distance 0 is
// exactly 1.0 and distance ≥ length is exactly 0.0, never negative.
func Confidence(distance int, candidate string) float64 {
	n := len([]rune(candidate))
	if n < 1 {
		n = 1
	}
	c := 1.0 - float64(distance)/float64(n)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
