package split

import "strings"

// Options bounds the merge-candidate search.
//
// Fields:
//   - MaxMergeSpan — maximum number m of spurious delimiters the search
//     will absorb (p == arity+m). 0 means only trivial splits pass.
//   - MaxCandidates — hard cap on the total candidate count for one
//     row; past it the generator fails closed with ErrBudgetExceeded.
type Options struct {
	MaxMergeSpan  int
	MaxCandidates int
}

// DefaultOptions returns the conservative defaults: a merge span of 2
// and a 4096-candidate budget.
func DefaultOptions() Options {
	return Options{MaxMergeSpan: 2, MaxCandidates: 4096}
}

// Candidate is one regrouping of the naive pieces into exactly arity
// fields. Candidates are ephemeral: generated, scored and discarded per
// row.
type Candidate struct {
	// Fields holds the arity regrouped field strings. Merged groups
	// rejoin their pieces with the delimiter verbatim.
	Fields []string
	// Sizes holds how many naive pieces each field consumed; Sizes[i]
	// > 1 marks field i as a merge.
	Sizes []int
}

// Merged reports whether field i was produced by merging two or more
// naive pieces.
func (c Candidate) Merged(i int) bool {
	return i >= 0 && i < len(c.Sizes) && c.Sizes[i] > 1
}

// Generator lazily enumerates merge candidates for one row.
// Not safe for concurrent use; create one per row per worker.
type Generator struct {
	pieces []string
	delim  string
	arity  int
	sizes  []int // current composition; nil once exhausted
	total  int   // candidate count, for Count()
}

// NewGenerator builds a Generator over the naive pieces of one row.
//
// Contracts:
//   - arity ≥ 2 (ErrArity otherwise).
//   - len(pieces) == arity yields exactly the trivial candidate.
//   - len(pieces) > arity requires len(pieces)-arity ≤ opts.MaxMergeSpan
//     and C(len(pieces)-1, arity-1) ≤ opts.MaxCandidates, else
//     ErrBudgetExceeded.
//   - len(pieces) < arity yields an exhausted generator (Next returns
//     false immediately); under-split rows cannot be merged up.
//
// Complexity: O(arity) setup; each Next is O(arity + row length).
func NewGenerator(pieces []string, delimiter rune, arity int, opts Options) (*Generator, error) {
	if arity < 2 {
		return nil, ErrArity
	}
	g := &Generator{
		pieces: pieces,
		delim:  string(delimiter),
		arity:  arity,
	}
	p := len(pieces)
	switch {
	case p < arity:
		// Merging can only reduce the field count; no candidates.
		return g, nil
	case p == arity:
		g.sizes = trivialSizes(arity)
		g.total = 1
		return g, nil
	default:
		m := p - arity
		if m > opts.MaxMergeSpan {
			return nil, ErrBudgetExceeded
		}
		n := binomial(p-1, arity-1)
		if opts.MaxCandidates > 0 && (n < 0 || n > opts.MaxCandidates) {
			return nil, ErrBudgetExceeded
		}
		g.sizes = firstComposition(p, arity)
		g.total = n
		return g, nil
	}
}

// Count returns the total number of candidates this generator will
// yield (0 for under-split rows, 1 for trivial splits).
func (g *Generator) Count() int { return g.total }

// Next yields the next Candidate in enumeration order, or ok=false when
// the search space is exhausted. The returned Candidate owns fresh
// slices; callers may retain them.
func (g *Generator) Next() (Candidate, bool) {
	if g.sizes == nil {
		return Candidate{}, false
	}
	cand := g.build(g.sizes)
	g.sizes = nextComposition(g.sizes, len(g.pieces))
	return cand, true
}

// build materializes the candidate for one composition of group sizes.
func (g *Generator) build(sizes []int) Candidate {
	fields := make([]string, g.arity)
	out := make([]int, g.arity)
	copy(out, sizes)
	at := 0
	for i, sz := range sizes {
		if sz == 1 {
			fields[i] = g.pieces[at]
		} else {
			fields[i] = strings.Join(g.pieces[at:at+sz], g.delim)
		}
		at += sz
	}
	return Candidate{Fields: fields, Sizes: out}
}

// trivialSizes is the all-ones composition.
func trivialSizes(k int) []int {
	s := make([]int, k)
	for i := range s {
		s[i] = 1
	}
	return s
}

// firstComposition returns the first composition of p into k parts in
// enumeration order: the whole surplus concentrated in the leftmost
// group, (p-k+1, 1, …, 1).
func firstComposition(p, k int) []int {
	s := trivialSizes(k)
	s[0] = p - k + 1
	return s
}

// nextComposition advances sizes to its successor in descending
// lexicographic order, returning nil when exhausted. The successor
// decrements the rightmost decrementable group (any group before the
// last with size > 1) and re-concentrates the remaining surplus
// immediately to its right, which is exactly the concentrated-before-
// spread, leftmost-first order documented in doc.go.
func nextComposition(sizes []int, p int) []int {
	k := len(sizes)
	for i := k - 2; i >= 0; i-- {
		if sizes[i] <= 1 {
			continue
		}
		sizes[i]--
		// Surplus remaining for groups i+1 … k-1.
		used := 0
		for j := 0; j <= i; j++ {
			used += sizes[j]
		}
		rem := p - used
		sizes[i+1] = rem - (k - i - 2)
		for j := i + 2; j < k; j++ {
			sizes[j] = 1
		}
		return sizes
	}
	return nil
}

// binomial computes C(n, r) with overflow detection; a negative return
// signals overflow and is treated as over-budget by the caller.
func binomial(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	out := 1
	for i := 1; i <= r; i++ {
		out = out * (n - r + i) / i
		if out < 0 {
			return -1
		}
	}
	return out
}
