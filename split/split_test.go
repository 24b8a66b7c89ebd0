package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowmend/rowmend/split"
)

// drain collects every candidate the generator yields.
func drain(g *split.Generator) []split.Candidate {
	var out []split.Candidate
	for {
		c, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// TestNewGenerator_Arity verifies that arity < 2 is rejected.
func TestNewGenerator_Arity(t *testing.T) {
	_, err := split.NewGenerator([]string{"a", "b"}, '|', 1, split.DefaultOptions())
	assert.ErrorIs(t, err, split.ErrArity)
}

// TestGenerator_TrivialSplit verifies the common case: piece count
// equals arity, exactly one candidate, all group sizes 1.
func TestGenerator_TrivialSplit(t *testing.T) {
	g, err := split.NewGenerator([]string{"TXN1", "ACC1", "ACC2", "55.00"}, '|', 4, split.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count())

	cands := drain(g)
	require.Len(t, cands, 1, "trivial split yields exactly one candidate")
	assert.Equal(t, []string{"TXN1", "ACC1", "ACC2", "55.00"}, cands[0].Fields)
	assert.Equal(t, []int{1, 1, 1, 1}, cands[0].Sizes)
	assert.False(t, cands[0].Merged(2))
}

// TestGenerator_UnderSplit verifies that fewer pieces than arity yields
// an empty candidate set, not an error.
func TestGenerator_UnderSplit(t *testing.T) {
	g, err := split.NewGenerator([]string{"TXN1", "ACC1lACC2", "55.00"}, '|', 4, split.DefaultOptions())
	require.NoError(t, err, "under-split is a normal outcome, not an error")
	assert.Equal(t, 0, g.Count())
	assert.Empty(t, drain(g))
}

// TestGenerator_SingleMergeOrder pins the enumeration order for m=1:
// exactly C(4,3)=4 candidates, merge position moving left to right.
func TestGenerator_SingleMergeOrder(t *testing.T) {
	pieces := []string{"TXN1", "ACC1", "ACC2", "12", "34.56"}
	g, err := split.NewGenerator(pieces, '|', 4, split.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, g.Count(), "C(4,3) merge candidates for m=1")

	cands := drain(g)
	require.Len(t, cands, 4)
	assert.Equal(t, []string{"TXN1|ACC1", "ACC2", "12", "34.56"}, cands[0].Fields)
	assert.Equal(t, []string{"TXN1", "ACC1|ACC2", "12", "34.56"}, cands[1].Fields)
	assert.Equal(t, []string{"TXN1", "ACC1", "ACC2|12", "34.56"}, cands[2].Fields)
	assert.Equal(t, []string{"TXN1", "ACC1", "ACC2", "12|34.56"}, cands[3].Fields)
	assert.True(t, cands[3].Merged(3), "last field of last candidate is the merge")
	assert.Equal(t, []int{1, 1, 1, 2}, cands[3].Sizes)
}

// TestGenerator_DoubleMergeOrder verifies m=2 enumeration: concentrated
// merges precede spread-out merges, leftmost first.
func TestGenerator_DoubleMergeOrder(t *testing.T) {
	pieces := []string{"a", "b", "c", "d"}
	g, err := split.NewGenerator(pieces, '|', 2, split.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Count(), "C(3,1) candidates for p=4, k=2")

	cands := drain(g)
	require.Len(t, cands, 3)
	assert.Equal(t, []string{"a|b|c", "d"}, cands[0].Fields, "concentrated left merge first")
	assert.Equal(t, []string{"a|b", "c|d"}, cands[1].Fields, "balanced merge second")
	assert.Equal(t, []string{"a", "b|c|d"}, cands[2].Fields, "concentrated right merge last")
}

// TestGenerator_SpanBudget verifies fail-closed behavior past
// MaxMergeSpan, including the span=0 edge where any surplus rejects.
func TestGenerator_SpanBudget(t *testing.T) {
	opts := split.Options{MaxMergeSpan: 0, MaxCandidates: 4096}
	_, err := split.NewGenerator([]string{"a", "b", "c"}, '|', 2, opts)
	assert.ErrorIs(t, err, split.ErrBudgetExceeded, "span=0 must reject any surplus piece")

	opts = split.Options{MaxMergeSpan: 1, MaxCandidates: 4096}
	_, err = split.NewGenerator([]string{"a", "b", "c", "d", "e"}, '|', 2, opts)
	assert.ErrorIs(t, err, split.ErrBudgetExceeded, "m=3 past span=1 must fail closed")
}

// TestGenerator_CandidateBudget verifies the total-candidate cap.
func TestGenerator_CandidateBudget(t *testing.T) {
	pieces := []string{"a", "b", "c", "d", "e", "f"}
	opts := split.Options{MaxMergeSpan: 2, MaxCandidates: 5}
	// p=6, k=4 → C(5,3)=10 candidates > 5.
	_, err := split.NewGenerator(pieces, '|', 4, opts)
	assert.ErrorIs(t, err, split.ErrBudgetExceeded)

	opts.MaxCandidates = 10
	g, err := split.NewGenerator(pieces, '|', 4, opts)
	require.NoError(t, err)
	assert.Len(t, drain(g), 10, "budget exactly met must enumerate fully")
}

// TestGenerator_PreservesRawText verifies that merged fields rejoin
// pieces with the delimiter verbatim, reproducing the original
// substring of the raw row.
func TestGenerator_PreservesRawText(t *testing.T) {
	pieces := []string{"x", "1", "2", "3"}
	g, err := split.NewGenerator(pieces, ';', 2, split.DefaultOptions())
	require.NoError(t, err)

	cands := drain(g)
	require.Len(t, cands, 3)
	assert.Equal(t, "x;1;2", cands[0].Fields[0], "merge keeps the delimiter between pieces")
	assert.Equal(t, "1;2;3", cands[2].Fields[1])
}
