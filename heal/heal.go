package heal

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rowmend/rowmend/fuzzy"
	"github.com/rowmend/rowmend/schema"
	"github.com/rowmend/rowmend/split"
)

// Healer heals rows of one fixed schema. Immutable after construction
// and safe for concurrent use: per-row healing touches no shared
// mutable state.
type Healer struct {
	schema schema.Schema
	opts   Options
	logger *zap.Logger
}

// New validates the configuration once and returns a ready Healer.
// Malformed configuration is the only fatal, batch-aborting condition:
// ErrNoDelimiter, ErrBadConfidence, ErrBadMergeSpan, or a schema built
// with fewer than two fields (schema.ErrTooFewFields).
func New(s schema.Schema, opts Options) (*Healer, error) {
	if s.Arity() < 2 {
		return nil, schema.ErrTooFewFields
	}
	if opts.Delimiter == 0 {
		return nil, ErrNoDelimiter
	}
	if opts.MinConfidence < 0 || opts.MinConfidence > 1 {
		return nil, ErrBadConfidence
	}
	if opts.MaxMergeSpan < 0 {
		return nil, ErrBadMergeSpan
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Healer{schema: s, opts: opts, logger: opts.Logger}, nil
}

// Arity returns the healer's record arity.
func (h *Healer) Arity() int { return h.schema.Arity() }

// HealRow heals one raw row and classifies it. It is a pure function of
// (index, raw): the same input always yields the same record and audit
// entry, and nothing is mutated. The returned Record is nil exactly
// when the entry's outcome is Rejected.
func (h *Healer) HealRow(index int, raw string) (Record, AuditEntry) {
	k := h.schema.Arity()
	pieces := strings.Split(raw, string(h.opts.Delimiter))

	// Fewer pieces than fields: merging cannot raise the field count,
	// so reconstruction is out of scope and the row goes straight to
	// fused-field surgery.
	if len(pieces) < k {
		return h.healFused(index, raw, pieces)
	}

	gen, err := split.NewGenerator(pieces, h.opts.Delimiter, k, split.Options{
		MaxMergeSpan:  h.opts.MaxMergeSpan,
		MaxCandidates: h.opts.MaxCandidates,
	})
	if err != nil {
		// Arity was validated at construction; the only generator
		// failure left is the candidate budget. Fail closed.
		return nil, AuditEntry{
			RowIndex: index,
			Raw:      raw,
			Outcome:  OutcomeRejected,
			Reason:   string(ReasonBudgetExceeded),
		}
	}

	// Exact path: first fully-valid candidate wins, in generation
	// order. Candidates that fail are retained (bounded by the budget)
	// for the fuzzy pass.
	failed := make([]split.Candidate, 0, gen.Count())
	for {
		cand, ok := gen.Next()
		if !ok {
			break
		}
		rec, allValid := h.exactRecord(cand.Fields)
		if !allValid {
			failed = append(failed, cand)
			continue
		}
		if !anyMerged(cand) {
			return rec, AuditEntry{RowIndex: index, Raw: raw, Outcome: OutcomeClean}
		}
		return rec, AuditEntry{
			RowIndex:    index,
			Raw:         raw,
			Outcome:     OutcomeHealed,
			Corrections: reconstructionCorrections(h.schema, cand),
		}
	}

	// Best-effort path: fuzzy value repair over the failed candidates,
	// same order, first acceptable attempt wins.
	return h.healFuzzy(index, raw, failed)
}

// exactRecord validates all fields of a candidate and, when every field
// passes, returns the trimmed record.
func (h *Healer) exactRecord(fields []string) (Record, bool) {
	rec := make(Record, len(fields))
	for i, f := range fields {
		if !h.schema.Valid(i, f) {
			return nil, false
		}
		rec[i] = schema.Trim(f)
	}
	return rec, true
}

// anyMerged reports whether the candidate merged any pieces.
func anyMerged(c split.Candidate) bool {
	for i := range c.Sizes {
		if c.Sizes[i] > 1 {
			return true
		}
	}
	return false
}

// reconstructionCorrections emits one schema-exact correction per
// merged field. The value is unchanged by the merge (pieces rejoin with
// the delimiter verbatim); what was corrected is the split points, so
// confidence is 1.0.
func reconstructionCorrections(s schema.Schema, c split.Candidate) []CorrectionResult {
	var out []CorrectionResult
	for i, f := range c.Fields {
		if !c.Merged(i) {
			continue
		}
		out = append(out, CorrectionResult{
			Field:      s.Name(i),
			Original:   f,
			Corrected:  schema.Trim(f),
			Confidence: 1.0,
			Method:     MethodReconstruction,
		})
	}
	return out
}

// attempt is one complete per-field repair pass over a candidate or a
// fused-piece assignment.
type attempt struct {
	rec         Record
	corrections []CorrectionResult
	minConf     float64
	failures    int
	failedField string
}

// accepted reports whether the attempt produced a full record clearing
// the confidence threshold.
func (a attempt) accepted(threshold float64) bool {
	return a.failures == 0 && a.minConf >= threshold
}

// healFuzzy runs per-field fuzzy repair over the failed candidates in
// generation order and classifies the row from the first acceptable
// attempt, or from the best evidence when none is acceptable.
func (h *Healer) healFuzzy(index int, raw string, cands []split.Candidate) (Record, AuditEntry) {
	var bestFull, bestPartial *attempt
	for _, cand := range cands {
		a := h.repairCandidate(cand)
		if a.accepted(h.opts.MinConfidence) {
			return a.rec, AuditEntry{
				RowIndex:    index,
				Raw:         raw,
				Outcome:     OutcomeHealed,
				Corrections: a.corrections,
			}
		}
		trackBest(&bestFull, &bestPartial, a)
	}
	return nil, h.rejectEntry(index, raw, bestFull, bestPartial, ReasonValidationFailure)
}

// repairCandidate repairs every invalid field of one candidate.
func (h *Healer) repairCandidate(cand split.Candidate) attempt {
	a := attempt{rec: make(Record, len(cand.Fields)), minConf: 1.0}
	for i, f := range cand.Fields {
		if h.schema.Valid(i, f) {
			a.rec[i] = schema.Trim(f)
			if cand.Merged(i) {
				a.corrections = append(a.corrections, CorrectionResult{
					Field:      h.schema.Name(i),
					Original:   f,
					Corrected:  schema.Trim(f),
					Confidence: 1.0,
					Method:     MethodReconstruction,
				})
			}
			continue
		}
		h.repairField(&a, i, schema.Trim(f))
	}
	return a
}

// repairField attempts a single-field fuzzy repair: reference matching
// first, then numeric marker removal for the designated numeric field.
// An unfixable field counts as a failure and is named in the attempt.
func (h *Healer) repairField(a *attempt, i int, value string) {
	name := h.schema.Name(i)
	if m, ok := h.opts.References.Match(name, value); ok {
		a.corrections = append(a.corrections, CorrectionResult{
			Field:      name,
			Original:   value,
			Corrected:  m.Value,
			Confidence: m.Confidence,
			Method:     MethodFuzzy,
		})
		a.rec[i] = m.Value
		if m.Confidence < a.minConf {
			a.minConf = m.Confidence
		}
		return
	}
	if h.schema.Kind(i) == schema.KindNumeric {
		if rep, ok := fuzzy.RepairNumeric(value); ok && h.schema.Valid(i, rep) {
			a.corrections = append(a.corrections, CorrectionResult{
				Field:      name,
				Original:   value,
				Corrected:  rep,
				Confidence: fuzzy.MarkerRepairConfidence,
				Method:     MethodFuzzy,
			})
			a.rec[i] = rep
			if fuzzy.MarkerRepairConfidence < a.minConf {
				a.minConf = fuzzy.MarkerRepairConfidence
			}
			return
		}
	}
	a.failures++
	if a.failedField == "" {
		a.failedField = name
	}
}

// healFused handles under-split rows: d = arity − pieces fields were
// fused into their neighbors by a substituted delimiter. Every choice
// of d fused piece positions is tried in lexicographic order; each
// fused piece is cut at its most plausible marker position and both
// halves are corrected.
func (h *Healer) healFused(index int, raw string, pieces []string) (Record, AuditEntry) {
	k := h.schema.Arity()
	d := k - len(pieces)
	if d > len(pieces) {
		// Even fusing every piece cannot reach the arity.
		return nil, AuditEntry{
			RowIndex: index,
			Raw:      raw,
			Outcome:  OutcomeRejected,
			Reason:   string(ReasonSchemaMismatch),
		}
	}

	var bestFull, bestPartial *attempt
	combo := firstCombination(d)
	for combo != nil {
		a := h.repairFused(pieces, combo)
		if a.accepted(h.opts.MinConfidence) {
			return a.rec, AuditEntry{
				RowIndex:    index,
				Raw:         raw,
				Outcome:     OutcomeHealed,
				Corrections: a.corrections,
			}
		}
		trackBest(&bestFull, &bestPartial, a)
		combo = nextCombination(combo, len(pieces))
	}
	return nil, h.rejectEntry(index, raw, bestFull, bestPartial, ReasonSchemaMismatch)
}

// repairFused repairs one assignment of fused piece positions. Pieces
// at positions in fused cover two adjacent fields each and are split at
// the substituted delimiter; the rest map one-to-one and fall back to
// single-field repair when invalid.
func (h *Healer) repairFused(pieces []string, fused []int) attempt {
	k := h.schema.Arity()
	a := attempt{rec: make(Record, k), minConf: 1.0}
	fi := 0 // next entry of fused to consume
	field := 0
	for q, piece := range pieces {
		v := schema.Trim(piece)
		if fi < len(fused) && fused[fi] == q {
			fi++
			left, right := field, field+1
			l, r, ok := fuzzy.SplitFused(v, h.opts.References,
				fuzzy.Side{Field: h.schema.Name(left), Accept: h.acceptor(left)},
				fuzzy.Side{Field: h.schema.Name(right), Accept: h.acceptor(right)},
			)
			if !ok {
				a.failures++
				if a.failedField == "" {
					a.failedField = h.schema.Name(left)
				}
			} else {
				a.rec[left] = schema.Trim(l.Value)
				a.rec[right] = schema.Trim(r.Value)
				a.corrections = append(a.corrections,
					CorrectionResult{
						Field:      h.schema.Name(left),
						Original:   l.Original,
						Corrected:  l.Value,
						Confidence: l.Confidence,
						Method:     MethodFuzzy,
					},
					CorrectionResult{
						Field:      h.schema.Name(right),
						Original:   r.Original,
						Corrected:  r.Value,
						Confidence: r.Confidence,
						Method:     MethodFuzzy,
					},
				)
				if l.Confidence < a.minConf {
					a.minConf = l.Confidence
				}
				if r.Confidence < a.minConf {
					a.minConf = r.Confidence
				}
			}
			field += 2
			continue
		}
		if h.schema.Valid(field, piece) {
			a.rec[field] = v
		} else {
			h.repairField(&a, field, v)
		}
		field++
	}
	return a
}

// acceptor adapts field i's validator to a plain predicate over a raw
// half value, trimming the way Valid does.
func (h *Healer) acceptor(i int) func(string) bool {
	return func(v string) bool { return h.schema.Valid(i, v) }
}

// trackBest keeps the strongest evidence for the audit trail: among
// complete attempts the highest minimum confidence, among partial ones
// the fewest failures. Earlier attempts win ties (generation order).
func trackBest(bestFull, bestPartial **attempt, a attempt) {
	if a.failures == 0 {
		if *bestFull == nil || a.minConf > (*bestFull).minConf {
			cp := a
			*bestFull = &cp
		}
		return
	}
	if *bestPartial == nil || a.failures < (*bestPartial).failures {
		cp := a
		*bestPartial = &cp
	}
}

// rejectEntry builds the Rejected audit entry from the best available
// evidence. A complete-but-low-confidence attempt keeps its corrections
// in the entry; otherwise the fallback reason applies, naming the
// offending field for validation failures.
func (h *Healer) rejectEntry(index int, raw string, bestFull, bestPartial *attempt, fallback Reason) AuditEntry {
	entry := AuditEntry{RowIndex: index, Raw: raw, Outcome: OutcomeRejected}
	if bestFull != nil {
		entry.Reason = string(ReasonLowConfidence)
		entry.Corrections = bestFull.corrections
		return entry
	}
	entry.Reason = string(fallback)
	if fallback == ReasonValidationFailure && bestPartial != nil && bestPartial.failedField != "" {
		entry.Reason = string(ReasonValidationFailure) + ": " + bestPartial.failedField
		entry.Corrections = bestPartial.corrections
	}
	return entry
}

// firstCombination returns [0, 1, …, d-1]; a nil combination means the
// enumeration is exhausted (d == 0 yields one empty combination).
func firstCombination(d int) []int {
	c := make([]int, d)
	for i := range c {
		c[i] = i
	}
	return c
}

// nextCombination advances c to the next d-combination of {0, …, n-1}
// in lexicographic order, returning nil when exhausted.
func nextCombination(c []int, n int) []int {
	d := len(c)
	if d == 0 {
		return nil
	}
	i := d - 1
	for i >= 0 && c[i] == n-d+i {
		i--
	}
	if i < 0 {
		return nil
	}
	c[i]++
	for j := i + 1; j < d; j++ {
		c[j] = c[j-1] + 1
	}
	return c
}
