package heal

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult aggregates one HealAll run. Records holds the usable rows
// (clean and healed) and Entries holds exactly one audit entry per
// input row; both are ordered by row index.
type BatchResult struct {
	BatchID  uuid.UUID
	Records  []HealedRecord
	Entries  []AuditEntry
	Clean    int
	Healed   int
	Rejected int
}

// HealAll heals rows concurrently across Options.Workers goroutines and
// returns the merged, index-ordered result. Row outcomes never abort
// the batch; the only error is context cancellation.
//
// Rows are split into contiguous partitions, one per worker, so each
// worker appends to private slices and the merge is a single sort.
// Determinism holds regardless of scheduling because HealRow is pure.
func (h *Healer) HealAll(ctx context.Context, rows []string) (*BatchResult, error) {
	res := &BatchResult{BatchID: uuid.New()}
	if len(rows) == 0 {
		return res, nil
	}

	workers := h.opts.Workers
	if workers > len(rows) {
		workers = len(rows)
	}
	recParts := make([][]HealedRecord, workers)
	entParts := make([][]AuditEntry, workers)

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(rows) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(rows) {
			hi = len(rows)
		}
		if lo >= hi {
			continue
		}
		w := w
		g.Go(func() error {
			recs := make([]HealedRecord, 0, hi-lo)
			ents := make([]AuditEntry, 0, hi-lo)
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, entry := h.HealRow(i, rows[i])
				if rec != nil {
					recs = append(recs, HealedRecord{Row: i, Record: rec})
				}
				ents = append(ents, entry)
			}
			recParts[w] = recs
			entParts[w] = ents
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for w := 0; w < workers; w++ {
		res.Records = append(res.Records, recParts[w]...)
		res.Entries = append(res.Entries, entParts[w]...)
	}
	sort.Slice(res.Records, func(i, j int) bool { return res.Records[i].Row < res.Records[j].Row })
	sort.Slice(res.Entries, func(i, j int) bool { return res.Entries[i].RowIndex < res.Entries[j].RowIndex })

	for i := range res.Entries {
		e := &res.Entries[i]
		switch e.Outcome {
		case OutcomeClean:
			res.Clean++
		case OutcomeHealed:
			res.Healed++
			h.logger.Debug("row healed",
				zap.Int("row", e.RowIndex),
				zap.Int("corrections", len(e.Corrections)))
		case OutcomeRejected:
			res.Rejected++
			h.logger.Debug("row rejected",
				zap.Int("row", e.RowIndex),
				zap.String("reason", e.Reason))
		}
	}
	h.logger.Info("batch healed",
		zap.String("batch_id", res.BatchID.String()),
		zap.Int("rows", len(rows)),
		zap.Int("clean", res.Clean),
		zap.Int("healed", res.Healed),
		zap.Int("rejected", res.Rejected))
	return res, nil
}
