// Package audit persists heal audit trails and replays them into
// aggregate statistics.
//
// What:
//   - Sink — append-only destination for heal.AuditEntry values.
//   - MemorySink — in-process buffer, handy for tests and small runs.
//   - JSONLSink — one JSON object per line on any io.Writer; the
//     natural interchange format for downstream log tooling.
//   - SQLiteSink — durable store (modernc.org/sqlite, no cgo) queried
//     with plain SQL after the run.
//   - Replay / Stats — fold a stream of entries into outcome counts
//     and per-reason tallies.
//
// Why:
// Healing is only trustworthy when every automated change is
// reviewable. A batch emits exactly one audit entry per input row;
// sinks record that trail without influencing healing itself.
//
// Concurrency: sinks are not safe for concurrent Append. Drain a
// completed BatchResult (already index-ordered) into a sink from one
// goroutine.
//
// Errors: Append and Close surface the underlying encoder or database
// error; ErrClosed reports use after Close.
package audit
