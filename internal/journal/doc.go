// Package journal persists a history of extraction runs in SQLite.
//
// Every completed run records when it started and finished and which files it
// processed or skipped, so `sceneline history` can answer "what did the last
// run touch" without re-reading the workspace. The journal is bookkeeping
// only: extraction correctness never depends on it, and a disabled journal
// (nil *Store) turns every operation into a no-op.
package journal
