// Package extract implements the dialogue extraction engine.
//
// Source documents are nested scene-based JSON of unreliable shape: every
// access is guarded by explicit type checks rather than assumed structure.
// For each dialogue entry the resolver locates a multi-language list among
// the entry's fields, picks one (character, text) pair through an ordered
// list of selection strategies (preferred slots, CJK content scan, reverse
// scan), and falls back to fixed legacy positions when no language list
// exists. The walker flattens a document's scenes into index-aligned text
// and selection outputs, and the formatter serializes them into the
// review-friendly artifacts.
//
// The driver ties it together per file: a modification-time gate against a
// persisted stamp decides which manifest entries need reprocessing, outputs
// are written unconditionally once a file is loaded, and the stamp advances
// only after a run that processed at least one file.
package extract
