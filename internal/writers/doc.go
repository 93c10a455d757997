// Package writers turns answered lookups into serialized outputs.
//
// Design:
//   - Writers own presentation (TSV text, JSON, JSONL).
//   - core/genome stays domain-only; the app only orchestrates.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
