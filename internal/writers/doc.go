// Package writers turns ranked hits into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (CSV, text blocks, JSON/JSONL).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - File output goes through Sink so a failed run leaves nothing behind.
package writers
