// Package writers turns resolved slices into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, FASTA, JSON/JSONL).
//   - The fasta store stays domain-only; app code only produces api.SliceV1.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
