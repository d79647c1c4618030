// pkg/api/slice_v1.go
package api

// SliceV1 is the stable JSON/JSONL schema for one resolved sequence slice.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SliceV1 struct {
	Name       string `json:"name"`
	Chromosome string `json:"chromosome"`
	Start      int    `json:"start"`  // 0-based, inclusive
	Stop       int    `json:"stop"`   // 0-based, exclusive
	Strand     string `json:"strand"` // "+" | "-"
	Length     int    `json:"length"`
	Seq        string `json:"seq,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// ChromosomeV1 describes one indexed chromosome.
type ChromosomeV1 struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
	Lines  int    `json:"lines"`
}
