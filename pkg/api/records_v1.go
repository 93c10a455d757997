package api

// RecordV1 is the stable JSON schema for one lookup result.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Query  string `json:"query"`
	Kind   string `json:"kind"` // "id" | "pos"
	Found  bool   `json:"found"`
	ID     string `json:"id,omitempty"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Length int    `json:"length"`
	Seq    string `json:"seq,omitempty"`
}

// ReportV1 wraps a load summary and its lookups.
type ReportV1 struct {
	Genome          string     `json:"genome"`
	Records         int        `json:"records"`
	CondensedLength int        `json:"condensed_length"`
	Results         []RecordV1 `json:"results"`
}
