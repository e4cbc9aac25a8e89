package store

// ReportData is the raw table set a viewer data file carries: everything the
// fact layer resolves against. Immutable once loaded.
type ReportData struct {
	// Prefixes maps namespace prefixes to namespace URIs.
	Prefixes map[string]string `json:"prefixes"`
	// Concepts keyed by prefixed concept name.
	Concepts map[string]ConceptRecord `json:"concepts"`
	// Facts keyed by fact id.
	Facts map[string]FactRecord `json:"facts"`
	// Rels maps arcrole -> extended link role -> edge list.
	Rels map[string]map[string][]Edge `json:"rels"`
	// IXNodes carries per-fact presentation flags keyed by fact id.
	IXNodes map[string]PresentationNode `json:"ixNodes"`
	// FootnoteItems keyed by item id, for footnotes that are not facts.
	FootnoteItems map[string]FootnoteRecord `json:"footnotes"`
}

type ConceptRecord struct {
	// Labels maps label role -> language -> text.
	Labels      map[string]map[string]string `json:"labels"`
	Enumeration bool                         `json:"en"`
	TextBlock   bool                         `json:"tb"`
}

// Edge is one directed relationship between two concepts within an extended
// link role.
type Edge struct {
	Src    string `json:"src"`
	Target string `json:"t"`
}

type PresentationNode struct {
	Hidden     bool `json:"hidden"`
	HTMLHidden bool `json:"htmlHidden"`
	Escaped    bool `json:"escaped"`
	Footnote   bool `json:"footnote"`
}

type FootnoteRecord struct {
	Text string `json:"text"`
}
