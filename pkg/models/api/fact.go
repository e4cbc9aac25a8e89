package api

// FactSummary is the list view of a fact.
type FactSummary struct {
	ID      string `json:"id"`
	Concept string `json:"concept"`
	Period  string `json:"period,omitempty"`
	Unit    string `json:"unit,omitempty"`
	Value   string `json:"value"`
}

// AspectView is one resolved aspect in the inspector.
type AspectView struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Raw   string `json:"raw"`
	Label string `json:"label"`
}

// FactDetail is the inspector view of a fact.
type FactDetail struct {
	ID               string            `json:"id"`
	ConceptLabel     string            `json:"conceptLabel"`
	Value            string            `json:"value"`
	Accuracy         string            `json:"accuracy"`
	Monetary         bool              `json:"monetary"`
	Nil              bool              `json:"nil"`
	Hidden           bool              `json:"hidden"`
	Aspects          []AspectView      `json:"aspects"`
	Dimensions       map[string]string `json:"dimensions,omitempty"`
	Footnotes        []string          `json:"footnotes,omitempty"`
	WiderConcepts    []string          `json:"widerConcepts,omitempty"`
	NarrowerConcepts []string          `json:"narrowerConcepts,omitempty"`
}

// AlignmentResponse lists the facts aligned with the queried one.
type AlignmentResponse struct {
	FactIDs []string `json:"factIds"`
}

// Error is the JSON error body.
type Error struct {
	Message string `json:"message"`
}
