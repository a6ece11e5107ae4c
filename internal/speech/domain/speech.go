package domain

// SearchFilter carries the parsed /search query parameters. A zero DeputyID
// means no single-deputy restriction.
type SearchFilter struct {
	Term       string
	Party      string
	State      string
	Type       string
	PeriodDays int
	DeputyID   int
	Page       int
}

// Narrowed reports whether the filter restricts the candidate deputy set at
// all. Unrestricted searches are refused rather than fanned out over the
// whole chamber.
func (f SearchFilter) Narrowed() bool {
	return f.DeputyID != 0 || f.Party != "" || f.State != ""
}

// SpeechRecord is one normalized floor speech, denormalized with the
// speaking deputy's current status so the front end needs no second lookup.
type SpeechRecord struct {
	DeputyID   int    `json:"deputy_id"`
	Name       string `json:"name"`
	Party      string `json:"party"`
	State      string `json:"state"`
	Photo      string `json:"photo"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Summary    string `json:"summary"`
	Transcript string `json:"transcript"`
	Event      string `json:"event"`
	SpeechID   string `json:"speech_id"`
}

// SearchResult is one page of aggregated speeches. Total counts everything
// that matched before pagination. Message explains an empty result that is
// not an error (no narrowing filter, no candidates).
type SearchResult struct {
	Total   int            `json:"total"`
	Items   []SpeechRecord `json:"items"`
	Message string         `json:"message,omitempty"`
}
