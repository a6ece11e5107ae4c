package domain

// DeputySummary identifies one deputy as listed by the upstream collection
// endpoint.
type DeputySummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	State string `json:"state"`
	Photo string `json:"photo"`
}
