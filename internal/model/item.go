package model

// Item is the domain model for a list entry.
// IDs are assigned by the store and never reused.
type Item struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Counts are the derived totals shown next to the list.
type Counts struct {
	All       int `json:"all"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}
