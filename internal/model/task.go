package model

import "time"

// Task is the domain model for a single list entry.
// Field names double as the storage format; there is no separate schema version.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
