package model

import "time"

// Project statuses.
const (
	ProjectStatusConcept   = "concept"
	ProjectStatusProgress  = "progress"
	ProjectStatusCompleted = "completed"
)

// Project is a single portfolio entry shown on the website.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"` // "concept" | "progress" | "completed"
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
