package exercises

import "time"

// Exercise is a catalog entry from the exercise encyclopedia. Catalog rows
// are referenced by workout sessions and personal records, never deleted.
type Exercise struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Muscle       string    `json:"muscle"`
	ExerciseType string    `json:"exercise_type,omitempty"`
	Pattern      string    `json:"pattern,omitempty"`
	Equipment    string    `json:"equipment,omitempty"`
	Subtype      string    `json:"subtype,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
