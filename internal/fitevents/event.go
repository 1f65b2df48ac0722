package fitevents

import (
	"fmt"
	"time"
)

// SessionCompleted captures the outcome of a finished workout session.
type SessionCompleted struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	SessionID       int       `json:"session_id"`
	Timestamp       time.Time `json:"timestamp"`
	DurationMinutes int       `json:"duration_minutes"`
	TotalVolumeKg   float64   `json:"total_volume_kg"`
	TotalSets       int       `json:"total_sets"`
}

// PRAchieved marks a new personal record.
type PRAchieved struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	ExerciseID int       `json:"exercise_id"`
	PRType     string    `json:"pr_type"`
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event (DB level type) is the append-only fitness event record downstream
// consumers (achievements, tasks) read from.
type Event struct {
	ID        int               `json:"id"`
	UserID    int               `json:"user_id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewSessionCompletedEvent(sc SessionCompleted) Event {
	return Event{
		ID:        sc.ID,
		UserID:    sc.UserID,
		Type:      EventTypeSessionCompleted,
		Timestamp: sc.Timestamp,
		Data: map[string]string{
			"session_id":       fmt.Sprintf("%d", sc.SessionID),
			"duration_minutes": fmt.Sprintf("%d", sc.DurationMinutes),
			"total_volume_kg":  fmt.Sprintf("%.2f", sc.TotalVolumeKg),
			"total_sets":       fmt.Sprintf("%d", sc.TotalSets),
		},
	}
}

func NewPRAchievedEvent(pa PRAchieved) Event {
	return Event{
		ID:        pa.ID,
		UserID:    pa.UserID,
		Type:      EventTypePRAchieved,
		Timestamp: pa.Timestamp,
		Data: map[string]string{
			"exercise_id": fmt.Sprintf("%d", pa.ExerciseID),
			"pr_type":     pa.PRType,
			"value":       fmt.Sprintf("%.2f", pa.Value),
		},
	}
}

// EventType can be one of:
//   - session_completed
//   - pr_achieved
type EventType string

const (
	EventTypeSessionCompleted EventType = "session_completed"
	EventTypePRAchieved       EventType = "pr_achieved"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeSessionCompleted,
		EventTypePRAchieved:
		return true
	default:
		return false
	}
}
