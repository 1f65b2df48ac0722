package records

import "time"

// PRType names the kind of personal record tracked per (user, exercise)
// pair. Only max weight is computed from logged sets today; the remaining
// types are declared for clients and future computation.
type PRType string

const (
	PRTypeMaxWeight   PRType = "MAX_WEIGHT"
	PRTypeOneRepMax   PRType = "ONE_REP_MAX"
	PRTypeTotalVolume PRType = "TOTAL_VOLUME"
	PRTypeMaxReps     PRType = "MAX_REPS"
)

func (pt PRType) String() string {
	return string(pt)
}

func (pt PRType) IsValid() bool {
	switch pt {
	case PRTypeMaxWeight,
		PRTypeOneRepMax,
		PRTypeTotalVolume,
		PRTypeMaxReps:
		return true
	default:
		return false
	}
}

// PersonalRecord keeps one row per (user, exercise, pr type). A new best
// overwrites the value and moves the old one to PreviousValue for audit.
type PersonalRecord struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	ExerciseID    int       `json:"exercise_id"`
	ExerciseName  string    `json:"exercise_name,omitempty"`
	PRType        PRType    `json:"pr_type"`
	Value         float64   `json:"value"`
	Reps          int       `json:"reps"`
	PreviousValue *float64  `json:"previous_value,omitempty"`
	SessionID     *int      `json:"session_id,omitempty"`
	AchievedAt    time.Time `json:"achieved_at"`
}
