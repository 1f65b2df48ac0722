package sessions

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound          = errors.New("session not found")
	ErrSessionCompleted         = errors.New("session already completed")
	ErrActiveSessionExists      = errors.New("an active session already exists")
	ErrNoActiveSession          = errors.New("no active session")
	ErrSetNotFound              = errors.New("set not found")
	ErrExerciseAlreadyInSession = errors.New("exercise already in session")
	ErrValidation               = errors.New("validation failed")
)

// WorkoutSession is the mutable heart of the system: a single gym visit,
// ACTIVE until completed or cancelled. Totals are aggregates over working
// (non-warmup) sets, maintained by field level SQL increments in the same
// transaction as each set write.
type WorkoutSession struct {
	ID              int               `json:"id"`
	UserID          int               `json:"user_id"`
	RoutineID       *int              `json:"routine_id,omitempty"`
	RoutineName     string            `json:"routine_name,omitempty"`
	SessionDate     time.Time         `json:"session_date"`
	StartTime       time.Time         `json:"start_time"`
	EndTime         *time.Time        `json:"end_time,omitempty"`
	DurationMinutes *int              `json:"duration_minutes,omitempty"`
	TotalVolumeKg   float64           `json:"total_volume_kg"`
	TotalSets       int               `json:"total_sets"`
	TotalReps       int               `json:"total_reps"`
	IsCompleted     bool              `json:"is_completed"`
	Notes           string            `json:"notes,omitempty"`
	Exercises       []SessionExercise `json:"exercises"`
}

// SessionExercise is one roster slot of a session. For routine sessions
// the roster is seeded from the template at start (with the planning
// prescription retained); for ad-hoc sessions slots appear lazily when the
// first set of a new exercise is logged.
type SessionExercise struct {
	ID             int           `json:"id"`
	SessionID      int           `json:"session_id"`
	ExerciseID     int           `json:"exercise_id"`
	ExerciseName   string        `json:"exercise_name,omitempty"`
	ExerciseOrder  int           `json:"exercise_order"`
	SetsPlanned    *int          `json:"sets_planned,omitempty"`
	RepsPlanned    *int          `json:"reps_planned,omitempty"`
	RepsMin        *int          `json:"reps_min,omitempty"`
	RepsMax        *int          `json:"reps_max,omitempty"`
	TargetWeightKg *float64      `json:"target_weight_kg,omitempty"`
	RestSeconds    *int          `json:"rest_seconds,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	Sets           []ExerciseSet `json:"sets"`
}

// ExerciseSet is one immutable-ish ledger line: what was actually lifted.
// Warmup sets are kept in the ledger but never contribute to aggregates or
// personal records.
type ExerciseSet struct {
	ID                int       `json:"id"`
	SessionExerciseID int       `json:"session_exercise_id"`
	SessionID         int       `json:"session_id"`
	ExerciseID        int       `json:"exercise_id"`
	SetNumber         int       `json:"set_number"`
	RepsCompleted     int       `json:"reps_completed"`
	WeightKg          float64   `json:"weight_kg"`
	RPE               *float64  `json:"rpe,omitempty"`
	IsWarmup          bool      `json:"is_warmup"`
	IsFailure         bool      `json:"is_failure"`
	IsPR              bool      `json:"is_pr"`
	CompletedAt       time.Time `json:"completed_at"`
	Notes             string    `json:"notes,omitempty"`
}

// Volume returns the set's contribution to session volume, zero for
// warmup sets.
func (s ExerciseSet) Volume() float64 {
	if s.IsWarmup {
		return 0
	}
	return s.WeightKg * float64(s.RepsCompleted)
}
