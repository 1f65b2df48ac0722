package routines

import "time"

// Routine is a reusable workout template owned by a single user. Deleting a
// routine archives it, so completed sessions keep their template reference.
type Routine struct {
	ID              int               `json:"id"`
	UserID          int               `json:"user_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	RoutineType     string            `json:"routine_type"`
	DifficultyLevel string            `json:"difficulty_level"`
	TimesCompleted  int               `json:"times_completed"`
	IsArchived      bool              `json:"is_archived"`
	Exercises       []RoutineExercise `json:"exercises"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// RoutineExercise is one planned slot in a routine: which exercise, in what
// order, and the set/rep/rest prescription.
type RoutineExercise struct {
	ID             int      `json:"id"`
	RoutineID      int      `json:"routine_id"`
	ExerciseID     int      `json:"exercise_id"`
	ExerciseName   string   `json:"exercise_name,omitempty"`
	ExerciseOrder  int      `json:"exercise_order"`
	SetsPlanned    int      `json:"sets_planned"`
	RepsPlanned    *int     `json:"reps_planned,omitempty"`
	RepsMin        *int     `json:"reps_min,omitempty"`
	RepsMax        *int     `json:"reps_max,omitempty"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`
	RestSeconds    int      `json:"rest_seconds"`
	Notes          string   `json:"notes,omitempty"`
}
