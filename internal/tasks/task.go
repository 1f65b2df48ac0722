package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidGoal  = errors.New("invalid goal")
)

type GoalKind string

const (
	GoalKindWorkout     GoalKind = "workout_goal"
	GoalKindPR          GoalKind = "pr_goal"
	GoalKindAchievement GoalKind = "achievement_goal"
)

// WorkoutGoal targets a number of completed sessions by a deadline.
type WorkoutGoal struct {
	TargetSessions int        `json:"target_sessions"`
	TargetDate     *time.Time `json:"target_date,omitempty"`
}

// PRGoal targets a record value on one exercise.
type PRGoal struct {
	ExerciseID  int     `json:"exercise_id"`
	PRType      string  `json:"pr_type"`
	TargetValue float64 `json:"target_value"`
}

// AchievementGoal targets unlocking a named achievement.
type AchievementGoal struct {
	AchievementKey string `json:"achievement_key"`
}

// Goal is a tagged union over the known goal kinds. Exactly one payload is
// set, matching Kind.
type Goal struct {
	Kind        GoalKind
	Workout     *WorkoutGoal
	PR          *PRGoal
	Achievement *AchievementGoal
}

type goalEnvelope struct {
	Kind        GoalKind         `json:"kind"`
	Workout     *WorkoutGoal     `json:"workout_goal,omitempty"`
	PR          *PRGoal          `json:"pr_goal,omitempty"`
	Achievement *AchievementGoal `json:"achievement_goal,omitempty"`
}

func (g Goal) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(goalEnvelope{
		Kind:        g.Kind,
		Workout:     g.Workout,
		PR:          g.PR,
		Achievement: g.Achievement,
	})
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	var envelope goalEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	g.Kind = envelope.Kind
	g.Workout = envelope.Workout
	g.PR = envelope.PR
	g.Achievement = envelope.Achievement
	return g.Validate()
}

// Validate checks that the payload matches the kind and carries its
// required fields.
func (g Goal) Validate() error {
	switch g.Kind {
	case GoalKindWorkout:
		if g.Workout == nil || g.PR != nil || g.Achievement != nil {
			return fmt.Errorf("%w: %s needs exactly the workout payload", ErrInvalidGoal, g.Kind)
		}
		if g.Workout.TargetSessions <= 0 {
			return fmt.Errorf("%w: target sessions must be positive", ErrInvalidGoal)
		}
	case GoalKindPR:
		if g.PR == nil || g.Workout != nil || g.Achievement != nil {
			return fmt.Errorf("%w: %s needs exactly the pr payload", ErrInvalidGoal, g.Kind)
		}
		if g.PR.ExerciseID <= 0 || g.PR.PRType == "" || g.PR.TargetValue <= 0 {
			return fmt.Errorf("%w: pr goal needs exercise, type and a positive target", ErrInvalidGoal)
		}
	case GoalKindAchievement:
		if g.Achievement == nil || g.Workout != nil || g.PR != nil {
			return fmt.Errorf("%w: %s needs exactly the achievement payload", ErrInvalidGoal, g.Kind)
		}
		if g.Achievement.AchievementKey == "" {
			return fmt.Errorf("%w: achievement key empty", ErrInvalidGoal)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidGoal, g.Kind)
	}
	return nil
}

type Task struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Goal        *Goal      `json:"goal,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
