package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/exercises"
	"github.com/mstojkov/liftlog/internal/records"
	"github.com/mstojkov/liftlog/internal/sessions"
	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/internal/users"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type sessionsSource interface {
	CountCompletedSince(ctx context.Context, userID int, since time.Time) (int, error)
	ListCompleted(ctx context.Context, userID, limit int) ([]sessions.WorkoutSession, error)
	ListSetsForExercise(ctx context.Context, userID, exerciseID, limit int) ([]sessions.ExerciseSet, error)
}

type usersSource interface {
	Get(ctx context.Context, id int) (*users.User, error)
}

type recordsSource interface {
	ListForUser(ctx context.Context, userID int) ([]records.PersonalRecord, error)
	CountSince(ctx context.Context, userID int, since time.Time) (int, error)
}

type catalogSource interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

const recentSessionsCount = 5

// Dashboard is the user's training snapshot: lifetime aggregates plus the
// current calendar month.
type Dashboard struct {
	CurrentStreakDays int                      `json:"current_streak_days"`
	LongestStreakDays int                      `json:"longest_streak_days"`
	TotalVolumeKg     float64                  `json:"total_volume_kg"`
	AccountLevel      users.AccountLevel       `json:"account_level"`
	WorkoutsThisMonth int                      `json:"workouts_this_month"`
	PRsThisMonth      int                      `json:"prs_this_month"`
	RecentSessions    []sessions.WorkoutSession `json:"recent_sessions"`
}

// ExerciseHistory is the recent set log for one catalog exercise.
type ExerciseHistory struct {
	ExerciseID   int                    `json:"exercise_id"`
	ExerciseName string                 `json:"exercise_name"`
	Sets         []sessions.ExerciseSet `json:"sets"`
}

type Service struct {
	sessions sessionsSource
	users    usersSource
	records  recordsSource
	catalog  catalogSource
	NowFunc  func() time.Time
}

func NewService(
	sessionsRepo sessionsSource,
	usersRepo usersSource,
	recordsTracker recordsSource,
	catalog catalogSource,
) *Service {
	return &Service{
		sessions: sessionsRepo,
		users:    usersRepo,
		records:  recordsTracker,
		catalog:  catalog,
		NowFunc:  time.Now,
	}
}

// Dashboard assembles the snapshot. Monthly windows start at the first of
// the current month, UTC.
func (s *Service) Dashboard(ctx context.Context, userID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	now := s.NowFunc().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	workoutsThisMonth, err := s.sessions.CountCompletedSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("count workouts this month: %w", err)
	}
	prsThisMonth, err := s.records.CountSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("count prs this month: %w", err)
	}
	recent, err := s.sessions.ListCompleted(ctx, userID, recentSessionsCount)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}

	return &Dashboard{
		CurrentStreakDays: user.CurrentStreakDays,
		LongestStreakDays: user.LongestStreakDays,
		TotalVolumeKg:     user.TotalVolumeKg,
		AccountLevel:      user.AccountLevel,
		WorkoutsThisMonth: workoutsThisMonth,
		PRsThisMonth:      prsThisMonth,
		RecentSessions:    recent,
	}, nil
}

// PersonalRecords lists the user's records, newest first.
func (s *Service) PersonalRecords(ctx context.Context, userID int) (_ []records.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.personalrecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.records.ListForUser(ctx, userID)
}

var ErrUnknownExercise = errors.New("unknown exercise")

// ExerciseHistory returns the user's recent sets for one exercise.
func (s *Service) ExerciseHistory(ctx context.Context, userID, exerciseID, limit int) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.exercisehistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	exercise, err := s.catalog.Get(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			return nil, ErrUnknownExercise
		}
		return nil, err
	}

	sets, err := s.sessions.ListSetsForExercise(ctx, userID, exerciseID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sets for exercise %d: %w", exerciseID, err)
	}

	return &ExerciseHistory{
		ExerciseID:   exerciseID,
		ExerciseName: exercise.Name,
		Sets:         sets,
	}, nil
}
