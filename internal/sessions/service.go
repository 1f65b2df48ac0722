package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/exercises"
	"github.com/mstojkov/liftlog/internal/fitevents"
	"github.com/mstojkov/liftlog/internal/records"
	"github.com/mstojkov/liftlog/internal/routines"
	"github.com/mstojkov/liftlog/internal/telemetry/metrics"
	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	StartSession(ctx context.Context, session WorkoutSession) (*WorkoutSession, error)
	EnsureActive(ctx context.Context, sessionID, userID int) error
	AddSet(ctx context.Context, userID int, set ExerciseSet) (*ExerciseSet, error)
	UpdateSet(ctx context.Context, userID, sessionID, setID int, params UpdateSetParams) (*ExerciseSet, error)
	DeleteSet(ctx context.Context, userID, sessionID, setID int) error
	AddExercise(ctx context.Context, userID int, se SessionExercise) (*SessionExercise, error)
	Complete(ctx context.Context, userID, sessionID int, endTime time.Time) (*CompletionStats, error)
	Cancel(ctx context.Context, userID, sessionID int) error
	Get(ctx context.Context, userID, sessionID int) (*WorkoutSession, error)
	List(ctx context.Context, userID, limit, skip int) ([]WorkoutSession, error)
	GetActive(ctx context.Context, userID int) (*WorkoutSession, error)
}

type routinesTemplate interface {
	Get(ctx context.Context, id, userID int, includeArchived bool) (*routines.Routine, error)
	IncrementTimesCompleted(ctx context.Context, id int) error
}

type usersStats interface {
	Get(ctx context.Context, id int) (*users.User, error)
	UpdateStreak(ctx context.Context, id int, currentStreak, longestStreak int, lastWorkoutAt time.Time) error
	AddTotalVolume(ctx context.Context, id int, deltaKg float64) (float64, error)
	SetAccountLevel(ctx context.Context, id int, level users.AccountLevel) error
}

type exercisesCatalog interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

type prTracker interface {
	TrackMaxWeight(ctx context.Context, userID, exerciseID, sessionID int, weightKg float64, reps int, achievedAt time.Time) (*records.PersonalRecord, bool, error)
}

type eventsJournal interface {
	AddSessionCompleted(ctx context.Context, sc fitevents.SessionCompleted) (int, error)
	AddPRAchieved(ctx context.Context, pa fitevents.PRAchieved) (int, error)
}

// Service drives the session lifecycle: it seeds rosters from routines,
// validates and books sets, and fans completion out to streaks, volume,
// account level, routine counters and the event journal.
type Service struct {
	repo     sessionsRepo
	routines routinesTemplate
	users    usersStats
	catalog  exercisesCatalog
	tracker  prTracker
	events   eventsJournal
	metrics  *metrics.Manager
	NowFunc  func() time.Time
}

func NewService(
	repo sessionsRepo,
	routinesRepo routinesTemplate,
	usersRepo usersStats,
	catalog exercisesCatalog,
	tracker prTracker,
	events eventsJournal,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		routines: routinesRepo,
		users:    usersRepo,
		catalog:  catalog,
		tracker:  tracker,
		events:   events,
		metrics:  metricsManager,
		NowFunc:  time.Now,
	}
}

type StartParams struct {
	RoutineID *int
	Notes     string
}

// Start opens a new session. With a routine ID the roster is seeded from
// the routine's slots; a routine that cannot be loaded degrades to a blank
// session with a warning, it never fails the start.
func (s *Service) Start(ctx context.Context, userID int, params StartParams) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := s.NowFunc().UTC()
	session := WorkoutSession{
		UserID:      userID,
		SessionDate: now,
		StartTime:   now,
		Notes:       params.Notes,
		Exercises:   make([]SessionExercise, 0),
	}

	routineName := ""
	if params.RoutineID != nil {
		routine, routineErr := s.routines.Get(ctx, *params.RoutineID, userID, false)
		if routineErr != nil {
			log.Warnf("start session for user %d: routine %d unusable, starting blank: %s",
				userID, *params.RoutineID, routineErr)
		} else {
			session.RoutineID = params.RoutineID
			routineName = routine.Name
			for _, re := range routine.Exercises {
				setsPlanned := re.SetsPlanned
				restSeconds := re.RestSeconds
				session.Exercises = append(session.Exercises, SessionExercise{
					ExerciseID:     re.ExerciseID,
					ExerciseName:   re.ExerciseName,
					SetsPlanned:    &setsPlanned,
					RepsPlanned:    re.RepsPlanned,
					RepsMin:        re.RepsMin,
					RepsMax:        re.RepsMax,
					TargetWeightKg: re.TargetWeightKg,
					RestSeconds:    &restSeconds,
					Notes:          re.Notes,
				})
			}
		}
	}

	started, err := s.repo.StartSession(ctx, session)
	if err != nil {
		return nil, err
	}
	started.RoutineName = routineName

	s.metrics.CounterSessionsStarted.Inc()
	return started, nil
}

type AddSetParams struct {
	ExerciseID    int
	SetNumber     int
	RepsCompleted int
	WeightKg      float64
	RPE           *float64
	IsWarmup      bool
	IsFailure     bool
	Notes         string
}

// AddSet validates and books one set. For non-warmup sets the weight is
// offered as a MAX_WEIGHT candidate first, so the stored set carries the
// is_pr flag it earned.
func (s *Service) AddSet(ctx context.Context, userID, sessionID int, params AddSetParams) (_ *ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	if err := validateSetInput(params.RepsCompleted, params.WeightKg, params.RPE); err != nil {
		return nil, err
	}
	if _, err := s.catalog.Get(ctx, params.ExerciseID); err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			return nil, fmt.Errorf("%w: unknown exercise %d", ErrValidation, params.ExerciseID)
		}
		return nil, err
	}

	// the record upsert below writes outside the session tables, so the
	// session must be known good before any weight is offered
	if err := s.repo.EnsureActive(ctx, sessionID, userID); err != nil {
		return nil, err
	}

	now := s.NowFunc().UTC()
	isPR := false
	if !params.IsWarmup {
		record, gotPR, trackErr := s.tracker.TrackMaxWeight(ctx, userID, params.ExerciseID, sessionID, params.WeightKg, params.RepsCompleted, now)
		if trackErr != nil {
			return nil, trackErr
		}
		isPR = gotPR
		if isPR {
			s.metrics.CounterPersonalRecords.Inc()
			if _, evErr := s.events.AddPRAchieved(ctx, fitevents.PRAchieved{
				UserID:     userID,
				ExerciseID: params.ExerciseID,
				PRType:     string(record.PRType),
				Value:      record.Value,
				Timestamp:  now,
			}); evErr != nil {
				log.Errorf("add pr achieved event for user %d: %s", userID, evErr)
			}
		}
	}

	set, err := s.repo.AddSet(ctx, userID, ExerciseSet{
		SessionID:     sessionID,
		ExerciseID:    params.ExerciseID,
		SetNumber:     params.SetNumber,
		RepsCompleted: params.RepsCompleted,
		WeightKg:      params.WeightKg,
		RPE:           params.RPE,
		IsWarmup:      params.IsWarmup,
		IsFailure:     params.IsFailure,
		IsPR:          isPR,
		CompletedAt:   now,
		Notes:         params.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSetsLogged.Inc()
	return set, nil
}

// UpdateSet replaces a set's recorded numbers. Personal records already
// granted stay granted.
func (s *Service) UpdateSet(ctx context.Context, userID, sessionID, setID int, params UpdateSetParams) (_ *ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.updateset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	if err := validateSetInput(params.RepsCompleted, params.WeightKg, params.RPE); err != nil {
		return nil, err
	}
	return s.repo.UpdateSet(ctx, userID, sessionID, setID, params)
}

func (s *Service) DeleteSet(ctx context.Context, userID, sessionID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.deleteset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	return s.repo.DeleteSet(ctx, userID, sessionID, setID)
}

type AddExerciseParams struct {
	ExerciseID     int
	SetsPlanned    *int
	RepsPlanned    *int
	RepsMin        *int
	RepsMax        *int
	TargetWeightKg *float64
	RestSeconds    *int
	Notes          string
}

// AddExercise appends a roster slot to an active session.
func (s *Service) AddExercise(ctx context.Context, userID, sessionID int, params AddExerciseParams) (_ *SessionExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	exercise, err := s.catalog.Get(ctx, params.ExerciseID)
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			return nil, fmt.Errorf("%w: unknown exercise %d", ErrValidation, params.ExerciseID)
		}
		return nil, err
	}

	se, err := s.repo.AddExercise(ctx, userID, SessionExercise{
		SessionID:      sessionID,
		ExerciseID:     params.ExerciseID,
		SetsPlanned:    params.SetsPlanned,
		RepsPlanned:    params.RepsPlanned,
		RepsMin:        params.RepsMin,
		RepsMax:        params.RepsMax,
		TargetWeightKg: params.TargetWeightKg,
		RestSeconds:    params.RestSeconds,
		Notes:          params.Notes,
	})
	if err != nil {
		return nil, err
	}

	se.ExerciseName = exercise.Name
	return se, nil
}

// Complete finishes the session and applies the downstream effects:
// streak, lifetime volume, account level, routine completion counter and
// the journal entry. The flip itself decides the winner; everything after
// it runs once, for the winner only.
func (s *Service) Complete(ctx context.Context, userID, sessionID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	now := s.NowFunc().UTC()
	stats, err := s.repo.Complete(ctx, userID, sessionID, now)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d after completion: %w", userID, err)
	}

	// streaks count gym days, so both sides of the comparison use
	// session_date: a session started before midnight and completed after
	// belongs to the day it was started
	sessionDay := stats.SessionDate.UTC()
	newCurrent, newLongest := users.NextStreak(
		user.CurrentStreakDays, user.LongestStreakDays, user.LastWorkoutAt, sessionDay,
	)
	if err := s.users.UpdateStreak(ctx, userID, newCurrent, newLongest, sessionDay); err != nil {
		return nil, fmt.Errorf("update streak for user %d: %w", userID, err)
	}

	newTotal, err := s.users.AddTotalVolume(ctx, userID, stats.TotalVolumeKg)
	if err != nil {
		return nil, fmt.Errorf("add total volume for user %d: %w", userID, err)
	}
	if err := s.users.SetAccountLevel(ctx, userID, users.LevelForVolume(newTotal)); err != nil {
		return nil, fmt.Errorf("set account level for user %d: %w", userID, err)
	}

	if stats.RoutineID != nil {
		if incErr := s.routines.IncrementTimesCompleted(ctx, *stats.RoutineID); incErr != nil {
			log.Errorf("increment times completed for routine %d: %s", *stats.RoutineID, incErr)
		}
	}

	if _, evErr := s.events.AddSessionCompleted(ctx, fitevents.SessionCompleted{
		UserID:          userID,
		SessionID:       sessionID,
		DurationMinutes: stats.DurationMinutes,
		TotalVolumeKg:   stats.TotalVolumeKg,
		TotalSets:       stats.TotalSets,
		Timestamp:       now,
	}); evErr != nil {
		log.Errorf("add session completed event for user %d: %s", userID, evErr)
	}

	s.metrics.CounterSessionsCompleted.Inc()
	return s.repo.Get(ctx, userID, sessionID)
}

// Cancel discards an active session. Nothing aggregated on the user is
// rolled back because nothing was applied before completion.
func (s *Service) Cancel(ctx context.Context, userID, sessionID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	if err := s.repo.Cancel(ctx, userID, sessionID); err != nil {
		return err
	}
	s.metrics.CounterSessionsCancelled.Inc()
	return nil
}

func (s *Service) Get(ctx context.Context, userID, sessionID int) (*WorkoutSession, error) {
	return s.repo.Get(ctx, userID, sessionID)
}

func (s *Service) List(ctx context.Context, userID, limit, skip int) ([]WorkoutSession, error) {
	return s.repo.List(ctx, userID, limit, skip)
}

func (s *Service) GetActive(ctx context.Context, userID int) (*WorkoutSession, error) {
	return s.repo.GetActive(ctx, userID)
}

func validateSetInput(reps int, weightKg float64, rpe *float64) error {
	if reps < 0 {
		return fmt.Errorf("%w: reps must not be negative", ErrValidation)
	}
	if weightKg < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrValidation)
	}
	if rpe != nil && (*rpe < 0 || *rpe > 10) {
		return fmt.Errorf("%w: rpe must be between 0 and 10", ErrValidation)
	}
	return nil
}
