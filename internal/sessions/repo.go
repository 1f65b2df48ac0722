package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// StartSession inserts the session and its seeded roster in one
// transaction. The partial unique index on (user_id) WHERE NOT is_completed
// makes the one-active-session rule hold under concurrent starts: the
// second insert fails with a unique violation, surfaced as
// ErrActiveSessionExists.
func (r *Repo) StartSession(ctx context.Context, session WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", session.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(
		ctx,
		`INSERT INTO workout_session
				(user_id, routine_id, session_date, start_time, notes)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		session.UserID, session.RoutineID, session.SessionDate, session.StartTime, session.Notes,
	).Scan(&session.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrActiveSessionExists
		}
		return nil, fmt.Errorf("insert session: %w", err)
	}

	for i := range session.Exercises {
		se := &session.Exercises[i]
		se.SessionID = session.ID
		se.ExerciseOrder = i + 1
		err = tx.QueryRow(
			ctx,
			`INSERT INTO session_exercise
					(session_id, exercise_id, exercise_order, sets_planned, reps_planned,
					reps_min, reps_max, target_weight_kg, rest_seconds, notes)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id;`,
			se.SessionID, se.ExerciseID, se.ExerciseOrder, se.SetsPlanned, se.RepsPlanned,
			se.RepsMin, se.RepsMax, se.TargetWeightKg, se.RestSeconds, se.Notes,
		).Scan(&se.ID)
		if err != nil {
			return nil, fmt.Errorf("insert session exercise: %w", err)
		}
		se.Sets = make([]ExerciseSet, 0)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

// AddSet appends a ledger line and, for working sets, applies the volume,
// set and rep increments to the session row inside the same transaction.
// A roster slot for the exercise is created lazily, ordered after the
// existing distinct exercises.
func (r *Repo) AddSet(ctx context.Context, userID int, set ExerciseSet) (_ *ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", set.SessionID))
	span.SetAttributes(attribute.Int("exercise.id", set.ExerciseID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = r.lockActiveSession(ctx, tx, set.SessionID, userID); err != nil {
		return nil, err
	}

	// get or create the roster slot for this exercise
	err = tx.QueryRow(
		ctx,
		`SELECT id FROM session_exercise WHERE session_id = $1 AND exercise_id = $2;`,
		set.SessionID, set.ExerciseID,
	).Scan(&set.SessionExerciseID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(
			ctx,
			`INSERT INTO session_exercise (session_id, exercise_id, exercise_order)
				VALUES ($1, $2, (SELECT COUNT(*) + 1 FROM session_exercise WHERE session_id = $1))
				RETURNING id;`,
			set.SessionID, set.ExerciseID,
		).Scan(&set.SessionExerciseID)
	}
	if err != nil {
		return nil, fmt.Errorf("session exercise: %w", err)
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO exercise_set
				(session_exercise_id, session_id, exercise_id, set_number, reps_completed,
				weight_kg, rpe, is_warmup, is_failure, is_pr, completed_at, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id;`,
		set.SessionExerciseID, set.SessionID, set.ExerciseID, set.SetNumber, set.RepsCompleted,
		set.WeightKg, set.RPE, set.IsWarmup, set.IsFailure, set.IsPR, set.CompletedAt, set.Notes,
	).Scan(&set.ID)
	if err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	if !set.IsWarmup {
		if _, err = tx.Exec(
			ctx,
			`UPDATE workout_session SET
					total_volume_kg = total_volume_kg + $1,
					total_sets = total_sets + 1,
					total_reps = total_reps + $2
				WHERE id = $3;`,
			set.Volume(), set.RepsCompleted, set.SessionID,
		); err != nil {
			return nil, fmt.Errorf("update session totals: %w", err)
		}
	}

	span.SetAttributes(attribute.Int("set.id", set.ID))
	return &set, nil
}

type UpdateSetParams struct {
	SetNumber     int
	RepsCompleted int
	WeightKg      float64
	RPE           *float64
	IsWarmup      bool
	IsFailure     bool
	Notes         string
}

// UpdateSet overwrites the ledger line and applies the aggregate delta,
// including warmup flag flips, in the same transaction. The is_pr flag is
// audit data from insertion time and stays untouched.
func (r *Repo) UpdateSet(ctx context.Context, userID, sessionID, setID int, params UpdateSetParams) (_ *ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.updateset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("set.id", setID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = r.lockActiveSession(ctx, tx, sessionID, userID); err != nil {
		return nil, err
	}

	var old ExerciseSet
	err = tx.QueryRow(
		ctx,
		`SELECT id, session_exercise_id, session_id, exercise_id, set_number, reps_completed,
				weight_kg, rpe, is_warmup, is_failure, is_pr, completed_at, notes
			FROM exercise_set
			WHERE id = $1 AND session_id = $2
			FOR UPDATE;`,
		setID, sessionID,
	).Scan(
		&old.ID, &old.SessionExerciseID, &old.SessionID, &old.ExerciseID, &old.SetNumber,
		&old.RepsCompleted, &old.WeightKg, &old.RPE, &old.IsWarmup, &old.IsFailure,
		&old.IsPR, &old.CompletedAt, &old.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}

	updated := old
	updated.SetNumber = params.SetNumber
	updated.RepsCompleted = params.RepsCompleted
	updated.WeightKg = params.WeightKg
	updated.RPE = params.RPE
	updated.IsWarmup = params.IsWarmup
	updated.IsFailure = params.IsFailure
	updated.Notes = params.Notes

	if _, err = tx.Exec(
		ctx,
		`UPDATE exercise_set SET
				set_number = $1, reps_completed = $2, weight_kg = $3, rpe = $4,
				is_warmup = $5, is_failure = $6, notes = $7
			WHERE id = $8;`,
		updated.SetNumber, updated.RepsCompleted, updated.WeightKg, updated.RPE,
		updated.IsWarmup, updated.IsFailure, updated.Notes, updated.ID,
	); err != nil {
		return nil, fmt.Errorf("update set: %w", err)
	}

	volumeDelta, setsDelta, repsDelta := aggregateDelta(old, updated)
	if volumeDelta != 0 || setsDelta != 0 || repsDelta != 0 {
		if _, err = tx.Exec(
			ctx,
			`UPDATE workout_session SET
					total_volume_kg = total_volume_kg + $1,
					total_sets = total_sets + $2,
					total_reps = total_reps + $3
				WHERE id = $4;`,
			volumeDelta, setsDelta, repsDelta, sessionID,
		); err != nil {
			return nil, fmt.Errorf("update session totals: %w", err)
		}
	}

	return &updated, nil
}

// DeleteSet removes the ledger line and reverses its aggregate
// contribution in the same transaction.
func (r *Repo) DeleteSet(ctx context.Context, userID, sessionID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.deleteset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("set.id", setID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = r.lockActiveSession(ctx, tx, sessionID, userID); err != nil {
		return err
	}

	var deleted ExerciseSet
	err = tx.QueryRow(
		ctx,
		`DELETE FROM exercise_set
			WHERE id = $1 AND session_id = $2
			RETURNING reps_completed, weight_kg, is_warmup;`,
		setID, sessionID,
	).Scan(&deleted.RepsCompleted, &deleted.WeightKg, &deleted.IsWarmup)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSetNotFound
		}
		return err
	}

	if !deleted.IsWarmup {
		if _, err = tx.Exec(
			ctx,
			`UPDATE workout_session SET
					total_volume_kg = total_volume_kg - $1,
					total_sets = total_sets - 1,
					total_reps = total_reps - $2
				WHERE id = $3;`,
			deleted.Volume(), deleted.RepsCompleted, sessionID,
		); err != nil {
			return fmt.Errorf("update session totals: %w", err)
		}
	}

	return nil
}

// AddExercise adds a roster slot to an active session. The unique index on
// (session_id, exercise_id) rejects duplicates.
func (r *Repo) AddExercise(ctx context.Context, userID int, se SessionExercise) (_ *SessionExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", se.SessionID))
	span.SetAttributes(attribute.Int("exercise.id", se.ExerciseID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = r.lockActiveSession(ctx, tx, se.SessionID, userID); err != nil {
		return nil, err
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO session_exercise
				(session_id, exercise_id, exercise_order, sets_planned, reps_planned,
				reps_min, reps_max, target_weight_kg, rest_seconds, notes)
				VALUES ($1, $2,
					(SELECT COUNT(*) + 1 FROM session_exercise WHERE session_id = $1),
					$3, $4, $5, $6, $7, $8, $9)
			RETURNING id, exercise_order;`,
		se.SessionID, se.ExerciseID, se.SetsPlanned, se.RepsPlanned,
		se.RepsMin, se.RepsMax, se.TargetWeightKg, se.RestSeconds, se.Notes,
	).Scan(&se.ID, &se.ExerciseOrder)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseAlreadyInSession
		}
		return nil, err
	}

	se.Sets = make([]ExerciseSet, 0)
	return &se, nil
}

type CompletionStats struct {
	RoutineID       *int
	SessionDate     time.Time
	DurationMinutes int
	TotalVolumeKg   float64
	TotalSets       int
	TotalReps       int
}

// Complete flips is_completed with a single conditional update, so exactly
// one of any number of concurrent completion attempts wins.
func (r *Repo) Complete(ctx context.Context, userID, sessionID int, endTime time.Time) (_ *CompletionStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	var stats CompletionStats
	err = r.db.QueryRow(
		ctx,
		`UPDATE workout_session SET
				is_completed = true,
				end_time = $1,
				duration_minutes = FLOOR(EXTRACT(EPOCH FROM ($1 - start_time)) / 60)
			WHERE id = $2 AND user_id = $3 AND NOT is_completed
			RETURNING routine_id, session_date, duration_minutes, total_volume_kg, total_sets, total_reps;`,
		endTime, sessionID, userID,
	).Scan(&stats.RoutineID, &stats.SessionDate, &stats.DurationMinutes, &stats.TotalVolumeKg, &stats.TotalSets, &stats.TotalReps)
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// decide whether the session is missing or already completed
	var exists bool
	if checkErr := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM workout_session WHERE id = $1 AND user_id = $2);`,
		sessionID, userID,
	).Scan(&exists); checkErr != nil {
		return nil, checkErr
	}
	if exists {
		return nil, ErrSessionCompleted
	}
	return nil, ErrSessionNotFound
}

// Cancel discards an active session together with its roster and ledger.
// User aggregates are never touched here.
func (r *Repo) Cancel(ctx context.Context, userID, sessionID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = r.lockActiveSession(ctx, tx, sessionID, userID); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_set WHERE session_id = $1;`, sessionID); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM session_exercise WHERE session_id = $1;`, sessionID); err != nil {
		return fmt.Errorf("delete session exercises: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM workout_session WHERE id = $1;`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// Get returns the full session view: roster in order, each slot with its
// sets ordered by set number. All sets of the session come back in one
// query and are grouped in memory.
func (r *Repo) Get(ctx context.Context, userID, sessionID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	var session WorkoutSession
	err = r.db.QueryRow(
		ctx,
		`SELECT ws.id, ws.user_id, ws.routine_id, COALESCE(r.name, ''), ws.session_date,
				ws.start_time, ws.end_time, ws.duration_minutes, ws.total_volume_kg,
				ws.total_sets, ws.total_reps, ws.is_completed, ws.notes
			FROM workout_session ws
			LEFT JOIN routine r ON ws.routine_id = r.id
			WHERE ws.id = $1 AND ws.user_id = $2;`,
		sessionID, userID,
	).Scan(
		&session.ID, &session.UserID, &session.RoutineID, &session.RoutineName,
		&session.SessionDate, &session.StartTime, &session.EndTime, &session.DurationMinutes,
		&session.TotalVolumeKg, &session.TotalSets, &session.TotalReps,
		&session.IsCompleted, &session.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT se.id, se.session_id, se.exercise_id, e.name, se.exercise_order,
				se.sets_planned, se.reps_planned, se.reps_min, se.reps_max,
				se.target_weight_kg, se.rest_seconds, se.notes
			FROM session_exercise se
			JOIN exercise e ON se.exercise_id = e.id
			WHERE se.session_id = $1
			ORDER BY se.exercise_order;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	session.Exercises = make([]SessionExercise, 0)
	slotIndex := make(map[int]int)
	for rows.Next() {
		var se SessionExercise
		var notes *string
		if err := rows.Scan(
			&se.ID, &se.SessionID, &se.ExerciseID, &se.ExerciseName, &se.ExerciseOrder,
			&se.SetsPlanned, &se.RepsPlanned, &se.RepsMin, &se.RepsMax,
			&se.TargetWeightKg, &se.RestSeconds, &notes,
		); err != nil {
			return nil, err
		}
		if notes != nil {
			se.Notes = *notes
		}
		se.Sets = make([]ExerciseSet, 0)
		slotIndex[se.ID] = len(session.Exercises)
		session.Exercises = append(session.Exercises, se)
	}

	setRows, err := r.db.Query(
		ctx,
		`SELECT id, session_exercise_id, session_id, exercise_id, set_number, reps_completed,
				weight_kg, rpe, is_warmup, is_failure, is_pr, completed_at, notes
			FROM exercise_set
			WHERE session_id = $1
			ORDER BY session_exercise_id, set_number;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer setRows.Close()

	if err := setRows.Err(); err != nil {
		return nil, err
	}

	for setRows.Next() {
		var set ExerciseSet
		if err := setRows.Scan(
			&set.ID, &set.SessionExerciseID, &set.SessionID, &set.ExerciseID, &set.SetNumber,
			&set.RepsCompleted, &set.WeightKg, &set.RPE, &set.IsWarmup, &set.IsFailure,
			&set.IsPR, &set.CompletedAt, &set.Notes,
		); err != nil {
			return nil, err
		}
		if idx, ok := slotIndex[set.SessionExerciseID]; ok {
			session.Exercises[idx].Sets = append(session.Exercises[idx].Sets, set)
		}
	}

	return &session, nil
}

// List returns session summaries, newest first, without rosters.
func (r *Repo) List(ctx context.Context, userID, limit, skip int) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("skip", skip))

	rows, err := r.db.Query(
		ctx,
		`SELECT ws.id, ws.user_id, ws.routine_id, COALESCE(r.name, ''), ws.session_date,
				ws.start_time, ws.end_time, ws.duration_minutes, ws.total_volume_kg,
				ws.total_sets, ws.total_reps, ws.is_completed, ws.notes
			FROM workout_session ws
			LEFT JOIN routine r ON ws.routine_id = r.id
			WHERE ws.user_id = $1
			ORDER BY ws.session_date DESC
			LIMIT $2 OFFSET $3;`,
		userID, limit, skip,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2sessions(rows)
}

// ListCompleted returns the newest completed sessions, used for the
// dashboard's recent activity.
func (r *Repo) ListCompleted(ctx context.Context, userID, limit int) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT ws.id, ws.user_id, ws.routine_id, COALESCE(r.name, ''), ws.session_date,
				ws.start_time, ws.end_time, ws.duration_minutes, ws.total_volume_kg,
				ws.total_sets, ws.total_reps, ws.is_completed, ws.notes
			FROM workout_session ws
			LEFT JOIN routine r ON ws.routine_id = r.id
			WHERE ws.user_id = $1 AND ws.is_completed
			ORDER BY ws.session_date DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2sessions(rows)
}

// GetActive returns the user's single in-progress session, full view.
func (r *Repo) GetActive(ctx context.Context, userID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var sessionID int
	err = r.db.QueryRow(
		ctx,
		`SELECT id FROM workout_session WHERE user_id = $1 AND NOT is_completed;`,
		userID,
	).Scan(&sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	return r.Get(ctx, userID, sessionID)
}

// CountCompletedSince counts completed sessions dated at or after the
// given instant.
func (r *Repo) CountCompletedSince(ctx context.Context, userID int, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.countcompletedsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_session
			WHERE user_id = $1 AND is_completed AND session_date >= $2;`,
		userID, since,
	).Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}

// ListSetsForExercise returns the user's logged sets for one catalog
// exercise, most recent first.
func (r *Repo) ListSetsForExercise(ctx context.Context, userID, exerciseID, limit int) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listsetsforexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT es.id, es.session_exercise_id, es.session_id, es.exercise_id, es.set_number,
				es.reps_completed, es.weight_kg, es.rpe, es.is_warmup, es.is_failure,
				es.is_pr, es.completed_at, es.notes
			FROM exercise_set es
			JOIN workout_session ws ON es.session_id = ws.id
			WHERE ws.user_id = $1 AND es.exercise_id = $2
			ORDER BY es.completed_at DESC
			LIMIT $3;`,
		userID, exerciseID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sets := make([]ExerciseSet, 0)
	for rows.Next() {
		var set ExerciseSet
		if err := rows.Scan(
			&set.ID, &set.SessionExerciseID, &set.SessionID, &set.ExerciseID, &set.SetNumber,
			&set.RepsCompleted, &set.WeightKg, &set.RPE, &set.IsWarmup, &set.IsFailure,
			&set.IsPR, &set.CompletedAt, &set.Notes,
		); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// lockActiveSession row-locks the session for the rest of the transaction
// and verifies ownership and the ACTIVE state.
// EnsureActive checks that the session exists, belongs to the user and is
// still active, without opening a transaction. Callers with side effects
// outside the session tables run this before them; the mutating
// transaction re-checks under lock.
func (r *Repo) EnsureActive(ctx context.Context, sessionID, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.ensureactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	var isCompleted bool
	err = r.db.QueryRow(
		ctx,
		`SELECT is_completed FROM workout_session
			WHERE id = $1 AND user_id = $2;`,
		sessionID, userID,
	).Scan(&isCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}
	if isCompleted {
		return ErrSessionCompleted
	}
	return nil
}

func (r *Repo) lockActiveSession(ctx context.Context, tx pgx.Tx, sessionID, userID int) error {
	var isCompleted bool
	err := tx.QueryRow(
		ctx,
		`SELECT is_completed FROM workout_session
			WHERE id = $1 AND user_id = $2
			FOR UPDATE;`,
		sessionID, userID,
	).Scan(&isCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}
	if isCompleted {
		return ErrSessionCompleted
	}
	return nil
}

// aggregateDelta is the session-total adjustment produced by replacing
// the old ledger line with the updated one. Warmup flips move the set's
// whole contribution in or out.
func aggregateDelta(old, updated ExerciseSet) (volumeKg float64, sets, reps int) {
	return updated.Volume() - old.Volume(),
		countedAsSet(updated) - countedAsSet(old),
		countedReps(updated) - countedReps(old)
}

func countedAsSet(s ExerciseSet) int {
	if s.IsWarmup {
		return 0
	}
	return 1
}

func countedReps(s ExerciseSet) int {
	if s.IsWarmup {
		return 0
	}
	return s.RepsCompleted
}

func rows2sessions(rows pgx.Rows) ([]WorkoutSession, error) {
	sessions := make([]WorkoutSession, 0)
	for rows.Next() {
		var session WorkoutSession
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.RoutineID, &session.RoutineName,
			&session.SessionDate, &session.StartTime, &session.EndTime, &session.DurationMinutes,
			&session.TotalVolumeKg, &session.TotalSets, &session.TotalReps,
			&session.IsCompleted, &session.Notes,
		); err != nil {
			return nil, err
		}
		session.Exercises = make([]SessionExercise, 0)
		sessions = append(sessions, session)
	}
	return sessions, nil
}
