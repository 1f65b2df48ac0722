package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRoutineNotFound         = errors.New("routine not found")
	ErrRoutineExerciseNotFound = errors.New("routine exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", routine.UserID))

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

	now := time.Now()
	routine.CreatedAt = now
	routine.UpdatedAt = now

	err = tx.QueryRow(
		ctx,
		`INSERT INTO routine
				(user_id, name, description, routine_type, difficulty_level, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		routine.UserID, routine.Name, routine.Description,
		routine.RoutineType, routine.DifficultyLevel, routine.CreatedAt, routine.UpdatedAt,
	).Scan(&routine.ID)
	if err != nil {
		return nil, fmt.Errorf("insert routine: %w", err)
	}

	for i := range routine.Exercises {
		re := &routine.Exercises[i]
		re.RoutineID = routine.ID
		err = tx.QueryRow(
			ctx,
			`INSERT INTO routine_exercise
					(routine_id, exercise_id, exercise_order, sets_planned, reps_planned,
					reps_min, reps_max, target_weight_kg, rest_seconds, notes)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id;`,
			re.RoutineID, re.ExerciseID, re.ExerciseOrder, re.SetsPlanned, re.RepsPlanned,
			re.RepsMin, re.RepsMax, re.TargetWeightKg, re.RestSeconds, re.Notes,
		).Scan(&re.ID)
		if err != nil {
			return nil, fmt.Errorf("insert routine exercise: %w", err)
		}
	}

	span.SetAttributes(attribute.Int("routine.id", routine.ID))
	return &routine, nil
}

// Get returns the routine with its ordered exercise slots. Only the owner
// sees it; archived routines stay reachable for history views when
// includeArchived is set.
func (r *Repo) Get(ctx context.Context, id, userID int, includeArchived bool) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var routine Routine
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, description, routine_type, difficulty_level,
				times_completed, is_archived, created_at, updated_at
			FROM routine
			WHERE id = $1 AND user_id = $2 AND ($3::boolean OR NOT is_archived);`,
		id, userID, includeArchived,
	).Scan(
		&routine.ID, &routine.UserID, &routine.Name, &routine.Description,
		&routine.RoutineType, &routine.DifficultyLevel, &routine.TimesCompleted,
		&routine.IsArchived, &routine.CreatedAt, &routine.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	routine.Exercises, err = r.ExercisesFor(ctx, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("routine exercises: %w", err)
	}

	return &routine, nil
}

// ExercisesFor returns the routine's planned slots in template order.
func (r *Repo) ExercisesFor(ctx context.Context, routineID int) (_ []RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.exercisesfor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	rows, err := r.db.Query(
		ctx,
		`SELECT re.id, re.routine_id, re.exercise_id, e.name, re.exercise_order,
				re.sets_planned, re.reps_planned, re.reps_min, re.reps_max,
				re.target_weight_kg, re.rest_seconds, re.notes
			FROM routine_exercise re
			JOIN exercise e ON re.exercise_id = e.id
			WHERE re.routine_id = $1
			ORDER BY re.exercise_order;`,
		routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2routineExercises(rows)
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, routine_type, difficulty_level,
				times_completed, is_archived, created_at, updated_at
			FROM routine
			WHERE user_id = $1 AND NOT is_archived
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	routines := make([]Routine, 0)
	for rows.Next() {
		var routine Routine
		if err := rows.Scan(
			&routine.ID, &routine.UserID, &routine.Name, &routine.Description,
			&routine.RoutineType, &routine.DifficultyLevel, &routine.TimesCompleted,
			&routine.IsArchived, &routine.CreatedAt, &routine.UpdatedAt,
		); err != nil {
			return nil, err
		}
		routines = append(routines, routine)
	}

	for i := range routines {
		routines[i].Exercises, err = r.ExercisesFor(ctx, routines[i].ID)
		if err != nil {
			return nil, fmt.Errorf("routine %d exercises: %w", routines[i].ID, err)
		}
	}

	return routines, nil
}

type UpdateParams struct {
	Name            *string
	Description     *string
	RoutineType     *string
	DifficultyLevel *string
}

func (r *Repo) Update(ctx context.Context, id, userID int, params UpdateParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routine SET
				name = COALESCE($1, name),
				description = COALESCE($2, description),
				routine_type = COALESCE($3, routine_type),
				difficulty_level = COALESCE($4, difficulty_level),
				updated_at = $5
			WHERE id = $6 AND user_id = $7 AND NOT is_archived;`,
		params.Name, params.Description, params.RoutineType, params.DifficultyLevel,
		time.Now(), id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// Archive soft-deletes the routine. Sessions already started from it keep
// working, history stays intact.
func (r *Repo) Archive(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.archive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routine SET is_archived = true, updated_at = $1
			WHERE id = $2 AND user_id = $3 AND NOT is_archived;`,
		time.Now(), id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func (r *Repo) AddExercise(ctx context.Context, userID int, re RoutineExercise) (_ *RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", re.RoutineID))
	span.SetAttributes(attribute.Int("exercise.id", re.ExerciseID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO routine_exercise
				(routine_id, exercise_id, exercise_order, sets_planned, reps_planned,
				reps_min, reps_max, target_weight_kg, rest_seconds, notes)
			SELECT r.id, $2, $3, $4, $5, $6, $7, $8, $9, $10
				FROM routine r
				WHERE r.id = $1 AND r.user_id = $11 AND NOT r.is_archived
			RETURNING id;`,
		re.RoutineID, re.ExerciseID, re.ExerciseOrder, re.SetsPlanned, re.RepsPlanned,
		re.RepsMin, re.RepsMax, re.TargetWeightKg, re.RestSeconds, re.Notes,
		userID,
	).Scan(&re.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	return &re, nil
}

func (r *Repo) RemoveExercise(ctx context.Context, userID, routineID, routineExerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.removeexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM routine_exercise re
			USING routine r
			WHERE re.id = $1 AND re.routine_id = $2
			AND r.id = re.routine_id AND r.user_id = $3;`,
		routineExerciseID, routineID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineExerciseNotFound
	}
	return nil
}

// IncrementTimesCompleted bumps the completion counter as a field level SQL
// increment.
func (r *Repo) IncrementTimesCompleted(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.incrementtimescompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routine SET times_completed = times_completed + 1 WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func rows2routineExercises(rows pgx.Rows) ([]RoutineExercise, error) {
	routineExercises := make([]RoutineExercise, 0)
	for rows.Next() {
		var re RoutineExercise
		if err := rows.Scan(
			&re.ID, &re.RoutineID, &re.ExerciseID, &re.ExerciseName, &re.ExerciseOrder,
			&re.SetsPlanned, &re.RepsPlanned, &re.RepsMin, &re.RepsMax,
			&re.TargetWeightKg, &re.RestSeconds, &re.Notes,
		); err != nil {
			return nil, err
		}
		routineExercises = append(routineExercises, re)
	}
	return routineExercises, nil
}
