package exercises

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

var ErrExerciseNotFound = errors.New("exercise not found")

type ListParams struct {
	Muscle    string
	Equipment string
	Search    string
	Limit     int
	Skip      int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise
				(name, muscle, exercise_type, pattern, equipment, subtype, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		exercise.Name, exercise.Muscle, exercise.ExerciseType,
		exercise.Pattern, exercise.Equipment, exercise.Subtype, exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle, exercise_type, pattern, equipment, subtype, created_at
			FROM exercise WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

// GetByIDs resolves a batch of catalog ids in a single query. Unknown ids
// are simply absent from the result map.
func (r *Repo) GetByIDs(ctx context.Context, ids []int) (_ map[int]Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.getbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	if len(ids) == 0 {
		return map[int]Exercise{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle, exercise_type, pattern, equipment, subtype, created_at
			FROM exercise WHERE id = ANY($1);`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]Exercise, len(exercises))
	for _, e := range exercises {
		byID[e.ID] = e
	}
	return byID, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle", params.Muscle))
	span.SetAttributes(attribute.String("equipment", params.Equipment))
	span.SetAttributes(attribute.String("search", params.Search))

	if params.Limit <= 0 {
		params.Limit = 100
	}
	if params.Skip < 0 {
		params.Skip = 0
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle, exercise_type, pattern, equipment, subtype, created_at
			FROM exercise
			WHERE ($1::text = '' OR muscle ILIKE '%' || $1 || '%')
			AND ($2::text = '' OR equipment ILIKE '%' || $2 || '%')
			AND ($3::text = ''
				OR name ILIKE '%' || $3 || '%'
				OR muscle ILIKE '%' || $3 || '%'
				OR equipment ILIKE '%' || $3 || '%')
			ORDER BY muscle, name
			LIMIT $4
			OFFSET $5;`,
		params.Muscle, params.Equipment, params.Search,
		params.Limit, params.Skip,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2exercises(rows)
}

func (r *Repo) Muscles(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.muscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.distinct(ctx, `SELECT DISTINCT muscle FROM exercise ORDER BY muscle;`)
}

func (r *Repo) Equipment(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.equipment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.distinct(ctx, `SELECT DISTINCT equipment FROM exercise WHERE equipment != '' ORDER BY equipment;`)
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise;`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		var createdAt time.Time
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Muscle, &e.ExerciseType,
			&e.Pattern, &e.Equipment, &e.Subtype, &createdAt,
		); err != nil {
			return nil, err
		}
		e.CreatedAt = createdAt
		exercises = append(exercises, e)
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}

	return exercises, nil
}
