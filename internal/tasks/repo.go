package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"

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

// The goal union is stored as a jsonb column; validation happens at the
// type level before any row is written.

func (r *Repo) Add(ctx context.Context, task Task) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", task.UserID))

	goalJson, err := marshalGoal(task.Goal)
	if err != nil {
		return nil, err
	}

	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO task
				(user_id, title, description, is_completed, due_date, goal, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		task.UserID, task.Title, task.Description, task.IsCompleted,
		task.DueDate, goalJson, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	span.SetAttributes(attribute.Int("task.id", task.ID))
	return &task, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("task.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, title, description, is_completed, due_date, goal, created_at, updated_at
			FROM task
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	return scanTask(row)
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, description, is_completed, due_date, goal, created_at, updated_at
			FROM task
			WHERE user_id = $1
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

	tasks := make([]Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

type UpdateParams struct {
	Title       *string
	Description *string
	IsCompleted *bool
	DueDate     *time.Time
	Goal        *Goal
}

func (r *Repo) Update(ctx context.Context, id, userID int, params UpdateParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("task.id", id))

	goalJson, err := marshalGoal(params.Goal)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE task SET
				title = COALESCE($1, title),
				description = COALESCE($2, description),
				is_completed = COALESCE($3, is_completed),
				due_date = COALESCE($4, due_date),
				goal = COALESCE($5, goal),
				updated_at = $6
			WHERE id = $7 AND user_id = $8;`,
		params.Title, params.Description, params.IsCompleted,
		params.DueDate, goalJson, time.Now(), id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("task.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM task WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func marshalGoal(goal *Goal) ([]byte, error) {
	if goal == nil {
		return nil, nil
	}
	goalJson, err := json.Marshal(goal)
	if err != nil {
		return nil, fmt.Errorf("marshal goal: %w", err)
	}
	return goalJson, nil
}

func scanTask(row pgx.Row) (*Task, error) {
	var task Task
	var goalJson []byte
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.IsCompleted,
		&task.DueDate, &goalJson, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if len(goalJson) > 0 {
		var goal Goal
		if err := json.Unmarshal(goalJson, &goal); err != nil {
			return nil, fmt.Errorf("unmarshal goal for task %d: %w", task.ID, err)
		}
		task.Goal = &goal
	}
	return &task, nil
}
