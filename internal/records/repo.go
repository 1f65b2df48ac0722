package records

import (
	"context"
	"errors"
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

// Upsert stores the candidate record if it strictly beats the current best.
// The whole check-and-write runs as one conditional upsert, so two racing
// candidates can never both win and equal values never overwrite a record.
// Returns the written record and true when the candidate became the new
// best, nil and false otherwise.
func (r *Repo) Upsert(ctx context.Context, candidate PersonalRecord) (_ *PersonalRecord, isPR bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", candidate.UserID))
	span.SetAttributes(attribute.Int("exercise.id", candidate.ExerciseID))
	span.SetAttributes(attribute.String("pr_type", candidate.PRType.String()))
	span.SetAttributes(attribute.Float64("value", candidate.Value))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO personal_record
				(user_id, exercise_id, pr_type, value, reps, previous_value, session_id, achieved_at)
				VALUES ($1, $2, $3, $4, $5, NULL, $6, $7)
			ON CONFLICT (user_id, exercise_id, pr_type) DO UPDATE SET
				previous_value = personal_record.value,
				value = excluded.value,
				reps = excluded.reps,
				session_id = excluded.session_id,
				achieved_at = excluded.achieved_at
			WHERE excluded.value > personal_record.value
			RETURNING id, previous_value;`,
		candidate.UserID, candidate.ExerciseID, candidate.PRType,
		candidate.Value, candidate.Reps, candidate.SessionID, candidate.AchievedAt,
	).Scan(&candidate.ID, &candidate.PreviousValue)
	if err != nil {
		// no row back means the conditional update did not fire: the
		// candidate did not beat the stored value
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	span.SetAttributes(attribute.Bool("is_pr", true))
	return &candidate, true, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT pr.id, pr.user_id, pr.exercise_id, e.name, pr.pr_type,
				pr.value, pr.reps, pr.previous_value, pr.session_id, pr.achieved_at
			FROM personal_record pr
			JOIN exercise e ON pr.exercise_id = e.id
			WHERE pr.user_id = $1
			ORDER BY pr.achieved_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	prs := make([]PersonalRecord, 0)
	for rows.Next() {
		var pr PersonalRecord
		if err := rows.Scan(
			&pr.ID, &pr.UserID, &pr.ExerciseID, &pr.ExerciseName, &pr.PRType,
			&pr.Value, &pr.Reps, &pr.PreviousValue, &pr.SessionID, &pr.AchievedAt,
		); err != nil {
			return nil, err
		}
		prs = append(prs, pr)
	}
	return prs, nil
}

// CountSince counts records achieved at or after the given instant, used
// for the dashboard's PRs-this-month figure.
func (r *Repo) CountSince(ctx context.Context, userID int, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.countsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM personal_record
			WHERE user_id = $1 AND achieved_at >= $2;`,
		userID, since,
	).Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}
