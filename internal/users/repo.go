package users

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

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user with that email or username already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const userColumns = `
	id, email, username, password_hash, full_name, account_level,
	total_volume_kg, current_streak_days, longest_streak_days,
	last_workout_at, last_login_at, created_at`

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users
				(email, username, password_hash, full_name, account_level, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		user.Email, user.Username, user.PasswordHash, user.FullName, LevelNovice, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", id))

	user.ID = id
	user.AccountLevel = LevelNovice
	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1;`,
		id,
	))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1;`,
		email,
	))
}

func (r *Repo) UpdateLastLogin(ctx context.Context, id int, loginAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatelastlogin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2;`,
		loginAt, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AddTotalVolume applies the volume delta as a field level SQL increment
// and returns the new lifetime total.
func (r *Repo) AddTotalVolume(ctx context.Context, id int, deltaKg float64) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addtotalvolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.Float64("delta_kg", deltaKg))

	var newTotal float64
	err = r.db.QueryRow(
		ctx,
		`UPDATE users SET total_volume_kg = total_volume_kg + $1
			WHERE id = $2
			RETURNING total_volume_kg;`,
		deltaKg, id,
	).Scan(&newTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return newTotal, nil
}

func (r *Repo) UpdateStreak(
	ctx context.Context,
	id int,
	currentStreak, longestStreak int,
	lastWorkoutAt time.Time,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatestreak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.Int("current_streak", currentStreak))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET
				current_streak_days = $1,
				longest_streak_days = $2,
				last_workout_at = $3
			WHERE id = $4;`,
		currentStreak, longestStreak, lastWorkoutAt, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetAccountLevel writes the level only when it changed.
func (r *Repo) SetAccountLevel(ctx context.Context, id int, level AccountLevel) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setaccountlevel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.String("level", level.String()))

	_, err = r.db.Exec(
		ctx,
		`UPDATE users SET account_level = $1 WHERE id = $2 AND account_level != $1;`,
		level, id,
	)
	return err
}

func (r *Repo) scanOne(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.FullName,
		&user.AccountLevel, &user.TotalVolumeKg,
		&user.CurrentStreakDays, &user.LongestStreakDays,
		&user.LastWorkoutAt, &user.LastLoginAt, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
