package records

import (
	"context"
	"fmt"
	"time"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records_test

type recordsRepo interface {
	Upsert(ctx context.Context, candidate PersonalRecord) (*PersonalRecord, bool, error)
	ListForUser(ctx context.Context, userID int) ([]PersonalRecord, error)
	CountSince(ctx context.Context, userID int, since time.Time) (int, error)
}

// Tracker decides whether logged work produced a new personal record.
type Tracker struct {
	repo recordsRepo
}

func NewTracker(repo recordsRepo) *Tracker {
	return &Tracker{
		repo: repo,
	}
}

// TrackMaxWeight offers a lifted weight as a MAX_WEIGHT candidate, with
// the rep count it was lifted for. Warmup sets must be filtered out by the
// caller. A tie with the stored best is not a record.
func (t *Tracker) TrackMaxWeight(
	ctx context.Context,
	userID, exerciseID, sessionID int,
	weightKg float64,
	reps int,
	achievedAt time.Time,
) (_ *PersonalRecord, isPR bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.trackmaxweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weightKg <= 0 {
		return nil, false, nil
	}

	record, isPR, err := t.repo.Upsert(ctx, PersonalRecord{
		UserID:     userID,
		ExerciseID: exerciseID,
		PRType:     PRTypeMaxWeight,
		Value:      weightKg,
		Reps:       reps,
		SessionID:  &sessionID,
		AchievedAt: achievedAt,
	})
	if err != nil {
		return nil, false, fmt.Errorf("upsert max weight record: %w", err)
	}
	return record, isPR, nil
}

func (t *Tracker) ListForUser(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prs, err := t.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list personal records: %w", err)
	}
	return prs, nil
}

func (t *Tracker) CountSince(ctx context.Context, userID int, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.countsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := t.repo.CountSince(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("count personal records: %w", err)
	}
	return count, nil
}
