package fitevents

import (
	"context"
	"fmt"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=fitevents_mocks_test.go -package=fitevents_test

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type Service struct {
	repo eventsRepo
}

func NewService(repo eventsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) AddSessionCompleted(ctx context.Context, sc SessionCompleted) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitevents.add.sessioncompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, NewSessionCompletedEvent(sc))
	if err != nil {
		return 0, fmt.Errorf("add session completed event: %w", err)
	}
	return event.ID, nil
}

func (s *Service) AddPRAchieved(ctx context.Context, pa PRAchieved) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitevents.add.prachieved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, NewPRAchievedEvent(pa))
	if err != nil {
		return 0, fmt.Errorf("add pr achieved event: %w", err)
	}
	return event.ID, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitevents.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Service) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitevents.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.repo.Count(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
