package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mstojkov/liftlog/internal/auth"
	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Start(ctx context.Context, userID int, params StartParams) (*WorkoutSession, error)
	AddSet(ctx context.Context, userID, sessionID int, params AddSetParams) (*ExerciseSet, error)
	UpdateSet(ctx context.Context, userID, sessionID, setID int, params UpdateSetParams) (*ExerciseSet, error)
	DeleteSet(ctx context.Context, userID, sessionID, setID int) error
	AddExercise(ctx context.Context, userID, sessionID int, params AddExerciseParams) (*SessionExercise, error)
	Complete(ctx context.Context, userID, sessionID int) (*WorkoutSession, error)
	Cancel(ctx context.Context, userID, sessionID int) error
	Get(ctx context.Context, userID, sessionID int) (*WorkoutSession, error)
	List(ctx context.Context, userID, limit, skip int) ([]WorkoutSession, error)
	GetActive(ctx context.Context, userID int) (*WorkoutSession, error)
}

const defaultListLimit = 50

type Handler struct {
	service sessionsService
}

func NewHandler(service sessionsService) *Handler {
	return &Handler{
		service: service,
	}
}

type StartRequest struct {
	RoutineID *int   `json:"routine_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type AddSetRequest struct {
	ExerciseID    int      `json:"exercise_id"`
	SetNumber     int      `json:"set_number"`
	RepsCompleted int      `json:"reps_completed"`
	WeightKg      float64  `json:"weight_kg"`
	RPE           *float64 `json:"rpe,omitempty"`
	IsWarmup      bool     `json:"is_warmup"`
	IsFailure     bool     `json:"is_failure"`
	Notes         string   `json:"notes,omitempty"`
}

type UpdateSetRequest struct {
	SetNumber     int      `json:"set_number"`
	RepsCompleted int      `json:"reps_completed"`
	WeightKg      float64  `json:"weight_kg"`
	RPE           *float64 `json:"rpe,omitempty"`
	IsWarmup      bool     `json:"is_warmup"`
	IsFailure     bool     `json:"is_failure"`
	Notes         string   `json:"notes,omitempty"`
}

type AddExerciseRequest struct {
	ExerciseID     int      `json:"exercise_id"`
	SetsPlanned    *int     `json:"sets_planned,omitempty"`
	RepsPlanned    *int     `json:"reps_planned,omitempty"`
	RepsMin        *int     `json:"reps_min,omitempty"`
	RepsMax        *int     `json:"reps_max,omitempty"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`
	RestSeconds    *int     `json:"rest_seconds,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Start(ctx, userID, StartParams{
		RoutineID: req.RoutineID,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, ErrActiveSessionExists) {
			http.Error(w, "error, session already in progress", http.StatusConflict)
			return
		}
		log.Errorf("start session for user %d: %s", userID, err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	handler.writeSessionJSON(w, session, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := defaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
	}
	skip := 0
	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		var err error
		skip, err = strconv.Atoi(skipStr)
		if err != nil {
			http.Error(w, "error, skip NaN", http.StatusBadRequest)
			return
		}
	}

	sessions, err := handler.service.List(ctx, userID, limit, skip)
	if err != nil {
		log.Errorf("list sessions for user %d: %s", userID, err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("marshal sessions: %s", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionsJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}

	session, err := handler.service.Get(ctx, userID, sessionID)
	if err != nil {
		handler.writeError(w, "get session", err)
		return
	}

	handler.writeSessionJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.getactive")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	session, err := handler.service.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			http.Error(w, "no active session", http.StatusNotFound)
			return
		}
		log.Errorf("get active session for user %d: %s", userID, err)
		http.Error(w, "get active session failed", http.StatusInternalServerError)
		return
	}

	handler.writeSessionJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.cancel")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.Cancel(ctx, userID, sessionID); err != nil {
		handler.writeError(w, "cancel session", err)
		return
	}

	pkg.WriteTextResponseOK(w, "cancelled")
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}

	session, err := handler.service.Complete(ctx, userID, sessionID)
	if err != nil {
		handler.writeError(w, "complete session", err)
		return
	}

	handler.writeSessionJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.addset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	set, err := handler.service.AddSet(ctx, userID, sessionID, AddSetParams{
		ExerciseID:    req.ExerciseID,
		SetNumber:     req.SetNumber,
		RepsCompleted: req.RepsCompleted,
		WeightKg:      req.WeightKg,
		RPE:           req.RPE,
		IsWarmup:      req.IsWarmup,
		IsFailure:     req.IsFailure,
		Notes:         req.Notes,
	})
	if err != nil {
		handler.writeError(w, "add set", err)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal set: %s", err)
		http.Error(w, "add set failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.updateset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}
	setID, ok := handler.intVar(w, r, "setId")
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	set, err := handler.service.UpdateSet(ctx, userID, sessionID, setID, UpdateSetParams{
		SetNumber:     req.SetNumber,
		RepsCompleted: req.RepsCompleted,
		WeightKg:      req.WeightKg,
		RPE:           req.RPE,
		IsWarmup:      req.IsWarmup,
		IsFailure:     req.IsFailure,
		Notes:         req.Notes,
	})
	if err != nil {
		handler.writeError(w, "update set", err)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal set: %s", err)
		http.Error(w, "update set failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, setJson)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.deleteset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}
	setID, ok := handler.intVar(w, r, "setId")
	if !ok {
		return
	}

	if err := handler.service.DeleteSet(ctx, userID, sessionID, setID); err != nil {
		handler.writeError(w, "delete set", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.addexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, ok := handler.intVar(w, r, "id")
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add session exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	se, err := handler.service.AddExercise(ctx, userID, sessionID, AddExerciseParams{
		ExerciseID:     req.ExerciseID,
		SetsPlanned:    req.SetsPlanned,
		RepsPlanned:    req.RepsPlanned,
		RepsMin:        req.RepsMin,
		RepsMax:        req.RepsMax,
		TargetWeightKg: req.TargetWeightKg,
		RestSeconds:    req.RestSeconds,
		Notes:          req.Notes,
	})
	if err != nil {
		handler.writeError(w, "add session exercise", err)
		return
	}

	seJson, err := json.Marshal(se)
	if err != nil {
		log.Errorf("marshal session exercise: %s", err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seJson, http.StatusCreated)
}

func (handler *Handler) intVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	vars := mux.Vars(r)
	value, err := strconv.Atoi(vars[name])
	if err != nil {
		http.Error(w, "error, "+name+" NaN", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

func (handler *Handler) writeSessionJSON(w http.ResponseWriter, session *WorkoutSession, statusCode int) {
	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, statusCode)
}

// writeError maps the domain sentinels onto http status codes.
func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, ErrSetNotFound):
		http.Error(w, "set not found", http.StatusNotFound)
	case errors.Is(err, ErrSessionCompleted):
		http.Error(w, "error, session already completed", http.StatusBadRequest)
	case errors.Is(err, ErrExerciseAlreadyInSession):
		http.Error(w, "error, exercise already in session", http.StatusBadRequest)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
