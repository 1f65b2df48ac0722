package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mstojkov/liftlog/internal/auth"
	"github.com/mstojkov/liftlog/internal/records"
	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
	PersonalRecords(ctx context.Context, userID int) ([]records.PersonalRecord, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID, limit int) (*ExerciseHistory, error)
}

const defaultHistoryLimit = 20

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.dashboard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dashboard, err := handler.service.Dashboard(ctx, userID)
	if err != nil {
		log.Errorf("dashboard for user %d: %s", userID, err)
		http.Error(w, "dashboard failed", http.StatusInternalServerError)
		return
	}

	dashboardJson, err := json.Marshal(dashboard)
	if err != nil {
		log.Errorf("marshal dashboard: %s", err)
		http.Error(w, "dashboard failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dashboardJson)
}

func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.personalrecords")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	prs, err := handler.service.PersonalRecords(ctx, userID)
	if err != nil {
		log.Errorf("personal records for user %d: %s", userID, err)
		http.Error(w, "personal records failed", http.StatusInternalServerError)
		return
	}

	prsJson, err := json.Marshal(prs)
	if err != nil {
		log.Errorf("marshal personal records: %s", err)
		http.Error(w, "personal records failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, prsJson)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.exercisehistory")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
	}

	history, err := handler.service.ExerciseHistory(ctx, userID, exerciseID, limit)
	if err != nil {
		if errors.Is(err, ErrUnknownExercise) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("exercise history for user %d, exercise %d: %s", userID, exerciseID, err)
		http.Error(w, "exercise history failed", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("marshal exercise history: %s", err)
		http.Error(w, "exercise history failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}
