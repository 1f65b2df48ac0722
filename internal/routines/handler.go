package routines

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

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	Add(ctx context.Context, routine Routine) (*Routine, error)
	Get(ctx context.Context, id, userID int, includeArchived bool) (*Routine, error)
	List(ctx context.Context, userID int) ([]Routine, error)
	Update(ctx context.Context, id, userID int, params UpdateParams) error
	Archive(ctx context.Context, id, userID int) error
	AddExercise(ctx context.Context, userID int, re RoutineExercise) (*RoutineExercise, error)
	RemoveExercise(ctx context.Context, userID, routineID, routineExerciseID int) error
}

type CreateRequest struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	RoutineType     string            `json:"routine_type"`
	DifficultyLevel string            `json:"difficulty_level"`
	Exercises       []RoutineExercise `json:"exercises"`
}

type UpdateRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	RoutineType     *string `json:"routine_type"`
	DifficultyLevel *string `json:"difficulty_level"`
}

type DeleteResponse struct {
	ArchivedID int `json:"archivedId"`
}

type Handler struct {
	repo routinesRepo
}

func NewHandler(repo routinesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.create")
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

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create routine, unmarshal json params: %s", err)
		http.Error(w, "create routine failed", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "error, routine name empty", http.StatusBadRequest)
		return
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = "Intermediate"
	}

	routine, err := handler.repo.Add(ctx, Routine{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		RoutineType:     req.RoutineType,
		DifficultyLevel: req.DifficultyLevel,
		Exercises:       req.Exercises,
	})
	if err != nil {
		log.Errorf("failed to create routine for user %d: %s", userID, err)
		http.Error(w, "create routine failed", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal routine: %s", err)
		http.Error(w, "create routine failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routineJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	routines, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list routines for user %d: %s", userID, err)
		http.Error(w, "list routines failed", http.StatusInternalServerError)
		return
	}

	routinesJson, err := json.Marshal(routines)
	if err != nil {
		log.Errorf("marshal routines: %s", err)
		http.Error(w, "list routines failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routinesJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	routine, err := handler.repo.Get(ctx, id, userID, false)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("get routine %d: %s", id, err)
		http.Error(w, "get routine failed", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal routine %d: %s", id, err)
		http.Error(w, "get routine failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routineJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update routine, unmarshal json params: %s", err)
		http.Error(w, "update routine failed", http.StatusBadRequest)
		return
	}

	err = handler.repo.Update(ctx, id, userID, UpdateParams{
		Name:            req.Name,
		Description:     req.Description,
		RoutineType:     req.RoutineType,
		DifficultyLevel: req.DifficultyLevel,
	})
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("update routine %d: %s", id, err)
		http.Error(w, "update routine failed", http.StatusInternalServerError)
		return
	}

	routine, err := handler.repo.Get(ctx, id, userID, false)
	if err != nil {
		log.Errorf("get routine %d after update: %s", id, err)
		http.Error(w, "update routine failed", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal routine %d: %s", id, err)
		http.Error(w, "update routine failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routineJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Archive(ctx, id, userID); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("archive routine %d: %s", id, err)
		http.Error(w, "delete routine failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{ArchivedID: id})
	if err != nil {
		log.Errorf("marshal delete response: %s", err)
		http.Error(w, "delete routine failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.addexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	routineID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var re RoutineExercise
	if err := json.NewDecoder(r.Body).Decode(&re); err != nil {
		log.Tracef("add routine exercise, unmarshal json params: %s", err)
		http.Error(w, "add routine exercise failed", http.StatusBadRequest)
		return
	}
	re.RoutineID = routineID
	if re.ExerciseID <= 0 {
		http.Error(w, "error, exercise id missing", http.StatusBadRequest)
		return
	}
	if re.SetsPlanned <= 0 {
		re.SetsPlanned = 3
	}
	if re.RestSeconds <= 0 {
		re.RestSeconds = 90
	}

	added, err := handler.repo.AddExercise(ctx, userID, re)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("add exercise to routine %d: %s", routineID, err)
		http.Error(w, "add routine exercise failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal routine exercise: %s", err)
		http.Error(w, "add routine exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.removeexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	routineID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	routineExerciseID, err := strconv.Atoi(vars["exerciseId"])
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.RemoveExercise(ctx, userID, routineID, routineExerciseID); err != nil {
		if errors.Is(err, ErrRoutineExerciseNotFound) {
			http.Error(w, "routine exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("remove exercise %d from routine %d: %s", routineExerciseID, routineID, err)
		http.Error(w, "remove routine exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "removed")
}
