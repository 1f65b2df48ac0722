package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, params ListParams) ([]Exercise, error)
	Muscles(ctx context.Context) ([]string, error)
	Equipment(ctx context.Context) ([]string, error)
	Seed(ctx context.Context) (int, error)
}

type cacheClearer interface {
	Clear()
}

type SeedResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

type Handler struct {
	repo  exercisesRepo
	cache cacheClearer
}

func NewHandler(repo exercisesRepo, cache cacheClearer) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	params := ListParams{
		Muscle:    r.URL.Query().Get("muscle"),
		Equipment: r.URL.Query().Get("equipment"),
		Search:    r.URL.Query().Get("search"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}
	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		skip, err := strconv.Atoi(skipStr)
		if err != nil {
			http.Error(w, "error, skip NaN", http.StatusBadRequest)
			return
		}
		params.Skip = skip
	}

	exercises, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscles")
	defer span.End()

	muscles, err := handler.repo.Muscles(ctx)
	if err != nil {
		log.Errorf("get muscle groups: %s", err)
		http.Error(w, "failed to get muscle groups", http.StatusInternalServerError)
		return
	}

	musclesJson, err := json.Marshal(muscles)
	if err != nil {
		log.Errorf("marshal muscle groups: %s", err)
		http.Error(w, "failed to get muscle groups", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, musclesJson)
}

func (handler *Handler) HandleEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.equipment")
	defer span.End()

	equipment, err := handler.repo.Equipment(ctx)
	if err != nil {
		log.Errorf("get equipment types: %s", err)
		http.Error(w, "failed to get equipment types", http.StatusInternalServerError)
		return
	}

	equipmentJson, err := json.Marshal(equipment)
	if err != nil {
		log.Errorf("marshal equipment types: %s", err)
		http.Error(w, "failed to get equipment types", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, equipmentJson)
}

func (handler *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.seed")
	defer span.End()

	inserted, err := handler.repo.Seed(ctx)
	if err != nil {
		log.Errorf("seed exercises: %s", err)
		http.Error(w, "failed to seed exercises", http.StatusInternalServerError)
		return
	}

	if inserted > 0 && handler.cache != nil {
		handler.cache.Clear()
	}

	message := fmt.Sprintf("seeded %d exercises", inserted)
	if inserted == 0 {
		message = "catalog already seeded"
	}

	respJson, err := json.Marshal(SeedResponse{Inserted: inserted, Message: message})
	if err != nil {
		log.Errorf("marshal seed response: %s", err)
		http.Error(w, "failed to seed exercises", http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise seed: %s", message)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
