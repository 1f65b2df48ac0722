package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mstojkov/liftlog/internal/auth"
	"github.com/mstojkov/liftlog/internal/telemetry/tracing"
	"github.com/mstojkov/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=tasks_mocks_test.go -package=tasks_test

type tasksRepo interface {
	Add(ctx context.Context, task Task) (*Task, error)
	Get(ctx context.Context, id, userID int) (*Task, error)
	List(ctx context.Context, userID int) ([]Task, error)
	Update(ctx context.Context, id, userID int, params UpdateParams) error
	Delete(ctx context.Context, id, userID int) error
}

type Handler struct {
	repo tasksRepo
}

func NewHandler(repo tasksRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

type CreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Goal        *Goal      `json:"goal,omitempty"`
}

type UpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Goal        *Goal      `json:"goal,omitempty"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.create")
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
		log.Tracef("create task, unmarshal json params: %s", err)
		if errors.Is(err, ErrInvalidGoal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "create task failed", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}

	task, err := handler.repo.Add(ctx, Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Goal:        req.Goal,
	})
	if err != nil {
		log.Errorf("create task for user %d: %s", userID, err)
		http.Error(w, "create task failed", http.StatusInternalServerError)
		return
	}

	taskJson, err := json.Marshal(task)
	if err != nil {
		log.Errorf("marshal task: %s", err)
		http.Error(w, "create task failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, taskJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	tasks, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list tasks for user %d: %s", userID, err)
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}

	tasksJson, err := json.Marshal(tasks)
	if err != nil {
		log.Errorf("marshal tasks: %s", err)
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, tasksJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	taskID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, task id NaN", http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update task, unmarshal json params: %s", err)
		if errors.Is(err, ErrInvalidGoal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "update task failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, taskID, userID, UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
		Goal:        req.Goal,
	}); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("update task %d: %s", taskID, err)
		http.Error(w, "update task failed", http.StatusInternalServerError)
		return
	}

	task, err := handler.repo.Get(ctx, taskID, userID)
	if err != nil {
		log.Errorf("get task %d after update: %s", taskID, err)
		http.Error(w, "update task failed", http.StatusInternalServerError)
		return
	}

	taskJson, err := json.Marshal(task)
	if err != nil {
		log.Errorf("marshal task: %s", err)
		http.Error(w, "update task failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, taskJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	taskID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, task id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, taskID, userID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete task %d: %s", taskID, err)
		http.Error(w, "delete task failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
