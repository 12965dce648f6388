package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, userID int, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, userID, id int) (*Exercise, error)
	List(ctx context.Context, userID int) ([]Exercise, error)
	Update(ctx context.Context, userID int, exercise *Exercise) error
	Delete(ctx context.Context, userID, id int) error
}

// recordsCache is dropped for the user whenever an exercise change can alter
// the records or history views.
type recordsCache interface {
	Invalidate(userID int)
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateExerciseResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type Handler struct {
	repo  exercisesRepo
	cache recordsCache
}

func NewHandler(repo exercisesRepo, cache recordsCache) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
	}
}

func decodePayload(r *http.Request) (Exercise, error) {
	var payload ExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Tracef("exercise payload, unmarshal json: %s", err)
		return Exercise{}, gymstats.ErrInvalidInput
	}
	return payload.ToExercise()
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	if !gymstats.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	exercise, err := decodePayload(r)
	if err != nil {
		gymstats.WriteError(w, err, "add exercise")
		return
	}

	added, err := handler.repo.Add(ctx, userID, exercise)
	if err != nil {
		gymstats.WriteError(w, err, "add exercise")
		return
	}

	log.Debugf("new exercise added: [%s] %d, user %d", added.Name, added.ID, userID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := gymstats.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		gymstats.WriteError(w, err, "get exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	exercises, err := handler.repo.List(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "list exercises")
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, ListResponse{Exercises: exercises}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := gymstats.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if !gymstats.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	exercise, err := decodePayload(r)
	if err != nil {
		gymstats.WriteError(w, err, "update exercise")
		return
	}
	exercise.ID = id

	if err := handler.repo.Update(ctx, userID, &exercise); err != nil {
		gymstats.WriteError(w, err, "update exercise")
		return
	}
	// the improvement direction may have changed
	handler.cache.Invalidate(userID)

	pkg.WriteJSON(w, UpdateExerciseResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	id, err := gymstats.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		gymstats.WriteError(w, err, "delete exercise")
		return
	}
	// sets and the stored record of the exercise are gone with it
	handler.cache.Invalidate(userID)

	pkg.WriteJSON(w, DeleteExerciseResponse{DeletedID: id}, http.StatusOK)
}
