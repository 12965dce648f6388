package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Start(ctx context.Context, userID, programID int, date time.Time, notes string) (*Workout, error)
	List(ctx context.Context, userID int) ([]Workout, error)
	Get(ctx context.Context, userID, id int) (*Detail, error)
	Update(ctx context.Context, userID int, workout Workout) error
	Delete(ctx context.Context, userID, id int) error
	LogSet(ctx context.Context, userID, workoutID int, newSet NewSet) (*LogSetResult, error)
	DeleteSet(ctx context.Context, userID, setID int) error
}

// recordsCache drops the cached record views of a user whose sets changed.
type recordsCache interface {
	Invalidate(userID int)
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
}

type UpdateWorkoutResponse struct {
	UpdatedID int `json:"updatedId"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           workoutsRepo
	cache          recordsCache
	metricsManager *metrics.Manager

	// TimeNow gives the date of workouts started without one.
	TimeNow func() time.Time
}

func NewHandler(repo workoutsRepo, cache recordsCache, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
		TimeNow:        time.Now,
	}
}

func decodeJSON(r *http.Request, payload any) error {
	if !gymstats.IsJSONRequest(r) {
		return gymstats.ErrInvalidInput
	}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		log.Tracef("workout payload, unmarshal json: %s", err)
		return gymstats.ErrInvalidInput
	}
	return gymstats.Validate(payload)
}

func (handler *Handler) invalidate(userID int) {
	if handler.cache != nil {
		handler.cache.Invalidate(userID)
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	var payload StartPayload
	if err := decodeJSON(r, &payload); err != nil {
		gymstats.WriteError(w, err, "start workout")
		return
	}
	date, err := ParseDate(payload.Date, handler.TimeNow())
	if err != nil {
		gymstats.WriteError(w, err, "start workout")
		return
	}

	workout, err := handler.repo.Start(ctx, userID, payload.ProgramID, date, payload.Notes)
	if err != nil {
		gymstats.WriteError(w, err, "start workout")
		return
	}

	log.Debugf("workout %d started, program %d, user %d", workout.ID, payload.ProgramID, userID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	workouts, err := handler.repo.List(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "list workouts")
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	pkg.WriteJSON(w, ListResponse{Workouts: workouts}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
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

	detail, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		gymstats.WriteError(w, err, "get workout")
		return
	}
	if detail.Sets == nil {
		detail.Sets = []Set{}
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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

	var payload UpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		gymstats.WriteError(w, err, "update workout")
		return
	}
	date, err := ParseDate(payload.Date, handler.TimeNow())
	if err != nil {
		gymstats.WriteError(w, err, "update workout")
		return
	}

	if err := handler.repo.Update(ctx, userID, Workout{ID: id, Date: date, Notes: payload.Notes}); err != nil {
		gymstats.WriteError(w, err, "update workout")
		return
	}
	handler.invalidate(userID)

	pkg.WriteJSON(w, UpdateWorkoutResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
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
		gymstats.WriteError(w, err, "delete workout")
		return
	}
	handler.invalidate(userID)

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

// HandleLogSet logs a set in the workout and reports whether it is a new personal record.
func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logSet")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	workoutID, err := gymstats.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	var payload LogSetPayload
	if err := decodeJSON(r, &payload); err != nil {
		gymstats.WriteError(w, err, "log set")
		return
	}
	newSet, err := payload.ToNewSet()
	if err != nil {
		gymstats.WriteError(w, err, "log set")
		return
	}

	result, err := handler.repo.LogSet(ctx, userID, workoutID, newSet)
	if err != nil {
		gymstats.WriteError(w, err, "log set")
		return
	}
	handler.invalidate(userID)

	handler.metricsManager.CounterLoggedSets.Inc()
	if result.IsPR {
		handler.metricsManager.CounterPersonalRecords.Inc()
		log.Debugf("new personal record: user %d, exercise %d, %.2f x %d", userID, newSet.ExerciseID, newSet.Weight, newSet.Reps)
	}

	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSet")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	setID, err := gymstats.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSet(ctx, userID, setID); err != nil {
		gymstats.WriteError(w, err, "delete set")
		return
	}
	handler.invalidate(userID)

	pkg.WriteJSON(w, DeleteResponse{DeletedID: setID}, http.StatusOK)
}
