package programs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=programs_mocks_test.go -package=programs_test

type programsRepo interface {
	Create(ctx context.Context, userID int, name, description string, targets []ExerciseTarget) (*Program, error)
	ReplaceExercises(ctx context.Context, userID, programID int, targets []ExerciseTarget) error
	Update(ctx context.Context, userID int, program Program, targets []ExerciseTarget) error
	Delete(ctx context.Context, userID, id int) error
	Get(ctx context.Context, userID, id int) (*Program, error)
	List(ctx context.Context, userID int) ([]Program, error)
}

type recordsCache interface {
	Invalidate(userID int)
}

type DeleteProgramResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateProgramResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Programs []Program `json:"programs"`
}

type Handler struct {
	repo  programsRepo
	cache recordsCache
}

func NewHandler(repo programsRepo, cache recordsCache) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
	}
}

func decodeJSON(r *http.Request, payload any) error {
	if !gymstats.IsJSONRequest(r) {
		return gymstats.ErrInvalidInput
	}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		log.Tracef("program payload, unmarshal json: %s", err)
		return gymstats.ErrInvalidInput
	}
	return gymstats.Validate(payload)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.create")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	var payload ProgramPayload
	if err := decodeJSON(r, &payload); err != nil {
		gymstats.WriteError(w, err, "create program")
		return
	}

	program, err := handler.repo.Create(ctx, userID, payload.Name, payload.Description, payload.Exercises)
	if err != nil {
		gymstats.WriteError(w, err, "create program")
		return
	}

	log.Debugf("new program added: [%s] %d, user %d", program.Name, program.ID, userID)
	pkg.WriteJSON(w, program, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
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

	program, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		gymstats.WriteError(w, err, "get program")
		return
	}
	if program.Exercises == nil {
		program.Exercises = []ProgramExercise{}
	}

	pkg.WriteJSON(w, program, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	programs, err := handler.repo.List(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "list programs")
		return
	}
	if programs == nil {
		programs = []Program{}
	}

	pkg.WriteJSON(w, ListResponse{Programs: programs}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.update")
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

	var payload ProgramPayload
	if err := decodeJSON(r, &payload); err != nil {
		gymstats.WriteError(w, err, "update program")
		return
	}

	program := Program{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := handler.repo.Update(ctx, userID, program, payload.Exercises); err != nil {
		gymstats.WriteError(w, err, "update program")
		return
	}

	pkg.WriteJSON(w, UpdateProgramResponse{UpdatedID: id}, http.StatusOK)
}

// HandleReplaceExercises replaces the whole exercise list of a program.
func (handler *Handler) HandleReplaceExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.replaceExercises")
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
	span.SetAttributes(attribute.Int("program.id", id))

	var payload ReplaceExercisesPayload
	if err := decodeJSON(r, &payload); err != nil {
		gymstats.WriteError(w, err, "replace program exercises")
		return
	}

	if err := handler.repo.ReplaceExercises(ctx, userID, id, payload.Exercises); err != nil {
		gymstats.WriteError(w, err, "replace program exercises")
		return
	}

	pkg.WriteJSON(w, UpdateProgramResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.delete")
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
		gymstats.WriteError(w, err, "delete program")
		return
	}
	// workouts of the program are deleted with their sets
	handler.cache.Invalidate(userID)

	pkg.WriteJSON(w, DeleteProgramResponse{DeletedID: id}, http.StatusOK)
}
