package records

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type recordsAnalyzer interface {
	BestPerRepCount(ctx context.Context, userID int, exerciseIDs []int) ([]ExerciseRepBests, error)
	PersonalRecords(ctx context.Context, userID int) ([]ExerciseRepBests, error)
	DailyMax(ctx context.Context, userID int, exerciseIDs []int) ([]ExerciseHistory, error)
}

type storedRecordsRepo interface {
	StoredRecords(ctx context.Context, userID int) ([]StoredRecord, error)
}

type PersonalRecordsResponse struct {
	Records []ExerciseRepBests `json:"records"`
}

type StoredRecordsResponse struct {
	Records []StoredRecord `json:"records"`
}

type HistoryResponse struct {
	History []ExerciseHistory `json:"history"`
}

type RepBestsResponse struct {
	Exercises []ExerciseRepBests `json:"exercises"`
}

type Handler struct {
	analyzer recordsAnalyzer
	repo     storedRecordsRepo
	cache    *Cache
}

// NewHandler creates the records handler. cache may be nil.
func NewHandler(analyzer recordsAnalyzer, repo storedRecordsRepo, cache *Cache) *Handler {
	return &Handler{
		analyzer: analyzer,
		repo:     repo,
		cache:    cache,
	}
}

func exerciseIDsParam(r *http.Request) ([]int, error) {
	exerciseIDs, err := pkg.ParseIntList(r.URL.Query().Get("exercise_ids"))
	if err != nil {
		return nil, fmt.Errorf("%w: exercise_ids: %s", gymstats.ErrInvalidInput, err)
	}
	if len(exerciseIDs) == 0 {
		return nil, fmt.Errorf("%w: exercise_ids missing", gymstats.ErrInvalidInput)
	}
	return exerciseIDs, nil
}

// HandlePersonalRecords serves the best per rep count of every exercise, computed from the history.
func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.personalRecords")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	records, err := Cached(handler.cache, userID, "prs", func() ([]ExerciseRepBests, error) {
		return handler.analyzer.PersonalRecords(ctx, userID)
	})
	if err != nil {
		gymstats.WriteError(w, err, "get personal records")
		return
	}

	pkg.WriteJSON(w, PersonalRecordsResponse{Records: records}, http.StatusOK)
}

func (handler *Handler) HandleStoredRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.stored")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	records, err := Cached(handler.cache, userID, "prs-stored", func() ([]StoredRecord, error) {
		return handler.repo.StoredRecords(ctx, userID)
	})
	if err != nil {
		gymstats.WriteError(w, err, "get stored personal records")
		return
	}
	if records == nil {
		records = []StoredRecord{}
	}

	pkg.WriteJSON(w, StoredRecordsResponse{Records: records}, http.StatusOK)
}

// HandleHistory serves the daily max weight of the exercises in ?exercise_ids=.
func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.history")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	exerciseIDs, err := exerciseIDsParam(r)
	if err != nil {
		gymstats.WriteError(w, err, "get history")
		return
	}
	span.SetAttributes(attribute.IntSlice("exercise.ids", exerciseIDs))

	view := fmt.Sprintf("history::%v", exerciseIDs)
	history, err := Cached(handler.cache, userID, view, func() ([]ExerciseHistory, error) {
		return handler.analyzer.DailyMax(ctx, userID, exerciseIDs)
	})
	if err != nil {
		gymstats.WriteError(w, err, "get history")
		return
	}

	pkg.WriteJSON(w, HistoryResponse{History: history}, http.StatusOK)
}

// HandleRepBests serves the best per rep count of the exercises in ?exercise_ids=.
func (handler *Handler) HandleRepBests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.repBests")
	defer span.End()

	userID, ok := gymstats.RequireUser(w, r)
	if !ok {
		return
	}

	exerciseIDs, err := exerciseIDsParam(r)
	if err != nil {
		gymstats.WriteError(w, err, "get best per rep count")
		return
	}
	span.SetAttributes(attribute.IntSlice("exercise.ids", exerciseIDs))

	view := fmt.Sprintf("reps::%v", exerciseIDs)
	bests, err := Cached(handler.cache, userID, view, func() ([]ExerciseRepBests, error) {
		return handler.analyzer.BestPerRepCount(ctx, userID, exerciseIDs)
	})
	if err != nil {
		gymstats.WriteError(w, err, "get best per rep count")
		return
	}

	pkg.WriteJSON(w, RepBestsResponse{Exercises: bests}, http.StatusOK)
}
