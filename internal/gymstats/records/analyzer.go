package records

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=records_test

type setRowsRepo interface {
	SetRows(ctx context.Context, userID int, exerciseIDs []int) ([]SetRow, error)
}

// Analyzer computes the read side views (best per rep count, daily max) from the raw set history.
type Analyzer struct {
	repo setRowsRepo
}

func NewAnalyzer(repo setRowsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// BestPerRepCount returns one entry per requested exercise, in request order.
// Exercises without sets, or unknown to the user, get an entry with no bests.
func (a *Analyzer) BestPerRepCount(ctx context.Context, userID int, exerciseIDs []int) (_ []ExerciseRepBests, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.bestPerRepCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.IntSlice("exercise.ids", exerciseIDs))

	exerciseIDs = uniqueIDs(exerciseIDs)
	if len(exerciseIDs) == 0 {
		return []ExerciseRepBests{}, nil
	}

	setRows, err := a.repo.SetRows(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, err
	}

	byExercise := groupByExercise(setRows)
	result := make([]ExerciseRepBests, 0, len(exerciseIDs))
	for _, exerciseID := range exerciseIDs {
		result = append(result, repBests(exerciseID, byExercise[exerciseID]))
	}
	return result, nil
}

// PersonalRecords returns the best per rep count of every exercise the user has sets for,
// ordered by exercise name.
func (a *Analyzer) PersonalRecords(ctx context.Context, userID int) (_ []ExerciseRepBests, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	setRows, err := a.repo.SetRows(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	byExercise := groupByExercise(setRows)
	result := make([]ExerciseRepBests, 0, len(byExercise))
	for exerciseID, exerciseRows := range byExercise {
		result = append(result, repBests(exerciseID, exerciseRows))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ExerciseName != result[j].ExerciseName {
			return result[i].ExerciseName < result[j].ExerciseName
		}
		return result[i].ExerciseID < result[j].ExerciseID
	})
	return result, nil
}

// DailyMax returns, per requested exercise, the heaviest weight of each workout day,
// ordered by date. The improvement direction is not taken into account.
func (a *Analyzer) DailyMax(ctx context.Context, userID int, exerciseIDs []int) (_ []ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.dailyMax")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.IntSlice("exercise.ids", exerciseIDs))

	exerciseIDs = uniqueIDs(exerciseIDs)
	if len(exerciseIDs) == 0 {
		return []ExerciseHistory{}, nil
	}

	setRows, err := a.repo.SetRows(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, err
	}

	byExercise := groupByExercise(setRows)
	result := make([]ExerciseHistory, 0, len(exerciseIDs))
	for _, exerciseID := range exerciseIDs {
		exerciseRows := byExercise[exerciseID]
		history := ExerciseHistory{
			ExerciseID: exerciseID,
			Days:       dailyMax(exerciseRows),
		}
		if len(exerciseRows) > 0 {
			history.ExerciseName = exerciseRows[0].ExerciseName
		}
		result = append(result, history)
	}
	return result, nil
}

func repBests(exerciseID int, exerciseRows []SetRow) ExerciseRepBests {
	entry := ExerciseRepBests{
		ExerciseID: exerciseID,
		Bests:      []RepBest{},
	}
	if len(exerciseRows) == 0 {
		return entry
	}
	entry.ExerciseName = exerciseRows[0].ExerciseName
	entry.Direction = exerciseRows[0].Direction
	entry.Bests = BestPerRepCount(entry.Direction, exerciseRows)
	return entry
}

// BestPerRepCount picks the best set for every distinct rep count, sorted by reps descending.
// Ties on weight go to the earliest date, then to the lowest set id.
func BestPerRepCount(direction gymstats.Direction, setRows []SetRow) []RepBest {
	bestByReps := make(map[int]RepBest)
	for _, setRow := range setRows {
		current, ok := bestByReps[setRow.Reps]
		if !ok || replacesBest(direction, setRow, current) {
			bestByReps[setRow.Reps] = RepBest{
				Reps:   setRow.Reps,
				Weight: setRow.Weight,
				Date:   setRow.Date,
				SetID:  setRow.SetID,
			}
		}
	}

	bests := make([]RepBest, 0, len(bestByReps))
	for _, best := range bestByReps {
		bests = append(bests, best)
	}
	sort.Slice(bests, func(i, j int) bool {
		return bests[i].Reps > bests[j].Reps
	})
	return bests
}

func replacesBest(direction gymstats.Direction, candidate SetRow, current RepBest) bool {
	if direction.Better(candidate.Weight, current.Weight) {
		return true
	}
	if candidate.Weight != current.Weight {
		return false
	}
	if !candidate.Date.Equal(current.Date) {
		return candidate.Date.Before(current.Date)
	}
	return candidate.SetID < current.SetID
}

func dailyMax(exerciseRows []SetRow) []DailyMax {
	maxByDay := make(map[time.Time]float64)
	for _, setRow := range exerciseRows {
		day := truncateToDay(setRow.Date)
		if current, ok := maxByDay[day]; !ok || setRow.Weight > current {
			maxByDay[day] = setRow.Weight
		}
	}

	days := make([]DailyMax, 0, len(maxByDay))
	for day, weight := range maxByDay {
		days = append(days, DailyMax{Date: day, Weight: weight})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func groupByExercise(setRows []SetRow) map[int][]SetRow {
	byExercise := make(map[int][]SetRow)
	for _, setRow := range setRows {
		byExercise[setRow.ExerciseID] = append(byExercise[setRow.ExerciseID], setRow)
	}
	return byExercise
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
