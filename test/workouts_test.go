package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/liftlog/internal/gymstats/exercises"
	"github.com/2beens/liftlog/internal/gymstats/programs"
	"github.com/2beens/liftlog/internal/gymstats/records"
	"github.com/2beens/liftlog/internal/gymstats/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestTrainingFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newUser(ctx, t)

	var bench exercises.Exercise
	s.doJSON(ctx, http.MethodPost, "/exercises", user.Token, exercises.ExercisePayload{
		Name:        "Bench Press",
		MuscleGroup: "chest",
	}, http.StatusCreated, &bench)
	assert.Equal(t, "increase", string(bench.Direction))

	var pullup exercises.Exercise
	s.doJSON(ctx, http.MethodPost, "/exercises", user.Token, exercises.ExercisePayload{
		Name:        "Assisted Pull-up",
		MuscleGroup: "back",
		Direction:   "decrease",
	}, http.StatusCreated, &pullup)

	var program programs.Program
	s.doJSON(ctx, http.MethodPost, "/programs", user.Token, programs.ProgramPayload{
		Name: "Push Pull",
		Exercises: []programs.ExerciseTarget{
			{ExerciseID: bench.ID, TargetSets: 3, TargetReps: 5},
			{ExerciseID: pullup.ID, TargetSets: 3, TargetReps: 8},
		},
	}, http.StatusCreated, &program)
	require.Len(t, program.Exercises, 2)

	var workout workouts.Workout
	s.doJSON(ctx, http.MethodPost, "/workouts", user.Token, workouts.StartPayload{
		ProgramID: program.ID,
		Date:      "2025-03-01",
	}, http.StatusCreated, &workout)
	assert.Equal(t, "Push Pull", workout.ProgramName)

	logSet := func(exerciseID int, weight float64, reps int) workouts.LogSetResult {
		var res workouts.LogSetResult
		s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/%d/sets", workout.ID), user.Token, workouts.LogSetPayload{
			ExerciseID: exerciseID,
			Weight:     weight,
			Reps:       reps,
		}, http.StatusCreated, &res)
		return res
	}

	benchSets := []struct {
		weight float64
		isPR   bool
	}{
		{weight: 60, isPR: true},
		{weight: 70, isPR: true},
		{weight: 70, isPR: false},
		{weight: 65, isPR: false},
	}
	for i, set := range benchSets {
		res := logSet(bench.ID, set.weight, 5)
		assert.Equal(t, i+1, res.SetNumber)
		assert.Equal(t, set.isPR, res.IsPR, "bench set %d", i+1)
	}

	pullupSets := []struct {
		weight float64
		isPR   bool
	}{
		{weight: 30, isPR: true},
		{weight: 25, isPR: true},
		{weight: 35, isPR: false},
	}
	for i, set := range pullupSets {
		res := logSet(pullup.ID, set.weight, 8)
		assert.Equal(t, set.isPR, res.IsPR, "pull-up set %d", i+1)
	}

	var detail workouts.Detail
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/workouts/%d", workout.ID), user.Token, nil, http.StatusOK, &detail)
	assert.Len(t, detail.Sets, len(benchSets)+len(pullupSets))
	assert.Len(t, detail.Exercises, 2)

	var stored records.StoredRecordsResponse
	s.doJSON(ctx, http.MethodGet, "/prs/stored", user.Token, nil, http.StatusOK, &stored)
	require.Len(t, stored.Records, 2)
	bestByExercise := map[int]float64{}
	for _, r := range stored.Records {
		bestByExercise[r.ExerciseID] = r.Weight
	}
	assert.Equal(t, 70.0, bestByExercise[bench.ID])
	assert.Equal(t, 25.0, bestByExercise[pullup.ID])

	var prs records.PersonalRecordsResponse
	s.doJSON(ctx, http.MethodGet, "/prs", user.Token, nil, http.StatusOK, &prs)
	require.Len(t, prs.Records, 2)

	var history records.HistoryResponse
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/history?exercise_ids=%d", bench.ID), user.Token, nil, http.StatusOK, &history)
	require.Len(t, history.History, 1)
	require.Len(t, history.History[0].Days, 1)
	assert.Equal(t, 70.0, history.History[0].Days[0].Weight)

	var setCount int
	require.NoError(t, s.DB.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM workout_sets WHERE workout_id = $1`, workout.ID,
	).Scan(&setCount))
	assert.Equal(t, len(benchSets)+len(pullupSets), setCount)
}

func (s *IntegrationTestSuite) TestOwnershipIsolation() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	owner := s.newUser(ctx, t)
	other := s.newUser(ctx, t)

	var exercise exercises.Exercise
	s.doJSON(ctx, http.MethodPost, "/exercises", owner.Token, exercises.ExercisePayload{
		Name: "Squat",
	}, http.StatusCreated, &exercise)

	var program programs.Program
	s.doJSON(ctx, http.MethodPost, "/programs", owner.Token, programs.ProgramPayload{
		Name:      "Legs",
		Exercises: []programs.ExerciseTarget{{ExerciseID: exercise.ID, TargetSets: 5, TargetReps: 5}},
	}, http.StatusCreated, &program)

	var workout workouts.Workout
	s.doJSON(ctx, http.MethodPost, "/workouts", owner.Token, workouts.StartPayload{
		ProgramID: program.ID,
	}, http.StatusCreated, &workout)

	var logged workouts.LogSetResult
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/%d/sets", workout.ID), owner.Token, workouts.LogSetPayload{
		ExerciseID: exercise.ID,
		Weight:     100,
		Reps:       5,
	}, http.StatusCreated, &logged)
	assert.True(t, logged.IsPR)

	status, _ := s.do(ctx, http.MethodGet, fmt.Sprintf("/exercises/%d", exercise.ID), other.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(ctx, http.MethodGet, fmt.Sprintf("/workouts/%d", workout.ID), other.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(ctx, http.MethodPost, "/workouts", other.Token, workouts.StartPayload{ProgramID: program.ID})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(ctx, http.MethodPost, fmt.Sprintf("/workouts/%d/sets", workout.ID), other.Token, workouts.LogSetPayload{
		ExerciseID: exercise.ID,
		Weight:     200,
		Reps:       5,
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(ctx, http.MethodDelete, fmt.Sprintf("/sets/%d", logged.SetID), other.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var remaining int
	require.NoError(t, s.DB.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM workout_sets WHERE id = $1`, logged.SetID,
	).Scan(&remaining))
	assert.Equal(t, 1, remaining)

	status, _ = s.do(ctx, http.MethodDelete, fmt.Sprintf("/sets/%d", logged.SetID), owner.Token, nil)
	assert.Equal(t, http.StatusOK, status)

	require.NoError(t, s.DB.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM workout_sets WHERE id = $1`, logged.SetID,
	).Scan(&remaining))
	assert.Zero(t, remaining)

	var otherRecords records.StoredRecordsResponse
	s.doJSON(ctx, http.MethodGet, "/prs/stored", other.Token, nil, http.StatusOK, &otherRecords)
	assert.Empty(t, otherRecords.Records)
}
