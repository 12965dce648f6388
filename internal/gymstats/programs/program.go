package programs

import (
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
)

const (
	DefaultTargetSets = 3
	DefaultTargetReps = 10
)

type Program struct {
	ID          int               `json:"id"`
	UserID      int               `json:"userId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"createdAt"`
	Exercises   []ProgramExercise `json:"exercises,omitempty"`
}

// ProgramExercise is one entry of a program, joined with its exercise.
type ProgramExercise struct {
	ID            int                `json:"id"`
	ExerciseID    int                `json:"exerciseId"`
	OrderIndex    int                `json:"orderIndex"`
	TargetSets    int                `json:"targetSets"`
	TargetReps    int                `json:"targetReps"`
	ExerciseName  string             `json:"exerciseName"`
	Direction     gymstats.Direction `json:"improvementDirection"`
	SplitTracking bool               `json:"splitTracking"`
}

type ExerciseTarget struct {
	ExerciseID int `json:"exerciseId" validate:"gte=0"`
	TargetSets int `json:"targetSets" validate:"gte=0"`
	TargetReps int `json:"targetReps" validate:"gte=0"`
}

// ProgramPayload is the body of the create and update requests.
type ProgramPayload struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description"`
	Exercises   []ExerciseTarget `json:"exercises" validate:"dive"`
}

type ReplaceExercisesPayload struct {
	Exercises []ExerciseTarget `json:"exercises" validate:"dive"`
}

// NormalizeTargets drops entries without an exercise and fills in the default targets.
// The position in the returned list is the order index.
func NormalizeTargets(targets []ExerciseTarget) []ExerciseTarget {
	normalized := make([]ExerciseTarget, 0, len(targets))
	for _, target := range targets {
		if target.ExerciseID <= 0 {
			continue
		}
		if target.TargetSets <= 0 {
			target.TargetSets = DefaultTargetSets
		}
		if target.TargetReps <= 0 {
			target.TargetReps = DefaultTargetReps
		}
		normalized = append(normalized, target)
	}
	return normalized
}
