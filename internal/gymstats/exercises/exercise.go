package exercises

import (
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
)

// Exercise is either global (UserID nil, visible to everyone) or owned by one user.
type Exercise struct {
	ID            int                `json:"id"`
	UserID        *int               `json:"userId,omitempty"`
	Name          string             `json:"name"`
	MuscleGroup   string             `json:"muscleGroup"`
	Direction     gymstats.Direction `json:"improvementDirection"`
	SplitTracking bool               `json:"splitTracking"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (e Exercise) IsGlobal() bool {
	return e.UserID == nil
}

// ExercisePayload is the body of the create and update requests.
type ExercisePayload struct {
	Name          string `json:"name" validate:"required,max=200"`
	MuscleGroup   string `json:"muscleGroup" validate:"max=100"`
	Direction     string `json:"improvementDirection"`
	SplitTracking bool   `json:"splitTracking"`
}

// ToExercise validates the payload and fills in the defaults.
func (p ExercisePayload) ToExercise() (Exercise, error) {
	if err := gymstats.Validate(p); err != nil {
		return Exercise{}, err
	}
	direction, err := gymstats.ParseDirection(p.Direction)
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Name:          p.Name,
		MuscleGroup:   p.MuscleGroup,
		Direction:     direction,
		SplitTracking: p.SplitTracking,
	}, nil
}
