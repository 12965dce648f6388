package records

import (
	"context"
	"fmt"

	"github.com/2beens/liftlog/internal/gymstats"

	"github.com/jackc/pgx/v5"
)

// IsPR reports whether weight beats the prior best. No prior best means any weight is a record.
func IsPR(direction gymstats.Direction, priorBest *float64, weight float64) bool {
	if priorBest == nil {
		return true
	}
	return direction.Better(weight, *priorBest)
}

// BestWeightTx returns the best weight of the user's sets of the exercise done
// with at least reps repetitions, or nil if there are none. For the decrease
// direction the best weight is the lowest one.
func BestWeightTx(
	ctx context.Context,
	tx pgx.Tx,
	userID, exerciseID, reps int,
	direction gymstats.Direction,
) (*float64, error) {
	var best *float64
	err := tx.QueryRow(
		ctx,
		`SELECT CASE WHEN $4::text = 'decrease' THEN MIN(s.weight) ELSE MAX(s.weight) END
			FROM workout_sets s
			JOIN workouts w ON w.id = s.workout_id
			WHERE w.user_id = $1 AND s.exercise_id = $2 AND s.reps >= $3;`,
		userID, exerciseID, reps, string(direction),
	).Scan(&best)
	if err != nil {
		return nil, fmt.Errorf("best weight: %w", err)
	}
	return best, nil
}

// UpsertTx stores record as the one personal record of the user for the exercise.
func UpsertTx(ctx context.Context, tx pgx.Tx, record PersonalRecord) error {
	_, err := tx.Exec(
		ctx,
		`INSERT INTO personal_records (user_id, exercise_id, weight, reps, date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, exercise_id)
			DO UPDATE SET weight = EXCLUDED.weight, reps = EXCLUDED.reps, date = EXCLUDED.date;`,
		record.UserID, record.ExerciseID, record.Weight, record.Reps, record.Date,
	)
	if err != nil {
		return fmt.Errorf("upsert personal record: %w", err)
	}
	return nil
}
