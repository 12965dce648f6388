package records

import (
	"context"
	"fmt"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// SetRows returns the user's sets of the given exercises. A nil exerciseIDs means all exercises.
func (r *Repo) SetRows(ctx context.Context, userID int, exerciseIDs []int) (_ []SetRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.setRows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.IntSlice("exercise.ids", exerciseIDs),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.exercise_id, e.name, e.improvement_direction, s.weight, s.reps, w.date
			FROM workout_sets s
			JOIN workouts w ON w.id = s.workout_id
			JOIN exercises e ON e.id = s.exercise_id
			WHERE w.user_id = $1 AND ($2::int[] IS NULL OR s.exercise_id = ANY($2::int[]))
			ORDER BY s.exercise_id, w.date, s.id;`,
		userID, exerciseIDs,
	)
	if err != nil {
		return nil, err
	}

	setRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SetRow, error) {
		var (
			setRow    SetRow
			direction string
		)
		err := row.Scan(
			&setRow.SetID,
			&setRow.ExerciseID,
			&setRow.ExerciseName,
			&direction,
			&setRow.Weight,
			&setRow.Reps,
			&setRow.Date,
		)
		setRow.Direction = gymstats.Direction(direction)
		return setRow, err
	})
	if err != nil {
		return nil, fmt.Errorf("list set rows: %w", err)
	}

	return setRows, nil
}

// StoredRecords returns the stored personal records of the user, ordered by exercise name.
func (r *Repo) StoredRecords(ctx context.Context, userID int) (_ []StoredRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.stored")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT pr.exercise_id, e.name, e.improvement_direction, pr.weight, pr.reps, pr.date
			FROM personal_records pr
			JOIN exercises e ON e.id = pr.exercise_id
			WHERE pr.user_id = $1
			ORDER BY e.name, pr.exercise_id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	stored, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (StoredRecord, error) {
		var (
			record    StoredRecord
			direction string
		)
		err := row.Scan(
			&record.ExerciseID,
			&record.ExerciseName,
			&direction,
			&record.Weight,
			&record.Reps,
			&record.Date,
		)
		record.Direction = gymstats.Direction(direction)
		return record, err
	})
	if err != nil {
		return nil, fmt.Errorf("list stored records: %w", err)
	}

	return stored, nil
}
