package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/programs"
	"github.com/2beens/liftlog/internal/gymstats/records"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db       *pgxpool.Pool
	programs *programs.Repo
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:       db,
		programs: programs.NewRepo(db),
	}
}

// Start adds a workout of a program owned by userID.
func (r *Repo) Start(ctx context.Context, userID, programID int, date time.Time, notes string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))

	workout := &Workout{
		UserID:    userID,
		ProgramID: programID,
		Date:      date,
		Notes:     notes,
	}
	err = r.db.QueryRow(
		ctx,
		`WITH p AS (
				SELECT id, user_id, name FROM programs WHERE id = $1 AND user_id = $2
			), inserted AS (
				INSERT INTO workouts (program_id, user_id, date, notes)
				SELECT p.id, p.user_id, $3::date, $4::text FROM p
				RETURNING id, created_at
			)
			SELECT inserted.id, inserted.created_at, p.name FROM inserted, p;`,
		programID, userID, date, notes,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.ProgramName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: program %d", gymstats.ErrNotFound, programID)
		}
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return workout, nil
}

// List returns the workouts of userID, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT w.id, w.user_id, w.program_id, p.name, w.date, w.notes, w.created_at
			FROM workouts w
			JOIN programs p ON p.id = w.program_id
			WHERE w.user_id = $1
			ORDER BY w.date DESC, w.id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	workouts, err := pgx.CollectRows(rows, scanWorkout)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return workouts, nil
}

// Get returns the workout with its planned exercises and logged sets.
func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT w.id, w.user_id, w.program_id, p.name, w.date, w.notes, w.created_at
			FROM workouts w
			JOIN programs p ON p.id = w.program_id
			WHERE w.id = $1 AND w.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	workout, err := pgx.CollectExactlyOneRow(rows, scanWorkout)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: workout %d", gymstats.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	detail := &Detail{Workout: workout}
	detail.Exercises, err = r.programs.ListExercises(ctx, workout.ProgramID)
	if err != nil {
		return nil, err
	}
	detail.Sets, err = r.listSets(ctx, id)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *Repo) listSets(ctx context.Context, workoutID int) ([]Set, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.workout_id, s.exercise_id, e.name, s.set_number, s.weight, s.reps, s.side, s.created_at
			FROM workout_sets s
			JOIN exercises e ON e.id = s.exercise_id
			WHERE s.workout_id = $1
			ORDER BY e.name, s.exercise_id, s.side NULLS FIRST, s.set_number;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}

	sets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Set, error) {
		var (
			set  Set
			side *string
		)
		err := row.Scan(
			&set.ID, &set.WorkoutID, &set.ExerciseID, &set.ExerciseName,
			&set.SetNumber, &set.Weight, &set.Reps, &side, &set.CreatedAt,
		)
		if side != nil {
			s := gymstats.Side(*side)
			set.Side = &s
		}
		return set, err
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return sets, nil
}

// Update changes the date and notes of a workout.
func (r *Repo) Update(ctx context.Context, userID int, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts SET date = $1, notes = $2 WHERE id = $3 AND user_id = $4;`,
		workout.Date, workout.Notes, workout.ID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: workout %d", gymstats.ErrNotFound, workout.ID)
	}
	return nil
}

// Delete removes the workout and its sets. Stored personal records are kept.
func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: workout %d", gymstats.ErrNotFound, id)
	}
	return nil
}

// LogSet stores a set in the workout and updates the personal record when the set beats it.
//
// Numbering, PR evaluation and the PR upsert all run in one transaction holding
// an advisory lock on (user, exercise), so concurrent sets of the same exercise
// get distinct numbers and are compared one after another.
func (r *Repo) LogSet(ctx context.Context, userID, workoutID int, newSet NewSet) (_ *LogSetResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("exercise.id", newSet.ExerciseID),
	)

	if err := newSet.Validate(); err != nil {
		return nil, err
	}

	result := &LogSetResult{}
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var workoutDate time.Time
		err := tx.QueryRow(
			ctx,
			`SELECT date FROM workouts WHERE id = $1 AND user_id = $2;`,
			workoutID, userID,
		).Scan(&workoutDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: workout %d", gymstats.ErrNotFound, workoutID)
			}
			return fmt.Errorf("get workout: %w", err)
		}

		var (
			direction     string
			splitTracking bool
		)
		err = tx.QueryRow(
			ctx,
			`SELECT improvement_direction, split_tracking FROM exercises
				WHERE id = $1 AND (user_id IS NULL OR user_id = $2);`,
			newSet.ExerciseID, userID,
		).Scan(&direction, &splitTracking)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: exercise %d", gymstats.ErrInvalidInput, newSet.ExerciseID)
			}
			return fmt.Errorf("get exercise: %w", err)
		}
		if newSet.Side != nil && !splitTracking {
			return fmt.Errorf("%w: exercise %d is not split tracked", gymstats.ErrInvalidInput, newSet.ExerciseID)
		}

		if _, err := tx.Exec(
			ctx,
			`SELECT pg_advisory_xact_lock($1::int, $2::int);`,
			userID, newSet.ExerciseID,
		); err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}

		// compared against earlier sets only, so evaluated before the insert
		priorBest, err := records.BestWeightTx(
			ctx, tx, userID, newSet.ExerciseID, newSet.Reps, gymstats.Direction(direction),
		)
		if err != nil {
			return err
		}

		side := sideParam(newSet.Side)
		if err := tx.QueryRow(
			ctx,
			`SELECT COALESCE(MAX(set_number), 0) + 1 FROM workout_sets
				WHERE workout_id = $1 AND exercise_id = $2 AND side IS NOT DISTINCT FROM $3::varchar;`,
			workoutID, newSet.ExerciseID, side,
		).Scan(&result.SetNumber); err != nil {
			return fmt.Errorf("next set number: %w", err)
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_sets (workout_id, exercise_id, set_number, weight, reps, side)
				VALUES ($1, $2, $3, $4, $5, $6::varchar) RETURNING id;`,
			workoutID, newSet.ExerciseID, result.SetNumber, newSet.Weight, newSet.Reps, side,
		).Scan(&result.SetID); err != nil {
			if pkg.IsCheckViolationError(err) {
				return fmt.Errorf("%w: set rejected: %s", gymstats.ErrInvalidInput, err)
			}
			return fmt.Errorf("insert set: %w", err)
		}

		result.IsPR = records.IsPR(gymstats.Direction(direction), priorBest, newSet.Weight)
		if !result.IsPR {
			return nil
		}
		return records.UpsertTx(ctx, tx, records.PersonalRecord{
			UserID:     userID,
			ExerciseID: newSet.ExerciseID,
			Weight:     newSet.Weight,
			Reps:       newSet.Reps,
			Date:       workoutDate,
		})
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("set.id", result.SetID),
		attribute.Bool("set.pr", result.IsPR),
	)
	log.Tracef("set %d logged, workout %d, number %d, pr %t", result.SetID, workoutID, result.SetNumber, result.IsPR)
	return result, nil
}

// DeleteSet removes a set of a workout owned by userID. The stored personal record is not recomputed.
func (r *Repo) DeleteSet(ctx context.Context, userID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_sets s
			USING workouts w
			WHERE s.id = $1 AND s.workout_id = w.id AND w.user_id = $2;`,
		setID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: set %d", gymstats.ErrNotFound, setID)
	}
	return nil
}

func scanWorkout(row pgx.CollectableRow) (Workout, error) {
	var w Workout
	err := row.Scan(&w.ID, &w.UserID, &w.ProgramID, &w.ProgramName, &w.Date, &w.Notes, &w.CreatedAt)
	return w, err
}

func sideParam(side *gymstats.Side) *string {
	if side == nil {
		return nil
	}
	s := string(*side)
	return &s
}
