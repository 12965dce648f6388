package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `id, user_id, name, muscle_group, improvement_direction, split_tracking, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add creates an exercise owned by userID.
func (r *Repo) Add(ctx context.Context, userID int, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.insert(ctx, &userID, exercise)
}

// AddGlobal creates an exercise visible to every user.
func (r *Repo) AddGlobal(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.addGlobal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.insert(ctx, nil, exercise)
}

func (r *Repo) insert(ctx context.Context, userID *int, exercise Exercise) (*Exercise, error) {
	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		return nil, fmt.Errorf("%w: exercise name empty", gymstats.ErrInvalidInput)
	}
	if exercise.Direction == "" {
		exercise.Direction = gymstats.DirectionIncrease
	}
	if !exercise.Direction.Valid() {
		return nil, fmt.Errorf("%w: unknown improvement direction [%s]", gymstats.ErrInvalidInput, exercise.Direction)
	}

	exercise.UserID = userID
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercises
				(user_id, name, muscle_group, improvement_direction, split_tracking)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at;`,
		userID, exercise.Name, exercise.MuscleGroup, string(exercise.Direction), exercise.SplitTracking,
	).Scan(&exercise.ID, &exercise.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}

// Get returns the exercise if it is global or owned by userID.
func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercises
			WHERE id = $1 AND (user_id IS NULL OR user_id = $2);`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	exercise, err := pgx.CollectExactlyOneRow(rows, scanExercise)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: exercise %d", gymstats.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	return &exercise, nil
}

// List returns the global exercises and the ones owned by userID, ordered by name.
func (r *Repo) List(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercises
			WHERE user_id IS NULL OR user_id = $1
			ORDER BY name, id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	exercises, err := pgx.CollectRows(rows, scanExercise)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return exercises, nil
}

// Update changes an exercise owned by userID. Global exercises cannot be changed.
func (r *Repo) Update(ctx context.Context, userID int, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	if strings.TrimSpace(exercise.Name) == "" {
		return fmt.Errorf("%w: exercise name empty", gymstats.ErrInvalidInput)
	}
	if !exercise.Direction.Valid() {
		return fmt.Errorf("%w: unknown improvement direction [%s]", gymstats.ErrInvalidInput, exercise.Direction)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercises
			SET name = $1, muscle_group = $2, improvement_direction = $3, split_tracking = $4
			WHERE id = $5 AND user_id = $6;`,
		strings.TrimSpace(exercise.Name), exercise.MuscleGroup, string(exercise.Direction), exercise.SplitTracking,
		exercise.ID, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exercise %d", gymstats.ErrNotFound, exercise.ID)
	}

	return nil
}

// Delete removes an exercise owned by userID, together with its sets, program entries and records.
func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exercise %d", gymstats.ErrNotFound, id)
	}
	return nil
}

func scanExercise(row pgx.CollectableRow) (Exercise, error) {
	var (
		exercise  Exercise
		direction string
	)
	err := row.Scan(
		&exercise.ID,
		&exercise.UserID,
		&exercise.Name,
		&exercise.MuscleGroup,
		&direction,
		&exercise.SplitTracking,
		&exercise.CreatedAt,
	)
	exercise.Direction = gymstats.Direction(direction)
	return exercise, err
}
