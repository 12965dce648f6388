package programs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

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

// Create adds a program with its ordered exercises in one transaction.
func (r *Repo) Create(
	ctx context.Context,
	userID int,
	name, description string,
	targets []ExerciseTarget,
) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: program name empty", gymstats.ErrInvalidInput)
	}

	program := &Program{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO programs (user_id, name, description) VALUES ($1, $2, $3) RETURNING id, created_at;`,
			userID, name, description,
		).Scan(&program.ID, &program.CreatedAt); err != nil {
			return fmt.Errorf("insert program: %w", err)
		}
		return insertExercisesTx(ctx, tx, userID, program.ID, targets)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("program.id", program.ID))
	return program, nil
}

// ReplaceExercises drops all exercises of the program and inserts the given list.
func (r *Repo) ReplaceExercises(ctx context.Context, userID, programID int, targets []ExerciseTarget) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.replaceExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockOwnedProgramTx(ctx, tx, userID, programID); err != nil {
			return err
		}
		return replaceExercisesTx(ctx, tx, userID, programID, targets)
	})
}

// Update changes name and description, and replaces the exercises, in one transaction.
func (r *Repo) Update(ctx context.Context, userID int, program Program, targets []ExerciseTarget) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", program.ID))

	name := strings.TrimSpace(program.Name)
	if name == "" {
		return fmt.Errorf("%w: program name empty", gymstats.ErrInvalidInput)
	}

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE programs SET name = $1, description = $2 WHERE id = $3 AND user_id = $4;`,
			name, program.Description, program.ID, userID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: program %d", gymstats.ErrNotFound, program.ID)
		}
		return replaceExercisesTx(ctx, tx, userID, program.ID, targets)
	})
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: program %d", gymstats.ErrNotFound, id)
	}
	return nil
}

// Get returns the program owned by userID with its exercises in order.
func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", id))

	var program Program
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, description, created_at FROM programs WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&program.ID, &program.UserID, &program.Name, &program.Description, &program.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: program %d", gymstats.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get program: %w", err)
	}

	program.Exercises, err = r.ListExercises(ctx, id)
	if err != nil {
		return nil, err
	}

	return &program, nil
}

// ListExercises returns the program entries ordered by order index. Ownership is not checked.
func (r *Repo) ListExercises(ctx context.Context, programID int) (_ []ProgramExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT pe.id, pe.exercise_id, pe.order_index, pe.target_sets, pe.target_reps,
				e.name, e.improvement_direction, e.split_tracking
			FROM program_exercises pe
			JOIN exercises e ON e.id = pe.exercise_id
			WHERE pe.program_id = $1
			ORDER BY pe.order_index;`,
		programID,
	)
	if err != nil {
		return nil, err
	}

	programExercises, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ProgramExercise, error) {
		var (
			pe        ProgramExercise
			direction string
		)
		err := row.Scan(
			&pe.ID, &pe.ExerciseID, &pe.OrderIndex, &pe.TargetSets, &pe.TargetReps,
			&pe.ExerciseName, &direction, &pe.SplitTracking,
		)
		pe.Direction = gymstats.Direction(direction)
		return pe, err
	})
	if err != nil {
		return nil, fmt.Errorf("list program exercises: %w", err)
	}

	return programExercises, nil
}

// List returns the programs of userID ordered by name, without their exercises.
func (r *Repo) List(ctx context.Context, userID int) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, created_at FROM programs WHERE user_id = $1 ORDER BY name, id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	programs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Program, error) {
		var p Program
		err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	return programs, nil
}

func lockOwnedProgramTx(ctx context.Context, tx pgx.Tx, userID, programID int) error {
	var id int
	err := tx.QueryRow(
		ctx,
		`SELECT id FROM programs WHERE id = $1 AND user_id = $2 FOR UPDATE;`,
		programID, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: program %d", gymstats.ErrNotFound, programID)
		}
		return fmt.Errorf("lock program: %w", err)
	}
	return nil
}

func replaceExercisesTx(ctx context.Context, tx pgx.Tx, userID, programID int, targets []ExerciseTarget) error {
	if _, err := tx.Exec(ctx, `DELETE FROM program_exercises WHERE program_id = $1`, programID); err != nil {
		return fmt.Errorf("delete program exercises: %w", err)
	}
	return insertExercisesTx(ctx, tx, userID, programID, targets)
}

// insertExercisesTx inserts the entries in list order. An exercise the user cannot see is invalid input.
func insertExercisesTx(ctx context.Context, tx pgx.Tx, userID, programID int, targets []ExerciseTarget) error {
	for orderIndex, target := range NormalizeTargets(targets) {
		tag, err := tx.Exec(
			ctx,
			`INSERT INTO program_exercises (program_id, exercise_id, order_index, target_sets, target_reps)
				SELECT $1::int, e.id, $3::int, $4::int, $5::int
				FROM exercises e
				WHERE e.id = $2 AND (e.user_id IS NULL OR e.user_id = $6);`,
			programID, target.ExerciseID, orderIndex, target.TargetSets, target.TargetReps, userID,
		)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return fmt.Errorf("%w: exercise %d", gymstats.ErrInvalidInput, target.ExerciseID)
			}
			return fmt.Errorf("insert program exercise: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: exercise %d", gymstats.ErrInvalidInput, target.ExerciseID)
		}
	}
	return nil
}
