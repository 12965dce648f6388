package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema is the full liftlog schema. Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS users
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR     NOT NULL UNIQUE,
    password_hash VARCHAR     NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercises
(
    id                    SERIAL PRIMARY KEY,
    user_id               INTEGER REFERENCES users (id) ON DELETE CASCADE,
    name                  VARCHAR     NOT NULL,
    muscle_group          VARCHAR     NOT NULL DEFAULT '',
    improvement_direction VARCHAR     NOT NULL DEFAULT 'increase'
        CHECK (improvement_direction IN ('increase', 'decrease')),
    split_tracking        BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_exercises_user_id ON exercises (user_id);

CREATE TABLE IF NOT EXISTS programs
(
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER     NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    name        VARCHAR     NOT NULL,
    description TEXT        NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_programs_user_id ON programs (user_id);

CREATE TABLE IF NOT EXISTS program_exercises
(
    id          SERIAL PRIMARY KEY,
    program_id  INTEGER NOT NULL REFERENCES programs (id) ON DELETE CASCADE,
    exercise_id INTEGER NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
    order_index INTEGER NOT NULL,
    target_sets INTEGER NOT NULL DEFAULT 3,
    target_reps INTEGER NOT NULL DEFAULT 10
);
CREATE INDEX IF NOT EXISTS ix_program_exercises_program_id ON program_exercises (program_id);

CREATE TABLE IF NOT EXISTS workouts
(
    id         SERIAL PRIMARY KEY,
    program_id INTEGER     NOT NULL REFERENCES programs (id) ON DELETE CASCADE,
    user_id    INTEGER     NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    date       DATE        NOT NULL,
    notes      TEXT        NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workouts_user_id_date ON workouts (user_id, date);

CREATE TABLE IF NOT EXISTS workout_sets
(
    id          SERIAL PRIMARY KEY,
    workout_id  INTEGER          NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
    exercise_id INTEGER          NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
    set_number  INTEGER          NOT NULL CHECK (set_number > 0),
    weight      DOUBLE PRECISION NOT NULL,
    reps        INTEGER          NOT NULL CHECK (reps > 0),
    side        VARCHAR CHECK (side IN ('left', 'right')),
    created_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_workout_sets_number
    ON workout_sets (workout_id, exercise_id, COALESCE(side, ''), set_number);
CREATE INDEX IF NOT EXISTS ix_workout_sets_exercise_reps ON workout_sets (exercise_id, reps);

CREATE TABLE IF NOT EXISTS personal_records
(
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER          NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    exercise_id INTEGER          NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
    weight      DOUBLE PRECISION NOT NULL,
    reps        INTEGER          NOT NULL,
    date        DATE             NOT NULL,
    UNIQUE (user_id, exercise_id)
);
`

// Migrate ensures all tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Debugln("db schema migrated")
	return nil
}
