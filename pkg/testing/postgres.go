package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/liftlog/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetDBPool connects to the postgres set by POSTGRES_HOST and makes sure the
// schema exists. The pool is closed on test cleanup.
func GetDBPool(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	dbName := os.Getenv("POSTGRES_DB")
	if dbName == "" {
		dbName = "liftlog_test"
	}
	t.Logf("using postgres: %s:%s/%s", host, port, dbName)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     port,
		DBName:     dbName,
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.Migrate(ctx, dbPool))
	return ctx, dbPool
}

// AddTestUser inserts a user with a random name and returns its id.
func AddTestUser(ctx context.Context, t *testing.T, dbPool *pgxpool.Pool) int {
	t.Helper()

	var userID int
	err := dbPool.QueryRow(
		ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id;`,
		gofakeit.Username()+"-"+gofakeit.LetterN(8), "not-a-hash",
	).Scan(&userID)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = dbPool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, userID)
	})
	return userID
}
