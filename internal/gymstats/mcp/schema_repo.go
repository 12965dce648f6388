package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=schema_repo_mocks_test.go -package=mcp

// SchemaRepo provides the liftlog DB schema (information_schema) data.
type SchemaRepo interface {
	GetLiftlogColumns(ctx context.Context) ([]SchemaColumn, error)
}

// SchemaColumn represents one row from information_schema.columns.
type SchemaColumn struct {
	TableSchema string
	TableName   string
	ColumnName  string
	DataType    string
	IsNullable  string
	ColumnDef   *string
}

// users is not exposed
var liftlogTables = []string{
	"exercises",
	"programs",
	"program_exercises",
	"workouts",
	"workout_sets",
	"personal_records",
}

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

func (r *poolSchemaRepo) GetLiftlogColumns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT table_schema, table_name, column_name, data_type, is_nullable, column_default
			FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = ANY($1)
			ORDER BY table_name, ordinal_position;`,
		liftlogTables,
	)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}

	cols, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SchemaColumn, error) {
		var c SchemaColumn
		err := row.Scan(&c.TableSchema, &c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable, &c.ColumnDef)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan columns: %w", err)
	}

	return cols, nil
}
