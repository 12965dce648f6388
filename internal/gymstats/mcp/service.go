package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/liftlog/internal/gymstats/exercises"
	"github.com/2beens/liftlog/internal/gymstats/records"
	"github.com/2beens/liftlog/internal/gymstats/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=mcp

type recordsAnalyzer interface {
	BestPerRepCount(ctx context.Context, userID int, exerciseIDs []int) ([]records.ExerciseRepBests, error)
	PersonalRecords(ctx context.Context, userID int) ([]records.ExerciseRepBests, error)
	DailyMax(ctx context.Context, userID int, exerciseIDs []int) ([]records.ExerciseHistory, error)
}

type storedRecordsRepo interface {
	StoredRecords(ctx context.Context, userID int) ([]records.StoredRecord, error)
}

type exercisesRepo interface {
	List(ctx context.Context, userID int) ([]exercises.Exercise, error)
}

type workoutsRepo interface {
	List(ctx context.Context, userID int) ([]workouts.Workout, error)
}

// contextService is what the tool handlers read from. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	PersonalRecords(ctx context.Context, userID int) ([]records.ExerciseRepBests, error)
	StoredRecords(ctx context.Context, userID int) ([]records.StoredRecord, error)
	ExerciseHistory(ctx context.Context, userID int, exerciseIDs []int) ([]records.ExerciseHistory, error)
	BestPerRepCount(ctx context.Context, userID int, exerciseIDs []int) ([]records.ExerciseRepBests, error)
	ListExercises(ctx context.Context, userID int) ([]exercises.Exercise, error)
	ListWorkouts(ctx context.Context, userID int) ([]workouts.Workout, error)
}

// ContextService holds the repos the MCP tools read from. It is shared by all per-user servers.
type ContextService struct {
	schema    SchemaRepo
	analyzer  recordsAnalyzer
	stored    storedRecordsRepo
	exercises exercisesRepo
	workouts  workoutsRepo
}

func NewContextService(
	schemaRepo SchemaRepo,
	analyzer recordsAnalyzer,
	stored storedRecordsRepo,
	exercisesRepo exercisesRepo,
	workoutsRepo workoutsRepo,
) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		analyzer:  analyzer,
		stored:    stored,
		exercises: exercisesRepo,
		workouts:  workoutsRepo,
	}
}

// GetSchema returns the liftlog tables with their columns as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetLiftlogColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Liftlog DB Schema\n\nNo liftlog tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Liftlog DB Schema\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) PersonalRecords(ctx context.Context, userID int) ([]records.ExerciseRepBests, error) {
	return s.analyzer.PersonalRecords(ctx, userID)
}

func (s *ContextService) StoredRecords(ctx context.Context, userID int) ([]records.StoredRecord, error) {
	stored, err := s.stored.StoredRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = []records.StoredRecord{}
	}
	return stored, nil
}

func (s *ContextService) ExerciseHistory(ctx context.Context, userID int, exerciseIDs []int) ([]records.ExerciseHistory, error) {
	return s.analyzer.DailyMax(ctx, userID, exerciseIDs)
}

func (s *ContextService) BestPerRepCount(ctx context.Context, userID int, exerciseIDs []int) ([]records.ExerciseRepBests, error) {
	return s.analyzer.BestPerRepCount(ctx, userID, exerciseIDs)
}

func (s *ContextService) ListExercises(ctx context.Context, userID int) ([]exercises.Exercise, error) {
	list, err := s.exercises.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []exercises.Exercise{}
	}
	return list, nil
}

func (s *ContextService) ListWorkouts(ctx context.Context, userID int) ([]workouts.Workout, error) {
	list, err := s.workouts.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []workouts.Workout{}
	}
	return list, nil
}
