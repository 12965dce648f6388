package mcp

import (
	"net/http"

	"github.com/2beens/liftlog/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const (
	serverName    = "liftlog"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server whose tools read the data of userID only.
func NewServer(service contextService, userID int) *mcp.Server {
	h := NewHandler(service, userID)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_liftlog_schema",
		Description: "Returns the DB schema of the liftlog tables (exercises, programs, program_exercises, workouts, workout_sets, personal_records): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the personal records of every exercise with logged sets, computed from the full set history: the best weight per rep count, sorted by reps descending. For exercises with the decrease improvement direction (assisted movements) the lowest weight is the best.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_stored_personal_records",
		Description: "Returns the stored personal record rows, one per exercise: weight, reps and date of the last set that beat the previous best.",
	}, h.GetStoredPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns the heaviest weight of each workout day for the given exercises, ordered by date. Arg: exercise_ids. Use when you need progression over time.",
	}, h.GetExerciseHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_best_per_rep_count",
		Description: "Returns the best weight for each rep count of the given exercises, sorted by reps descending. Arg: exercise_ids.",
	}, h.GetBestPerRepCountTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercises visible to the user (global and own): id, name, muscle group, improvement direction, split tracking.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns the workouts of the user, newest first, with their program name, date and notes.",
	}, h.ListWorkoutsTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. Every session gets a server bound
// to the user the auth middleware put in the request context.
func NewHTTPHandler(service contextService) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			log.Warnf("mcp request without user from %s", r.RemoteAddr)
			return nil
		}
		return NewServer(service, userID)
	}, nil)
}
