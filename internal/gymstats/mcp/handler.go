package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// ExerciseIDsInput is the input of the tools reading a set of exercises.
type ExerciseIDsInput struct {
	ExerciseIDs []int `json:"exercise_ids" jsonschema:"Ids of the exercises, as listed by list_exercises"`
}

// Handler turns MCP tool calls into service calls for one user and formats the results.
type Handler struct {
	service contextService
	userID  int
}

func NewHandler(service contextService, userID int) *Handler {
	return &Handler{
		service: service,
		userID:  userID,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			log.Errorf("mcp, get schema: %s", err)
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		prs, err := h.service.PersonalRecords(ctx, h.userID)
		if err != nil {
			log.Errorf("mcp, personal records, user %d: %s", h.userID, err)
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(prs), nil, nil
	}
}

func (h *Handler) GetStoredPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		stored, err := h.service.StoredRecords(ctx, h.userID)
		if err != nil {
			log.Errorf("mcp, stored records, user %d: %s", h.userID, err)
			return errorResult("Error fetching stored personal records: " + err.Error()), nil, nil
		}
		return jsonResult(stored), nil, nil
	}
}

func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseIDsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseIDsInput) (*mcp.CallToolResult, any, error) {
		if len(in.ExerciseIDs) == 0 {
			return errorResult("exercise_ids missing"), nil, nil
		}
		history, err := h.service.ExerciseHistory(ctx, h.userID, in.ExerciseIDs)
		if err != nil {
			log.Errorf("mcp, exercise history, user %d: %s", h.userID, err)
			return errorResult("Error fetching exercise history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

func (h *Handler) GetBestPerRepCountTool() func(context.Context, *mcp.CallToolRequest, ExerciseIDsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseIDsInput) (*mcp.CallToolResult, any, error) {
		if len(in.ExerciseIDs) == 0 {
			return errorResult("exercise_ids missing"), nil, nil
		}
		bests, err := h.service.BestPerRepCount(ctx, h.userID, in.ExerciseIDs)
		if err != nil {
			log.Errorf("mcp, best per rep count, user %d: %s", h.userID, err)
			return errorResult("Error fetching best per rep count: " + err.Error()), nil, nil
		}
		return jsonResult(bests), nil, nil
	}
}

func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx, h.userID)
		if err != nil {
			log.Errorf("mcp, list exercises, user %d: %s", h.userID, err)
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListWorkouts(ctx, h.userID)
		if err != nil {
			log.Errorf("mcp, list workouts, user %d: %s", h.userID, err)
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}
