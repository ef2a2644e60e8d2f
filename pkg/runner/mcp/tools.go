package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var moodNames = []string{"happy", "neutral", "sad", "angry"}

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetCalendarTool(srv, svc)
	registerRecordMoodTool(srv, svc)
	registerGetMoodTool(srv, svc)
	registerListMoodsTool(srv, svc)
	registerGetSummaryTool(srv, svc)
}

func registerGetCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_calendar",
		mcp.WithDescription("Get the calendar grid for a month: leading blank cells, then one cell per day with its mood, journal/event markers and whether it accepts a mood."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month, clamped to the entry window."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		grid, err := svc.Calendar(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(grid)
	})
}

func registerRecordMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"record_mood",
		mcp.WithDescription("Record the mood for a day, replacing any earlier mood for that day. Days outside the entry window are rejected."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood to record."),
			mcp.Enum(moodNames...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
			Mood string `json:"mood"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.RecordMood(ctx, args.Date, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_mood",
		mcp.WithDescription("Fetch the mood recorded for a single day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.GetMood(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListMoodsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List recorded moods grouped by month."),
		mcp.WithString("since",
			mcp.Description("Optional first day (YYYY-MM-DD), inclusive."),
		),
		mcp.WithString("until",
			mcp.Description("Optional last day (YYYY-MM-DD), inclusive."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := svc.ListMoods(ctx, request.GetString("since", ""), request.GetString("until", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerGetSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_summary",
		mcp.WithDescription("Count the days of a month per mood, plus days without data."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month, clamped to the entry window."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s, err := svc.Summary(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(s)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
