package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerMoodsResource(srv, svc)
	registerCalendarTemplate(srv, svc)
}

func registerMoodsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"moodcal://moods",
		"Moods",
		mcp.WithResourceDescription("Every recorded mood, grouped by month."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		res, err := svc.ListMoods(ctx, "", "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, res)
	})
}

func registerCalendarTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"moodcal://calendar/{month}",
		"Calendar Month",
		mcp.WithTemplateDescription("The calendar grid of a month given as YYYY-MM."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month := templateArg(request.Params.Arguments["month"])
		grid, err := svc.Calendar(ctx, month)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, grid)
	})
}

// templateArg reads a URI template variable, which may arrive as a string or
// a single-element list.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
