package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/plainmcp/plainmcp/internal/plain"
)

// textResult renders a tool result as a pretty-printed JSON text block.
func textResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (h *Handler) handleFetchThreads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := plain.ThreadFilter{
		Status:          req.GetString("status", ""),
		AssigneeID:      req.GetString("assignee_id", ""),
		CustomerID:      req.GetString("customer_id", ""),
		Limit:           req.GetInt("limit", 10),
		IncludeResolved: req.GetBool("include_resolved", false),
	}
	if filter.Status != "" && !plain.ValidStatus(filter.Status) {
		return nil, fmt.Errorf("invalid status: %s", filter.Status)
	}

	result, err := h.svc.FetchThreads(ctx, filter)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}

func (h *Handler) handleSearchThreads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return nil, err
	}
	limit := req.GetInt("limit", 10)

	result, err := h.svc.SearchThreads(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}

func (h *Handler) handleGetThreadDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := req.RequireString("thread_id")
	if err != nil {
		return nil, err
	}

	result, err := h.svc.GetThreadDetails(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}

func (h *Handler) handleUpdateThreadStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := req.RequireString("thread_id")
	if err != nil {
		return nil, err
	}
	status, err := req.RequireString("status")
	if err != nil {
		return nil, err
	}
	if !plain.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	result, err := h.svc.UpdateThreadStatus(ctx, threadID, status)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}

func (h *Handler) handleAddThreadNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := req.RequireString("thread_id")
	if err != nil {
		return nil, err
	}
	content, err := req.RequireString("content")
	if err != nil {
		return nil, err
	}

	result, err := h.svc.AddThreadNote(ctx, threadID, content)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}

func (h *Handler) handleGetCustomerInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := req.RequireString("customer_id")
	if err != nil {
		return nil, err
	}

	result, err := h.svc.GetCustomerInfo(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}

func (h *Handler) handleAnalyzePatterns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := req.RequireString("thread_id")
	if err != nil {
		return nil, err
	}
	daysBack := req.GetInt("days_back", 30)

	result, err := h.svc.AnalyzeThreadPatterns(ctx, threadID, daysBack)
	if err != nil {
		return nil, err
	}
	return textResult(result)
}
