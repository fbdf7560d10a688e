// Package tools exposes the Plain.com support operations as MCP tools.
// Each tool maps a name and JSON argument schema onto one Service
// operation; handlers return pretty-printed JSON text blocks.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/plainmcp/plainmcp/internal/plain"
)

// Handler binds the tool handlers to the shared Plain.com service.
type Handler struct {
	svc *plain.Service
}

// NewHandler creates a Handler for the given service.
func NewHandler(svc *plain.Service) *Handler {
	return &Handler{svc: svc}
}

// Register adds all support tools to the MCP server.
func Register(s *server.MCPServer, svc *plain.Service) {
	s.AddTools(NewHandler(svc).Tools()...)
}

// Tools returns the tool definitions paired with their handlers.
func (h *Handler) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("fetch_threads",
				mcp.WithDescription("Fetch support threads (tickets) with optional filters"),
				mcp.WithString("status",
					mcp.Description("Filter by thread status"),
					mcp.Enum(plain.StatusTodo, plain.StatusDone, plain.StatusSnoozed),
				),
				mcp.WithString("assignee_id", mcp.Description("Filter by assigned user ID")),
				mcp.WithString("customer_id", mcp.Description("Filter by customer ID")),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of threads to return"),
					mcp.DefaultNumber(10),
				),
				mcp.WithBoolean("include_resolved",
					mcp.Description("Include resolved/done threads"),
					mcp.DefaultBool(false),
				),
			),
			Handler: h.handleFetchThreads,
		},
		{
			Tool: mcp.NewTool("search_threads",
				mcp.WithDescription("Search through support threads using text search"),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query for thread content")),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of results"),
					mcp.DefaultNumber(10),
				),
			),
			Handler: h.handleSearchThreads,
		},
		{
			Tool: mcp.NewTool("get_thread_details",
				mcp.WithDescription("Get detailed information about a specific thread including timeline"),
				mcp.WithString("thread_id", mcp.Required(), mcp.Description("Thread ID to get details for")),
			),
			Handler: h.handleGetThreadDetails,
		},
		{
			Tool: mcp.NewTool("update_thread_status",
				mcp.WithDescription("Update the status of a support thread"),
				mcp.WithString("thread_id", mcp.Required(), mcp.Description("Thread ID to update")),
				mcp.WithString("status",
					mcp.Required(),
					mcp.Description("New status for the thread"),
					mcp.Enum(plain.StatusTodo, plain.StatusDone, plain.StatusSnoozed),
				),
			),
			Handler: h.handleUpdateThreadStatus,
		},
		{
			Tool: mcp.NewTool("add_thread_note",
				mcp.WithDescription("Add a note to a support thread"),
				mcp.WithString("thread_id", mcp.Required(), mcp.Description("Thread ID to add note to")),
				mcp.WithString("content", mcp.Required(), mcp.Description("Note content")),
			),
			Handler: h.handleAddThreadNote,
		},
		{
			Tool: mcp.NewTool("get_customer_info",
				mcp.WithDescription("Get detailed information about a customer"),
				mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID to get info for")),
			),
			Handler: h.handleGetCustomerInfo,
		},
		{
			Tool: mcp.NewTool("analyze_thread_patterns",
				mcp.WithDescription("Analyze patterns in threads to find similar issues"),
				mcp.WithString("thread_id", mcp.Required(), mcp.Description("Reference thread ID to find similar issues")),
				mcp.WithNumber("days_back",
					mcp.Description("Number of days to look back"),
					mcp.DefaultNumber(30),
				),
			),
			Handler: h.handleAnalyzePatterns,
		},
	}
}
