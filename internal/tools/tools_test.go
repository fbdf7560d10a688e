package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/plainmcp/plainmcp/internal/plain"
)

// fakeExec returns fixed data for every document and records the calls.
type fakeExec struct {
	data map[string]any
	err  error
	docs []plain.Document
}

func (f *fakeExec) Execute(ctx context.Context, doc plain.Document) (map[string]any, error) {
	f.docs = append(f.docs, doc)
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func newHandler(exec plain.Executor) *Handler {
	return NewHandler(plain.NewService(exec))
}

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestToolRegistry(t *testing.T) {
	expected := []string{
		"fetch_threads",
		"search_threads",
		"get_thread_details",
		"update_thread_status",
		"add_thread_note",
		"get_customer_info",
		"analyze_thread_patterns",
	}

	registered := make(map[string]bool)
	for _, st := range newHandler(&fakeExec{}).Tools() {
		registered[st.Tool.Name] = true
		if st.Handler == nil {
			t.Errorf("tool %s has no handler", st.Tool.Name)
		}
	}

	if len(registered) != len(expected) {
		t.Errorf("expected %d tools, got %d", len(expected), len(registered))
	}
	for _, name := range expected {
		if !registered[name] {
			t.Errorf("missing expected tool: %s", name)
		}
	}
}

func TestFetchThreadsHandler(t *testing.T) {
	exec := &fakeExec{data: map[string]any{
		"threads": map[string]any{
			"edges": []any{
				map[string]any{"node": map[string]any{"id": "th_1", "title": "Login broken"}},
			},
			"pageInfo": map[string]any{"hasNextPage": false},
		},
	}}
	h := newHandler(exec)

	res, err := h.handleFetchThreads(context.Background(), callReq("fetch_threads", map[string]any{
		"status": "TODO",
		"limit":  float64(5),
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	text := resultText(t, res)
	var decoded map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if decoded["hasMore"] != false {
		t.Errorf("expected hasMore false, got %v", decoded["hasMore"])
	}
	if !strings.Contains(text, "Login broken") {
		t.Errorf("result missing thread title: %s", text)
	}

	if len(exec.docs) != 1 {
		t.Fatalf("expected one query, got %d", len(exec.docs))
	}
	if exec.docs[0].Variables["first"] != 5 {
		t.Errorf("limit not threaded through: %v", exec.docs[0].Variables)
	}
}

func TestFetchThreadsHandlerRejectsBadStatus(t *testing.T) {
	h := newHandler(&fakeExec{})

	_, err := h.handleFetchThreads(context.Background(), callReq("fetch_threads", map[string]any{
		"status": "OPEN",
	}))
	if err == nil || !strings.Contains(err.Error(), "invalid status") {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}

func TestSearchThreadsHandlerRequiresQuery(t *testing.T) {
	h := newHandler(&fakeExec{})

	_, err := h.handleSearchThreads(context.Background(), callReq("search_threads", map[string]any{}))
	if err == nil {
		t.Fatal("expected error for missing query")
	}
}

func TestUpdateThreadStatusHandler(t *testing.T) {
	exec := &fakeExec{data: map[string]any{
		"updateThread": map[string]any{
			"thread": map[string]any{"id": "th_1", "status": "DONE"},
			"error":  nil,
		},
	}}
	h := newHandler(exec)

	res, err := h.handleUpdateThreadStatus(context.Background(), callReq("update_thread_status", map[string]any{
		"thread_id": "th_1",
		"status":    "DONE",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !strings.Contains(resultText(t, res), `"status": "DONE"`) {
		t.Errorf("unexpected result: %s", resultText(t, res))
	}
}

func TestUpdateThreadStatusHandlerBusinessError(t *testing.T) {
	exec := &fakeExec{data: map[string]any{
		"updateThread": map[string]any{
			"thread": nil,
			"error":  map[string]any{"message": "Invalid status", "code": "invalid"},
		},
	}}
	h := newHandler(exec)

	res, err := h.handleUpdateThreadStatus(context.Background(), callReq("update_thread_status", map[string]any{
		"thread_id": "th_1",
		"status":    "DONE",
	}))
	if err != nil {
		t.Fatalf("business errors must not become faults: %v", err)
	}
	if !strings.Contains(resultText(t, res), "Invalid status") {
		t.Errorf("error payload missing from result: %s", resultText(t, res))
	}
}

func TestHandlersPropagateTransportError(t *testing.T) {
	exec := &fakeExec{err: &plain.TransportError{Cause: context.DeadlineExceeded}}
	h := newHandler(exec)

	_, err := h.handleFetchThreads(context.Background(), callReq("fetch_threads", map[string]any{}))
	if err == nil || !strings.Contains(err.Error(), "HTTP error") {
		t.Fatalf("expected transport error to propagate, got %v", err)
	}

	_, err = h.handleGetThreadDetails(context.Background(), callReq("get_thread_details", map[string]any{
		"thread_id": "th_1",
	}))
	if err == nil || !strings.Contains(err.Error(), "HTTP error") {
		t.Fatalf("expected transport error to propagate, got %v", err)
	}
}

func TestAnalyzePatternsHandlerNotFound(t *testing.T) {
	exec := &fakeExec{data: map[string]any{"thread": nil}}
	h := newHandler(exec)

	res, err := h.handleAnalyzePatterns(context.Background(), callReq("analyze_thread_patterns", map[string]any{
		"thread_id": "th_missing",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if decoded["error"] != "Thread not found" {
		t.Errorf("expected not-found result, got %v", decoded)
	}
	if len(exec.docs) != 1 {
		t.Errorf("expected no search after missing reference, got %d calls", len(exec.docs))
	}
}

func TestAddThreadNoteHandlerRequiresContent(t *testing.T) {
	h := newHandler(&fakeExec{})

	_, err := h.handleAddThreadNote(context.Background(), callReq("add_thread_note", map[string]any{
		"thread_id": "th_1",
	}))
	if err == nil {
		t.Fatal("expected error for missing content")
	}
}

func TestGetCustomerInfoHandler(t *testing.T) {
	exec := &fakeExec{data: map[string]any{
		"customer": map[string]any{"id": "c_1", "fullName": "Ada Lovelace"},
	}}
	h := newHandler(exec)

	res, err := h.handleGetCustomerInfo(context.Background(), callReq("get_customer_info", map[string]any{
		"customer_id": "c_1",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !strings.Contains(resultText(t, res), "Ada Lovelace") {
		t.Errorf("unexpected result: %s", resultText(t, res))
	}
}
