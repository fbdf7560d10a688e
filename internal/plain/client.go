// Package plain talks to the Plain.com GraphQL API. It builds the query
// and mutation documents used by the support tools, executes them over a
// single authenticated HTTP client, and flattens the paginated responses
// into plain maps and slices.
package plain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Executor runs one GraphQL document against the remote API.
type Executor interface {
	Execute(ctx context.Context, doc Document) (map[string]any, error)
}

// Client is the HTTP transport for the Plain.com GraphQL endpoint.
// One instance is shared by all tool invocations; the underlying
// *http.Client is safe for concurrent use.
type Client struct {
	endpoint  string
	apiKey    string
	http      *http.Client
	closeOnce sync.Once
}

// NewClient creates a client for the given endpoint, authenticating every
// request with the API key as a bearer token.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   map[string]any   `json:"data"`
	Errors []map[string]any `json:"errors"`
}

// Execute posts the document and returns the "data" section of the reply.
// Connection failures, timeouts, non-2xx statuses and undecodable bodies
// become a *TransportError. A non-empty "errors" array becomes an
// *ApplicationError even when partial data is present. Neither is retried.
func (c *Client) Execute(ctx context.Context, doc Document) (map[string]any, error) {
	vars := doc.Variables
	if vars == nil {
		vars = map[string]any{}
	}

	body, err := json.Marshal(graphqlRequest{Query: doc.Query, Variables: vars})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &TransportError{Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var decoded graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &TransportError{Cause: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(decoded.Errors) > 0 {
		messages := make([]string, 0, len(decoded.Errors))
		for _, ge := range decoded.Errors {
			if msg, ok := ge["message"].(string); ok {
				messages = append(messages, msg)
			} else {
				messages = append(messages, fmt.Sprintf("%v", ge))
			}
		}
		return nil, &ApplicationError{Messages: messages}
	}

	if decoded.Data == nil {
		return map[string]any{}, nil
	}
	return decoded.Data, nil
}

// Close releases the client's idle connections. Safe to call more than
// once; calls after the first are no-ops.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.http.CloseIdleConnections()
	})
}
