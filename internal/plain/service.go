package plain

import "context"

// Service implements the support operations: each one builds a document,
// executes it, and normalizes the reply into a JSON-serializable map.
type Service struct {
	exec Executor
}

// NewService creates a Service on top of the given executor, normally the
// shared *Client.
func NewService(exec Executor) *Service {
	return &Service{exec: exec}
}

// FetchThreads lists threads matching the filter.
func (s *Service) FetchThreads(ctx context.Context, f ThreadFilter) (map[string]any, error) {
	data, err := s.exec.Execute(ctx, BuildThreadsQuery(f))
	if err != nil {
		return nil, err
	}
	page := NormalizeConnection(data, "threads")
	return map[string]any{
		"threads": page.Items,
		"hasMore": page.HasMore,
	}, nil
}

// SearchThreads runs a free-text search over threads.
func (s *Service) SearchThreads(ctx context.Context, term string, limit int) (map[string]any, error) {
	results, err := s.searchThreads(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"results": results}, nil
}

func (s *Service) searchThreads(ctx context.Context, term string, limit int) ([]map[string]any, error) {
	data, err := s.exec.Execute(ctx, BuildSearchQuery(term, limit))
	if err != nil {
		return nil, err
	}
	return NormalizeSearchConnection(data), nil
}

// GetThreadDetails fetches one thread with its timeline. An unknown id
// yields an empty map, not an error.
func (s *Service) GetThreadDetails(ctx context.Context, threadID string) (map[string]any, error) {
	data, err := s.exec.Execute(ctx, BuildThreadDetailQuery(threadID))
	if err != nil {
		return nil, err
	}
	return NormalizeRecord(data, "thread"), nil
}

// UpdateThreadStatus transitions a thread to the given status. The result
// is returned verbatim; a populated "error" field means the remote
// rejected the transition, which is not a fault at this layer.
func (s *Service) UpdateThreadStatus(ctx context.Context, threadID, status string) (map[string]any, error) {
	data, err := s.exec.Execute(ctx, BuildUpdateStatusMutation(threadID, status))
	if err != nil {
		return nil, err
	}
	return NormalizeMutation(data, "updateThread"), nil
}

// AddThreadNote attaches a note to a thread.
func (s *Service) AddThreadNote(ctx context.Context, threadID, content string) (map[string]any, error) {
	data, err := s.exec.Execute(ctx, BuildCreateNoteMutation(threadID, content))
	if err != nil {
		return nil, err
	}
	return NormalizeMutation(data, "createThreadNote"), nil
}

// GetCustomerInfo fetches one customer record.
func (s *Service) GetCustomerInfo(ctx context.Context, customerID string) (map[string]any, error) {
	data, err := s.exec.Execute(ctx, BuildCustomerQuery(customerID))
	if err != nil {
		return nil, err
	}
	return NormalizeRecord(data, "customer"), nil
}
