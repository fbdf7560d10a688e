package plain

import "context"

const (
	// searchCandidates bounds the derived search.
	searchCandidates = 10
	// similarLimit bounds the candidate list in the final result.
	similarLimit = 5
)

// AnalyzeThreadPatterns finds threads similar to a reference thread by
// searching on its title and description. daysBack is accepted for
// schema compatibility but is not applied to any query predicate.
//
// An unknown reference id produces a typed not-found result, not an
// error; transport and application failures from the underlying calls
// propagate unchanged.
func (s *Service) AnalyzeThreadPatterns(ctx context.Context, threadID string, daysBack int) (map[string]any, error) {
	detail, err := s.GetThreadDetails(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if len(detail) == 0 {
		return map[string]any{"error": "Thread not found"}, nil
	}

	title, _ := detail["title"].(string)
	description, _ := detail["description"].(string)
	term := title + " " + description

	results, err := s.searchThreads(ctx, term, searchCandidates)
	if err != nil {
		return nil, err
	}

	// Self-match exclusion: the reference thread always matches its own
	// title, so drop it before ranking.
	candidates := []map[string]any{}
	for _, thread := range results {
		if id, _ := thread["id"].(string); id != threadID {
			candidates = append(candidates, thread)
		}
	}

	totalFound := len(candidates)
	if len(candidates) > similarLimit {
		candidates = candidates[:similarLimit]
	}

	return map[string]any{
		"reference_thread": map[string]any{
			"id":     detail["id"],
			"title":  detail["title"],
			"status": detail["status"],
		},
		"similar_threads": candidates,
		"analysis": map[string]any{
			"total_found":  totalFound,
			"search_terms": term,
		},
	}, nil
}
