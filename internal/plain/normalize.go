package plain

// Page is one page of normalized list results. No cursor is retained;
// HasMore only reports that the remote had more to give.
type Page struct {
	Items   []map[string]any
	HasMore bool
}

// NormalizeConnection flattens the edges/node/pageInfo envelope under key
// into an ordered item list. Missing or malformed input at any nesting
// level yields an empty page, never an error.
func NormalizeConnection(data map[string]any, key string) Page {
	page := Page{Items: []map[string]any{}}

	conn, ok := data[key].(map[string]any)
	if !ok {
		return page
	}
	for _, edge := range edgeList(conn) {
		if node, ok := edge["node"].(map[string]any); ok {
			page.Items = append(page.Items, node)
		}
	}
	if pageInfo, ok := conn["pageInfo"].(map[string]any); ok {
		page.HasMore, _ = pageInfo["hasNextPage"].(bool)
	}
	return page
}

// NormalizeSearchConnection flattens searchThreads results, whose payload
// sits one level deeper than a plain connection (node.thread).
func NormalizeSearchConnection(data map[string]any) []map[string]any {
	items := []map[string]any{}

	conn, ok := data["searchThreads"].(map[string]any)
	if !ok {
		return items
	}
	for _, edge := range edgeList(conn) {
		node, ok := edge["node"].(map[string]any)
		if !ok {
			continue
		}
		if thread, ok := node["thread"].(map[string]any); ok {
			items = append(items, thread)
		}
	}
	return items
}

// NormalizeRecord returns the single keyed record verbatim, or an empty
// map when the key is absent or null.
func NormalizeRecord(data map[string]any, key string) map[string]any {
	if record, ok := data[key].(map[string]any); ok {
		return record
	}
	return map[string]any{}
}

// NormalizeMutation returns the nested mutation result verbatim. A
// populated "error" field inside it is data at this layer; the caller
// decides whether it is a user-visible failure.
func NormalizeMutation(data map[string]any, key string) map[string]any {
	return NormalizeRecord(data, key)
}

func edgeList(conn map[string]any) []map[string]any {
	raw, ok := conn["edges"].([]any)
	if !ok {
		return nil
	}
	edges := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if edge, ok := e.(map[string]any); ok {
			edges = append(edges, edge)
		}
	}
	return edges
}
