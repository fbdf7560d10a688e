package plain

import (
	"fmt"
	"strings"
)

// Thread status values accepted by the remote API.
const (
	StatusTodo    = "TODO"
	StatusDone    = "DONE"
	StatusSnoozed = "SNOOZED"
)

// ValidStatus reports whether s is one of the remote API's thread statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusDone || s == StatusSnoozed
}

// Document is one GraphQL operation ready to send: the query text plus the
// variable set referenced by it. Caller values are never interpolated into
// the text; they travel through Variables.
type Document struct {
	Query     string
	Variables map[string]any
}

// ThreadFilter holds the optional predicates of a thread listing. A zero
// Limit means the default of 10.
type ThreadFilter struct {
	Status          string
	AssigneeID      string
	CustomerID      string
	Limit           int
	IncludeResolved bool
}

const threadSelection = `id
                title
                description
                status
                statusChangedAt
                assignedToUser {
                    id
                    fullName
                }
                customer {
                    id
                    fullName
                    email {
                        email
                    }
                }
                createdAt
                updatedAt
                priority
                labels {
                    id
                    labelType {
                        name
                    }
                }`

// BuildThreadsQuery assembles the thread listing document. Each supplied
// predicate contributes one clause to the filter object, joined by ", ".
// Unless IncludeResolved is set, a literal open-or-snoozed clause is
// appended after any explicit status clause, so default listings never
// surface resolved threads. Both status clauses may be present at once.
func BuildThreadsQuery(f ThreadFilter) Document {
	limit := f.Limit
	if limit == 0 {
		limit = 10
	}

	vars := map[string]any{"first": limit}
	decls := []string{"$first: Int!"}
	var clauses []string

	if f.Status != "" {
		clauses = append(clauses, "status: $status")
		decls = append(decls, "$status: ThreadStatus!")
		vars["status"] = f.Status
	}
	if f.AssigneeID != "" {
		clauses = append(clauses, "assignedToUser: {userId: $assigneeId}")
		decls = append(decls, "$assigneeId: ID!")
		vars["assigneeId"] = f.AssigneeID
	}
	if f.CustomerID != "" {
		clauses = append(clauses, "customerId: $customerId")
		decls = append(decls, "$customerId: ID!")
		vars["customerId"] = f.CustomerID
	}
	if !f.IncludeResolved {
		clauses = append(clauses, "status: {isIn: [TODO, SNOOZED]}")
	}

	filters := ""
	if len(clauses) > 0 {
		filters = fmt.Sprintf("filters: {%s}, ", strings.Join(clauses, ", "))
	}

	query := fmt.Sprintf(`
        query GetThreads(%s) {
            threads(%sfirst: $first) {
                edges {
                    node {
                        %s
                    }
                }
                pageInfo {
                    hasNextPage
                    endCursor
                }
            }
        }`, strings.Join(decls, ", "), filters, threadSelection)

	return Document{Query: query, Variables: vars}
}

// BuildSearchQuery wraps the free-text term in a searchThreads document
// bounded to limit results.
func BuildSearchQuery(term string, limit int) Document {
	if limit == 0 {
		limit = 10
	}
	query := `
        query SearchThreads($term: String!, $first: Int!) {
            searchThreads(searchQuery: {term: $term}, first: $first) {
                edges {
                    node {
                        thread {
                            id
                            title
                            description
                            status
                            customer {
                                id
                                fullName
                                email {
                                    email
                                }
                            }
                            createdAt
                            updatedAt
                        }
                    }
                }
            }
        }`
	return Document{Query: query, Variables: map[string]any{"term": term, "first": limit}}
}

// BuildThreadDetailQuery requests one thread with its full selection and
// the first 20 timeline entries.
func BuildThreadDetailQuery(threadID string) Document {
	query := fmt.Sprintf(`
        query GetThreadDetails($threadId: ID!) {
            thread(threadId: $threadId) {
                %s
                timeline(first: 20) {
                    edges {
                        node {
                            id
                            timestamp
                            actor {
                                ... on UserActor {
                                    user {
                                        id
                                        fullName
                                    }
                                }
                                ... on CustomerActor {
                                    customer {
                                        id
                                        fullName
                                    }
                                }
                            }
                            ... on ThreadChatTimelineEntry {
                                chat {
                                    text
                                }
                            }
                            ... on ThreadNoteTimelineEntry {
                                note {
                                    text
                                }
                            }
                        }
                    }
                }
            }
        }`, threadSelection)
	return Document{Query: query, Variables: map[string]any{"threadId": threadID}}
}

// BuildUpdateStatusMutation builds the status transition mutation. The
// error payload is always requested so a validation failure comes back as
// data rather than a fault.
func BuildUpdateStatusMutation(threadID, status string) Document {
	query := `
        mutation UpdateThreadStatus($threadId: ID!, $status: ThreadStatus!) {
            updateThread(input: {threadId: $threadId, status: $status}) {
                thread {
                    id
                    status
                    statusChangedAt
                }
                error {
                    message
                    code
                }
            }
        }`
	return Document{Query: query, Variables: map[string]any{"threadId": threadID, "status": status}}
}

// BuildCreateNoteMutation builds the note creation mutation.
func BuildCreateNoteMutation(threadID, text string) Document {
	query := `
        mutation AddThreadNote($threadId: ID!, $text: String!) {
            createThreadNote(input: {threadId: $threadId, text: $text}) {
                threadNote {
                    id
                    text
                    createdAt
                }
                error {
                    message
                    code
                }
            }
        }`
	return Document{Query: query, Variables: map[string]any{"threadId": threadID, "text": text}}
}

// BuildCustomerQuery requests one customer record with company and the
// first 5 tenant memberships.
func BuildCustomerQuery(customerID string) Document {
	query := `
        query GetCustomer($customerId: ID!) {
            customer(customerId: $customerId) {
                id
                fullName
                email {
                    email
                    isVerified
                }
                company {
                    id
                    name
                    domainName
                }
                createdAt
                updatedAt
                tenantMemberships(first: 5) {
                    edges {
                        node {
                            tenant {
                                id
                                name
                            }
                        }
                    }
                }
            }
        }`
	return Document{Query: query, Variables: map[string]any{"customerId": customerID}}
}
