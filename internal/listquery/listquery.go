// Package listquery is the in-memory filter/search/paginate step every
// dashboard list runs after fetching a collection in full. It is pure and
// synchronous; the backend is never consulted.
package listquery

import "strings"

// Query describes one evaluation of a list screen.
type Query struct {
	// Term is matched case-insensitively as a substring of any of the
	// caller-specified text fields.
	Term string
	// StatusFilter, when non-empty, must equal the record's resolved status
	// name exactly.
	StatusFilter string
	Page         int
	PageSize     int
}

// Page is one visible slice of a filtered collection.
type Page[T any] struct {
	Items []T
	// Number is the page actually rendered after clamping.
	Number int
	// TotalPages is ceil(matches/pageSize); zero matches still render as a
	// single empty page with TotalPages 0.
	TotalPages int
}

// Apply filters records by status, then by search term over the given text
// fields, then slices out the requested page. Relative order is preserved,
// so concatenating pages 1..TotalPages reconstructs the filtered sequence.
func Apply[T any](records []T, q Query, fields func(T) []string, statusOf func(T) string) Page[T] {
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 1
	}

	matched := filter(records, q, fields, statusOf)

	totalPages := (len(matched) + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return Page[T]{
		Items:      matched[start:end],
		Number:     page,
		TotalPages: totalPages,
	}
}

func filter[T any](records []T, q Query, fields func(T) []string, statusOf func(T) string) []T {
	matched := records
	if q.StatusFilter != "" && statusOf != nil {
		matched = nil
		for _, r := range records {
			if statusOf(r) == q.StatusFilter {
				matched = append(matched, r)
			}
		}
	}

	term := strings.ToLower(strings.TrimSpace(q.Term))
	if term == "" || fields == nil {
		return matched
	}

	var out []T
	for _, r := range matched {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// State carries a screen's current query between evaluations and enforces
// the page-reset rules.
type State struct {
	term         string
	statusFilter string
	page         int
	pageSize     int
}

// NewState returns a State on page 1 with the given page size.
func NewState(pageSize int) *State {
	if pageSize < 1 {
		pageSize = 1
	}
	return &State{page: 1, pageSize: pageSize}
}

// SetTerm updates the search term. Any change resets the page to 1.
func (s *State) SetTerm(term string) {
	if s.term != term {
		s.page = 1
	}
	s.term = term
}

// SetStatusFilter updates the status filter. Any change resets the page to 1.
func (s *State) SetStatusFilter(name string) {
	if s.statusFilter != name {
		s.page = 1
	}
	s.statusFilter = name
}

// SetPage moves to the requested page. Requests outside [1, totalPages] are
// ignored and the current page is retained.
func (s *State) SetPage(page, totalPages int) {
	if page < 1 || page > totalPages {
		return
	}
	s.page = page
}

// Page returns the current page number.
func (s *State) Page() int { return s.page }

// Query materializes the current state for Apply.
func (s *State) Query() Query {
	return Query{
		Term:         s.term,
		StatusFilter: s.statusFilter,
		Page:         s.page,
		PageSize:     s.pageSize,
	}
}
