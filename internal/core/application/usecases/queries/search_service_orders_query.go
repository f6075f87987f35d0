package queries

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrSearchServiceOrdersQueryIsNotConstructed = errors.New(
	"SearchServiceOrdersQuery must be created via NewSearchServiceOrdersQuery constructor",
)

// SearchServiceOrdersQuery performs a free-text search over active service
// orders. The text is matched against the order number, the equipment
// description, the intake notes and the customer's names.
type SearchServiceOrdersQuery struct {
	guard guard.ConstructorGuard

	text  string
	page  int
	limit int
}

// NewSearchServiceOrdersQuery creates a search query. The search text must
// be at least two characters long after trimming; pagination follows the
// same rules as the listing query.
func NewSearchServiceOrdersQuery(text string, page, limit int) (SearchServiceOrdersQuery, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SearchServiceOrdersQuery{}, errs.NewValueIsRequiredError("text")
	}
	if len([]rune(text)) < 2 {
		return SearchServiceOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"text",
			fmt.Errorf("%q is shorter than 2 characters", text),
		)
	}
	if page < 1 {
		return SearchServiceOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"page",
			fmt.Errorf("%d is not greater than 0", page),
		)
	}
	if limit < listMinLimit || limit > listMaxLimit {
		return SearchServiceOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, listMinLimit, listMaxLimit,
		)
	}

	return SearchServiceOrdersQuery{
		guard: guard.NewConstructorGuard(),
		text:  text,
		page:  page,
		limit: limit,
	}, nil
}

// Text returns the trimmed search text.
func (q SearchServiceOrdersQuery) Text() string {
	return q.text
}

// Page returns the one-based page number.
func (q SearchServiceOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q SearchServiceOrdersQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q SearchServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchServiceOrdersQueryIsNotConstructed)
}
