package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"task-tracker.com/task-tracker/internal/query"
)

// ValidLimits are the page sizes a client may ask for.
var ValidLimits = []int{5, 10, 20, 50}

const DefaultLimit = 10

// Counter counts the records matching a predicate.
type Counter interface {
	Count(ctx context.Context, where query.Predicate) (int64, error)
}

// Store is the read side of a collection.
type Store[T any] interface {
	Counter
	Find(ctx context.Context, where query.Predicate, opts query.FindOptions) ([]T, error)
}

// PageRequest carries the raw paging inputs of a request. All returns every
// match and is meant for exports.
type PageRequest struct {
	Sort  string
	Page  string
	Limit string
	All   bool
}

type Pagination struct {
	Page         int   `json:"page"`
	PagesCount   int   `json:"pagesCount"`
	ResultsCount int64 `json:"resultsCount"`
	Limit        int   `json:"limit"`
}

// ValidateLimit resolves anything outside ValidLimits to DefaultLimit.
func ValidateLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !slices.Contains(ValidLimits, n) {
		return DefaultLimit
	}
	return n
}

// ValidatePage parses raw and sends a page past the last one back to the
// first, so a stale link never shows an empty listing.
func ValidatePage(raw string, pagesCount int) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	if page > pagesCount && pagesCount > 0 {
		return 1
	}
	return page
}

// Paginate counts the matches of where, then reads the requested page.
func Paginate[T any](ctx context.Context, store Store[T], where query.Predicate, req PageRequest) ([]T, Pagination, error) {
	limit := ValidateLimit(req.Limit)

	total, err := store.Count(ctx, where)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("count records: %w", err)
	}

	pagesCount := int((total + int64(limit) - 1) / int64(limit))
	page := ValidatePage(req.Page, pagesCount)

	var opts query.FindOptions
	if sort, ok := query.ParseSort(req.Sort); ok {
		opts.Sort = &sort
	}
	if !req.All {
		opts.Offset = (page - 1) * limit
		opts.Limit = limit
	}

	records, err := store.Find(ctx, where, opts)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("find records: %w", err)
	}

	return records, Pagination{
		Page:         page,
		PagesCount:   pagesCount,
		ResultsCount: total,
		Limit:        limit,
	}, nil
}
