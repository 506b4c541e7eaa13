// Package pagination turns page/limit input into bounded store queries.
//
// Count and Find run as two independent statements, not inside one snapshot.
// A concurrent insert between them can make Total disagree with the page
// contents by a few rows; callers accept this rather than serializing reads.
package pagination

import (
	"context"
	"fmt"
	"math"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query is the pair of store operations a paginated view needs.
// Both must apply the same logical filter and Find must apply a stable order.
type Query[T any] interface {
	Count(ctx context.Context) (int64, error)
	Find(ctx context.Context, skip, take int) ([]T, error)
}

// QueryFuncs adapts two closures to Query
type QueryFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int64, error)
	FindFunc  func(ctx context.Context, skip, take int) ([]T, error)
}

func (q QueryFuncs[T]) Count(ctx context.Context) (int64, error) {
	return q.CountFunc(ctx)
}

func (q QueryFuncs[T]) Find(ctx context.Context, skip, take int) ([]T, error) {
	return q.FindFunc(ctx, skip, take)
}

// Pagination is the metadata block of a paginated response
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Page is a paginated response envelope
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Clamp normalizes raw input: page >= 1, 1 <= limit <= MaxLimit.
// A non-positive limit falls back to defaultLimit.
func Clamp(page, limit, defaultLimit int) (int, int) {
	if defaultLimit <= 0 || defaultLimit > MaxLimit {
		defaultLimit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate runs the count and the bounded find. page and limit must already be clamped.
func Paginate[T any](ctx context.Context, q Query[T], page, limit int) (*Page[T], error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("invalid pagination page=%d limit=%d", page, limit)
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	data := []T{}
	// Pages past the end skip the find entirely. A page whose offset does not
	// fit in an int is past any end.
	if page-1 <= math.MaxInt/limit && int64((page-1)*limit) < total {
		skip := (page - 1) * limit
		found, err := q.Find(ctx, skip, limit)
		if err != nil {
			return nil, fmt.Errorf("find: %w", err)
		}
		if found != nil {
			data = found
		}
	}

	return New(data, page, limit, total), nil
}

// New builds a Page from already fetched data
func New[T any](data []T, page, limit int, total int64) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		Data: data,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: Pages(total, limit),
		},
	}
}

// Pages returns ceil(total/limit)
func Pages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
