// Package listing holds the search and pagination rules shared by every
// list screen and list endpoint.
package listing

import (
	"math"
	"strconv"
	"strings"
)

const DefaultPageSize = 10

// MaxPageSize caps page_size query values.
const MaxPageSize = 100

// Filter keeps the items where any of the fields contains term, ignoring
// case. A blank term keeps everything.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Where keeps the items matching keep. A nil predicate keeps everything.
func Where[T any](items []T, keep func(T) bool) []T {
	if keep == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

type Page[T any] struct {
	Items      []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// TotalPages is ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// Paginate slices out page (1-based). Pages before the first are treated as
// the first; pages past the last are empty.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	p := Page[T]{
		Total:      len(items),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(items), pageSize),
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		p.Items = []T{}
		return p
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}

// Params are the query values a list endpoint reads.
type Params struct {
	Search   string
	Page     int
	PageSize int
}

// ParseParams normalizes raw query values. Bad numbers fall back to defaults.
func ParseParams(search, page, pageSize string) Params {
	p := Params{Search: strings.TrimSpace(search), Page: 1, PageSize: DefaultPageSize}
	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(pageSize)); err == nil && n > 0 {
		p.PageSize = n
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}
