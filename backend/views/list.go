package views

import (
	"context"
	"sync"

	"eduadmin/backend/listing"
)

// ListView is the state behind a table screen: the fetched items, a search
// term, one dropdown filter and the current page.
type ListView[T any] struct {
	mu          sync.Mutex
	items       []T
	searchTerm  string
	filter      string
	currentPage int

	pageSize int
	fields   func(T) []string
	match    func(item T, filter string) bool
	notifier Notifier
}

// NewListView searches the strings fields returns and, when a filter is
// set, keeps the items match accepts. match may be nil.
func NewListView[T any](fields func(T) []string, match func(T, string) bool, n Notifier) *ListView[T] {
	return &ListView[T]{
		currentPage: 1,
		pageSize:    listing.DefaultPageSize,
		fields:      fields,
		match:       match,
		notifier:    n,
	}
}

// Load replaces the items with what fetch returns. Nothing is applied when
// ctx ends first. A failed fetch raises a toast and leaves the list empty.
func (v *ListView[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	items, err := fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.items = nil
		v.notifier.Error(Message(err))
		return err
	}
	v.items = items
	if last := listing.TotalPages(len(v.visibleLocked()), v.pageSize); v.currentPage > last && last > 0 {
		v.currentPage = last
	}
	return nil
}

func (v *ListView[T]) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTerm = term
	v.currentPage = 1
}

func (v *ListView[T]) SetFilter(filter string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = filter
	v.currentPage = 1
}

// SetPage moves to page, clamped to the available pages.
func (v *ListView[T]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	last := listing.TotalPages(len(v.visibleLocked()), v.pageSize)
	if page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	v.currentPage = page
}

func (v *ListView[T]) CurrentPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentPage
}

func (v *ListView[T]) visibleLocked() []T {
	items := listing.Filter(v.items, v.searchTerm, v.fields)
	if v.filter != "" && v.match != nil {
		items = listing.Where(items, func(it T) bool { return v.match(it, v.filter) })
	}
	return items
}

// Page is what the table renders.
func (v *ListView[T]) Page() listing.Page[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return listing.Paginate(v.visibleLocked(), v.currentPage, v.pageSize)
}

// Find returns the first loaded item keep accepts, ignoring search and
// filter.
func (v *ListView[T]) Find(keep func(T) bool) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, it := range v.items {
		if keep(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}
