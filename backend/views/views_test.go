package views_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"eduadmin/backend/client"
	"eduadmin/backend/session"
	"eduadmin/backend/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toasts struct {
	ok   []string
	errs []string
}

func (t *toasts) Success(msg string) { t.ok = append(t.ok, msg) }
func (t *toasts) Error(msg string)   { t.errs = append(t.errs, msg) }

type row struct {
	Name string
	Kind string
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		kind := "a"
		if i%2 == 1 {
			kind = "b"
		}
		out[i] = row{Name: fmt.Sprintf("item-%02d", i), Kind: kind}
	}
	return out
}

func newView(n views.Notifier) *views.ListView[row] {
	return views.NewListView(
		func(r row) []string { return []string{r.Name} },
		func(r row, kind string) bool { return r.Kind == kind },
		n,
	)
}

func load(items []row) func(context.Context) ([]row, error) {
	return func(context.Context) ([]row, error) { return items, nil }
}

func TestListViewPaging(t *testing.T) {
	v := newView(&toasts{})
	require.NoError(t, v.Load(context.Background(), load(rows(23))))

	p := v.Page()
	assert.Len(t, p.Items, 10)
	assert.Equal(t, 3, p.TotalPages)

	v.SetPage(3)
	assert.Len(t, v.Page().Items, 3)
	v.SetPage(9)
	assert.Equal(t, 3, v.CurrentPage())
}

func TestListViewSearchAndFilterResetPage(t *testing.T) {
	v := newView(&toasts{})
	require.NoError(t, v.Load(context.Background(), load(rows(23))))

	v.SetPage(2)
	v.SetSearchTerm("ITEM-1")
	assert.Equal(t, 1, v.CurrentPage())
	assert.Equal(t, 10, v.Page().Total)

	v.SetPage(2)
	v.SetFilter("b")
	assert.Equal(t, 1, v.CurrentPage())
	assert.Equal(t, 5, v.Page().Total)
}

func TestListViewFailedLoad(t *testing.T) {
	n := &toasts{}
	v := newView(n)
	require.NoError(t, v.Load(context.Background(), load(rows(3))))

	err := v.Load(context.Background(), func(context.Context) ([]row, error) {
		return nil, &client.APIError{Status: 500, Message: "db down"}
	})
	assert.Error(t, err)
	assert.Empty(t, v.Page().Items)
	assert.Equal(t, []string{"db down"}, n.errs)
}

func TestListViewIgnoresStaleResult(t *testing.T) {
	n := &toasts{}
	v := newView(n)
	require.NoError(t, v.Load(context.Background(), load(rows(3))))

	ctx, cancel := context.WithCancel(context.Background())
	err := v.Load(ctx, func(context.Context) ([]row, error) {
		cancel()
		return rows(20), nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, v.Page().Total)
	assert.Empty(t, n.errs)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Promocode already exists", views.Message(&client.APIError{Status: 409, Message: "Promocode already exists"}))
	assert.Equal(t, "Not authorized, please log in", views.Message(fmt.Errorf("load: %w", session.ErrNotAuthorized)))
	assert.Equal(t, "Something went wrong, please try again", views.Message(errors.New("dial tcp: refused")))
}

func TestSalaryRange(t *testing.T) {
	n := &toasts{}
	s := views.NewSalaryRange(n)

	require.True(t, s.SetMin(300000))
	require.True(t, s.SetMax(400000))

	assert.False(t, s.SetMax(290000))
	assert.Equal(t, 400000, s.To)
	assert.Equal(t, 300000, s.From)
	assert.Len(t, n.errs, 1)

	assert.False(t, s.SetMin(500000))
	assert.Equal(t, 300000, s.From)
	assert.Len(t, n.errs, 2)
}

func TestSalaryRangeRejectsMaxBelowMinWhenUnset(t *testing.T) {
	n := &toasts{}
	s := views.NewSalaryRange(n)
	require.True(t, s.SetMin(300000))

	assert.False(t, s.SetMax(290000))
	assert.Zero(t, s.To)
	assert.NotEmpty(t, n.errs)
}
