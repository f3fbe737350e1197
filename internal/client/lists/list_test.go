package lists

import (
	"context"
	"errors"
	"testing"

	evbus "github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/stockdesk/internal/client/flow"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/validate"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// fakeFetch returns the queued results one by one.
type fakeFetch[T any] struct {
	results [][]T
	errs    []error
	calls   int
}

func (f *fakeFetch[T]) fetch(context.Context) ([]T, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return f.results[i], nil
}

func TestList_RefreshReplacesWholesale(t *testing.T) {
	f := &fakeFetch[models.Store]{results: [][]models.Store{
		{{ID: "s1"}, {ID: "s2"}},
		{{ID: "s3"}},
	}}
	l := New(models.KindStore, f.fetch, logging.NewNop())
	assert.False(t, l.Loaded())

	require.NoError(t, l.Refresh(context.Background()))
	assert.Len(t, l.Items(), 2)

	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, []models.Store{{ID: "s3"}}, l.Items())
	assert.True(t, l.Loaded())
}

func TestList_FailedRefreshKeepsPreviousAndMarksStale(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeFetch[models.Product]{
		results: [][]models.Product{{{ID: "p1"}}, nil, {{ID: "p2"}}},
		errs:    []error{nil, boom, nil},
	}
	l := New(models.KindProduct, f.fetch, logging.NewNop())

	require.NoError(t, l.Refresh(context.Background()))
	require.ErrorIs(t, l.Refresh(context.Background()), boom)

	assert.Equal(t, []models.Product{{ID: "p1"}}, l.Items())
	assert.ErrorIs(t, l.Stale(), boom)

	require.NoError(t, l.Refresh(context.Background()))
	assert.NoError(t, l.Stale())
	assert.Equal(t, "p2", l.Items()[0].ID)
}

func TestList_BindRefetchesOnInvalidate(t *testing.T) {
	f := &fakeFetch[models.Sale]{results: [][]models.Sale{{{ID: "a"}}, {{ID: "a"}, {ID: "b"}}}}
	l := New(models.KindSale, f.fetch, logging.NewNop())
	sig := flow.NewRefreshSignal(evbus.New(), models.KindSale)

	unbind, err := l.Bind(sig)
	require.NoError(t, err)

	sig.Invalidate(context.Background())
	assert.Len(t, l.Items(), 1)
	sig.Invalidate(context.Background())
	assert.Len(t, l.Items(), 2)

	unbind()
	sig.Invalidate(context.Background())
	assert.Equal(t, 2, f.calls)
}

func TestList_ItemsIsACopy(t *testing.T) {
	f := &fakeFetch[models.Store]{results: [][]models.Store{{{ID: "s1"}}}}
	l := New(models.KindStore, f.fetch, logging.NewNop())
	require.NoError(t, l.Refresh(context.Background()))

	items := l.Items()
	items[0].ID = "changed"
	assert.Equal(t, "s1", l.Items()[0].ID)

	l.Clear()
	assert.Empty(t, l.Items())
	assert.False(t, l.Loaded())
}

func TestCatalog_RefreshAndResolve(t *testing.T) {
	products := &fakeFetch[models.Product]{results: [][]models.Product{{{ID: "p1", Name: "Widget"}}}}
	stores := &fakeFetch[models.Store]{results: [][]models.Store{{{ID: "s1", Name: "Main"}}}}

	c := &Catalog{
		Products: New(models.KindProduct, products.fetch, logging.NewNop()),
		Stores:   New(models.KindStore, stores.fetch, logging.NewNop()),
	}
	require.NoError(t, c.Refresh(context.Background()))

	var refs validate.Refs = c
	assert.True(t, refs.HasProduct("p1"))
	assert.False(t, refs.HasProduct("p2"))
	assert.True(t, refs.HasStore("s1"))
	assert.False(t, refs.HasStore("s9"))

	p, ok := c.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Widget", p.Name)
}

func TestCatalog_RefreshReportsError(t *testing.T) {
	boom := errors.New("down")
	c := &Catalog{
		Products: New(models.KindProduct, (&fakeFetch[models.Product]{errs: []error{boom}}).fetch, logging.NewNop()),
		Stores:   New(models.KindStore, (&fakeFetch[models.Store]{results: [][]models.Store{{}}}).fetch, logging.NewNop()),
	}
	assert.ErrorIs(t, c.Refresh(context.Background()), boom)
	assert.ErrorIs(t, c.Products.Stale(), boom)
}
