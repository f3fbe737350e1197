package lists

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// Catalog is the reference data used to resolve product and store ids in
// purchase and sale drafts.
type Catalog struct {
	Products *List[models.Product]
	Stores   *List[models.Store]
}

// Refresh fetches products and stores concurrently.
func (c *Catalog) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.Products.Refresh(ctx) })
	g.Go(func() error { return c.Stores.Refresh(ctx) })
	return g.Wait()
}

func (c *Catalog) HasProduct(id string) bool {
	_, ok := c.Product(id)
	return ok
}

func (c *Catalog) HasStore(id string) bool {
	_, ok := c.Store(id)
	return ok
}

func (c *Catalog) Product(id string) (models.Product, bool) {
	return c.Products.Find(func(p models.Product) bool { return p.ID == id })
}

func (c *Catalog) Store(id string) (models.Store, bool) {
	return c.Stores.Find(func(s models.Store) bool { return s.ID == id })
}
