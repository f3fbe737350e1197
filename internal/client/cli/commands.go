package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stockdesk/internal/client/draft"
	"github.com/dmitrijs2005/stockdesk/internal/client/flow"
	"github.com/dmitrijs2005/stockdesk/internal/client/lists"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
)

func (a *App) AddProduct(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	m := flow.NewModal(inv.ProductCreate(), a.notifier(), a.log)
	return runForm(ctx, a, m, inv.NewDraft(models.KindProduct), nil)
}

func (a *App) EditProduct(ctx context.Context, id string) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	p, ok := findLoaded(ctx, inv.Products, func(p models.Product) bool { return p.ID == id })
	if !ok {
		fmt.Fprintf(a.out, "No product with id %s\n", id)
		return nil
	}
	m := flow.NewModal(inv.ProductEdit(id), a.notifier(), a.log)
	return runForm(ctx, a, m, draft.FromProduct(p, inv.Session().UserID), nil)
}

func (a *App) DeleteProduct(ctx context.Context, id string) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	// the flow reports its own failures
	_, _ = inv.DeleteProduct(id).Run(ctx, a.notifier(), a.log)
	return nil
}

func (a *App) AddPurchase(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	a.ensureCatalog(ctx, inv)
	m := flow.NewModal(inv.PurchaseCreate(), a.notifier(), a.log)
	return runForm(ctx, a, m, inv.NewDraft(models.KindPurchase), inv.Catalog)
}

func (a *App) AddSale(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	a.ensureCatalog(ctx, inv)
	m := flow.NewModal(inv.SaleCreate(), a.notifier(), a.log)
	return runForm(ctx, a, m, inv.NewDraft(models.KindSale), inv.Catalog)
}

func (a *App) AddStore(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	m := flow.NewModal(inv.StoreCreate(), a.notifier(), a.log)
	return runForm(ctx, a, m, inv.NewDraft(models.KindStore), nil)
}

func (a *App) EditStore(ctx context.Context, id string) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	s, ok := findLoaded(ctx, inv.Stores, func(s models.Store) bool { return s.ID == id })
	if !ok {
		fmt.Fprintf(a.out, "No store with id %s\n", id)
		return nil
	}
	m := flow.NewModal(inv.StoreEdit(id), a.notifier(), a.log)
	return runForm(ctx, a, m, draft.FromStore(s, inv.Session().UserID), nil)
}

func (a *App) DeleteStore(ctx context.Context, id string) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	// the flow reports its own failures
	_, _ = inv.DeleteStore(id).Run(ctx, a.notifier(), a.log)
	return nil
}

// Refresh re-fetches every list of the session.
func (a *App) Refresh(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	if err := inv.RefreshAll(ctx); err != nil {
		fmt.Fprintln(a.out, "! Refresh failed; showing the last loaded data.")
		return nil
	}
	fmt.Fprintln(a.out, "Refreshed")
	return nil
}

// ensureCatalog loads products and stores for reference prompts when they
// have not been loaded yet. Failures leave the lists stale.
func (a *App) ensureCatalog(ctx context.Context, inv *services.Inventory) {
	if inv.Products.Loaded() && inv.Stores.Loaded() {
		return
	}
	if err := inv.Catalog.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "! Products or stores could not be loaded; choices may be incomplete.")
	}
}

// findLoaded looks an item up, fetching the list first if it was never
// loaded.
func findLoaded[T any](ctx context.Context, l *lists.List[T], match func(T) bool) (T, bool) {
	if !l.Loaded() {
		_ = l.Refresh(ctx)
	}
	return l.Find(match)
}
