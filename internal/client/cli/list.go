package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/stockdesk/internal/client/lists"
)

const msgStale = "! Data may be out of date:"

// refreshView re-fetches l as a view does when it is shown. A failed fetch
// keeps the previous rows and prints a banner.
func refreshView[T any](ctx context.Context, w io.Writer, l *lists.List[T]) {
	_ = l.Refresh(ctx)
	if err := l.Stale(); err != nil {
		fmt.Fprintln(w, msgStale, userMessage(err))
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func (a *App) Products(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	refreshView(ctx, a.out, inv.Products)

	items := inv.Products.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products")
		return nil
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tDESCRIPTION")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Description)
	}
	return tw.Flush()
}

func (a *App) Purchases(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	refreshView(ctx, a.out, inv.Purchases)

	items := inv.Purchases.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No purchases")
		return nil
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "DATE\tPRODUCT\tQUANTITY\tTOTAL")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.PurchaseDate, productName(inv.Catalog, p.ProductID), p.QuantityPurchased, p.TotalPurchaseAmount.StringFixed(2))
	}
	return tw.Flush()
}

func (a *App) Sales(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	refreshView(ctx, a.out, inv.Sales)

	items := inv.Sales.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No sales")
		return nil
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "DATE\tPRODUCT\tSTORE\tSOLD")
	for _, s := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.SaleDate, productName(inv.Catalog, s.ProductID), storeName(inv.Catalog, s.StoreID), s.StockSold)
	}
	return tw.Flush()
}

func (a *App) Stores(ctx context.Context) error {
	inv, err := a.inventory()
	if err != nil {
		return err
	}
	refreshView(ctx, a.out, inv.Stores)

	items := inv.Stores.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No stores")
		return nil
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tADDRESS\tCITY")
	for _, s := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.Address, s.City)
	}
	return tw.Flush()
}

func productName(c *lists.Catalog, id string) string {
	if p, ok := c.Product(id); ok {
		return p.Name
	}
	return id
}

func storeName(c *lists.Catalog, id string) string {
	if s, ok := c.Store(id); ok {
		return s.Name
	}
	return id
}
