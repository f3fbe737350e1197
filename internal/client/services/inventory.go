package services

import (
	"context"

	evbus "github.com/asaskevich/EventBus"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/draft"
	"github.com/dmitrijs2005/stockdesk/internal/client/flow"
	"github.com/dmitrijs2005/stockdesk/internal/client/lists"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/validate"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// User-facing notices of the inventory flows.
const (
	NoticeProductAdded   = "Product added successfully"
	NoticeProductUpdated = "Product updated successfully"
	NoticeProductDeleted = "Product deleted successfully"
	NoticePurchaseAdded  = "Purchase added successfully!"
	NoticeSaleAdded      = "Sale added successfully"
	NoticeStoreAdded     = "Store added successfully"
	NoticeStoreUpdated   = "Store updated successfully"
	NoticeStoreDeleted   = "Store deleted successfully"

	FailAddProduct    = "Failed to add product, please try again."
	FailUpdateProduct = "Failed to update product, please try again."
	FailDeleteProduct = "Failed to delete product"
	FailAddPurchase   = "Failed to add purchase."
	FailAddSale       = "Failed to add sale, please try again."
	FailAddStore      = "Failed to add store, please try again."
	FailUpdateStore   = "Failed to update store, please try again"
	FailDeleteStore   = "Failed to delete store"

	ConfirmDeleteProduct = "Are you sure you want to delete this product?"
	ConfirmDeleteStore   = "Are you sure you want to delete this store?"
)

// Inventory binds the four entity resources of one session: their lists,
// refresh signals and form descriptors.
type Inventory struct {
	client  client.Client
	session Session
	log     logging.Logger

	signals map[models.Kind]*flow.RefreshSignal
	unbind  []func()

	Products  *lists.List[models.Product]
	Purchases *lists.List[models.Purchase]
	Sales     *lists.List[models.Sale]
	Stores    *lists.List[models.Store]
	Catalog   *lists.Catalog
}

// NewInventory wires lists to their refresh signals. Purchases and sales
// change product stock, so their signals also refresh the product list.
func NewInventory(c client.Client, s Session, log logging.Logger) (*Inventory, error) {
	if !s.Valid() {
		return nil, ErrNotLoggedIn
	}

	bus := evbus.New()
	inv := &Inventory{
		client:  c,
		session: s,
		log:     log,
		signals: make(map[models.Kind]*flow.RefreshSignal, 4),
	}
	for _, k := range []models.Kind{models.KindProduct, models.KindPurchase, models.KindSale, models.KindStore} {
		inv.signals[k] = flow.NewRefreshSignal(bus, k)
	}

	uid := s.UserID
	inv.Products = lists.New(models.KindProduct, func(ctx context.Context) ([]models.Product, error) {
		return c.Products(ctx, uid)
	}, log)
	inv.Purchases = lists.New(models.KindPurchase, func(ctx context.Context) ([]models.Purchase, error) {
		return c.Purchases(ctx, uid)
	}, log)
	inv.Sales = lists.New(models.KindSale, func(ctx context.Context) ([]models.Sale, error) {
		return c.Sales(ctx, uid)
	}, log)
	inv.Stores = lists.New(models.KindStore, func(ctx context.Context) ([]models.Store, error) {
		return c.Stores(ctx, uid)
	}, log)
	inv.Catalog = &lists.Catalog{Products: inv.Products, Stores: inv.Stores}

	bindings := []struct {
		kind models.Kind
		bind func(*flow.RefreshSignal) (func(), error)
	}{
		{models.KindProduct, inv.Products.Bind},
		{models.KindPurchase, inv.Purchases.Bind},
		{models.KindPurchase, inv.Products.Bind},
		{models.KindSale, inv.Sales.Bind},
		{models.KindSale, inv.Products.Bind},
		{models.KindStore, inv.Stores.Bind},
	}
	for _, b := range bindings {
		unbind, err := b.bind(inv.signals[b.kind])
		if err != nil {
			inv.Close()
			return nil, err
		}
		inv.unbind = append(inv.unbind, unbind)
	}
	return inv, nil
}

// Close detaches the lists from their signals.
func (inv *Inventory) Close() {
	for _, u := range inv.unbind {
		u()
	}
	inv.unbind = nil
}

func (inv *Inventory) Session() Session { return inv.session }

// Signal returns the refresh signal of kind.
func (inv *Inventory) Signal(kind models.Kind) *flow.RefreshSignal {
	return inv.signals[kind]
}

// RefreshAll re-fetches every list. All lists are attempted; the first
// error is returned.
func (inv *Inventory) RefreshAll(ctx context.Context) error {
	var first error
	for _, refresh := range []func(context.Context) error{
		inv.Products.Refresh, inv.Purchases.Refresh, inv.Sales.Refresh, inv.Stores.Refresh,
	} {
		if err := refresh(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewDraft returns an empty create draft of kind owned by the session user.
func (inv *Inventory) NewDraft(kind models.Kind) *draft.Draft {
	switch kind {
	case models.KindProduct:
		return draft.New(draft.ProductSchema, inv.session.UserID)
	case models.KindPurchase:
		return draft.New(draft.PurchaseSchema, inv.session.UserID)
	case models.KindSale:
		return draft.New(draft.SaleSchema, inv.session.UserID)
	default:
		return draft.New(draft.StoreSchema, inv.session.UserID)
	}
}

func encode[T any](d *draft.Draft) (T, error) {
	var in T
	err := draft.Decode(d, &in)
	return in, err
}

func (inv *Inventory) ProductCreate() flow.Descriptor[models.ProductInput] {
	return flow.Descriptor[models.ProductInput]{
		Kind:           models.KindProduct,
		Mode:           flow.ModeCreate,
		Validate:       validate.Product,
		Encode:         encode[models.ProductInput],
		Send:           inv.client.AddProduct,
		Signal:         inv.signals[models.KindProduct],
		SuccessNotice:  NoticeProductAdded,
		FailureMessage: FailAddProduct,
	}
}

func (inv *Inventory) ProductEdit(id string) flow.Descriptor[models.ProductInput] {
	return flow.Descriptor[models.ProductInput]{
		Kind:     models.KindProduct,
		Mode:     flow.ModeEdit,
		Validate: validate.Product,
		Encode:   encode[models.ProductInput],
		Send: func(ctx context.Context, in models.ProductInput) error {
			return inv.client.UpdateProduct(ctx, id, in)
		},
		Signal:         inv.signals[models.KindProduct],
		SuccessNotice:  NoticeProductUpdated,
		FailureMessage: FailUpdateProduct,
	}
}

// PurchaseCreate surfaces the API's own error message on failure.
func (inv *Inventory) PurchaseCreate() flow.Descriptor[models.PurchaseInput] {
	return flow.Descriptor[models.PurchaseInput]{
		Kind:              models.KindPurchase,
		Mode:              flow.ModeCreate,
		Validate:          validate.Purchase,
		Refs:              inv.Catalog,
		Encode:            encode[models.PurchaseInput],
		Send:              inv.client.AddPurchase,
		Signal:            inv.signals[models.KindPurchase],
		SuccessNotice:     NoticePurchaseAdded,
		FailureMessage:    FailAddPurchase,
		SurfaceAPIMessage: true,
	}
}

func (inv *Inventory) SaleCreate() flow.Descriptor[models.SaleInput] {
	return flow.Descriptor[models.SaleInput]{
		Kind:           models.KindSale,
		Mode:           flow.ModeCreate,
		Validate:       validate.Sale,
		Refs:           inv.Catalog,
		Encode:         encode[models.SaleInput],
		Send:           inv.client.AddSale,
		Signal:         inv.signals[models.KindSale],
		SuccessNotice:  NoticeSaleAdded,
		FailureMessage: FailAddSale,
	}
}

func (inv *Inventory) StoreCreate() flow.Descriptor[models.StoreInput] {
	return flow.Descriptor[models.StoreInput]{
		Kind:           models.KindStore,
		Mode:           flow.ModeCreate,
		Validate:       validate.Store,
		Encode:         encode[models.StoreInput],
		Send:           inv.client.AddStore,
		Signal:         inv.signals[models.KindStore],
		SuccessNotice:  NoticeStoreAdded,
		FailureMessage: FailAddStore,
	}
}

func (inv *Inventory) StoreEdit(id string) flow.Descriptor[models.StoreInput] {
	return flow.Descriptor[models.StoreInput]{
		Kind:     models.KindStore,
		Mode:     flow.ModeEdit,
		Validate: validate.Store,
		Encode:   encode[models.StoreInput],
		Send: func(ctx context.Context, in models.StoreInput) error {
			return inv.client.UpdateStore(ctx, id, in)
		},
		Signal:         inv.signals[models.KindStore],
		SuccessNotice:  NoticeStoreUpdated,
		FailureMessage: FailUpdateStore,
	}
}

func (inv *Inventory) DeleteProduct(id string) flow.DeleteFlow {
	return flow.DeleteFlow{
		Prompt:         ConfirmDeleteProduct,
		Do:             func(ctx context.Context) error { return inv.client.DeleteProduct(ctx, id) },
		Signal:         inv.signals[models.KindProduct],
		SuccessNotice:  NoticeProductDeleted,
		FailureMessage: FailDeleteProduct,
	}
}

func (inv *Inventory) DeleteStore(id string) flow.DeleteFlow {
	return flow.DeleteFlow{
		Prompt:         ConfirmDeleteStore,
		Do:             func(ctx context.Context) error { return inv.client.DeleteStore(ctx, id) },
		Signal:         inv.signals[models.KindStore],
		SuccessNotice:  NoticeStoreDeleted,
		FailureMessage: FailDeleteStore,
	}
}
