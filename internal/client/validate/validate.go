// Package validate holds the per-entity rules checked before a draft is sent
// to the API. Validators are pure: they read the draft and the reference
// catalog and never mutate either. Rules run in a fixed order and the first
// failing rule wins.
package validate

import (
	"github.com/dmitrijs2005/stockdesk/internal/client/draft"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// User-facing reasons.
const (
	MsgProductName      = "Product name is required."
	MsgProductPrice     = "Valid product price is required."
	MsgProductStock     = "Valid product stock is required."
	MsgRequiredFields   = "Please fill in all required fields."
	MsgPurchaseQuantity = "Valid purchase quantity is required."
	MsgPurchaseTotal    = "Valid total purchase amount is required."
	MsgUnknownProduct   = "Selected product no longer exists."
	MsgUnknownStore     = "Selected store no longer exists."
	MsgStoreName        = "Store name is required."
	MsgStoreCategory    = "Please select a valid store category."
	MsgInvalidFieldTmpl = "Please enter a valid value for %s."
)

// ValidationError is a local rule failure. Reason is shown to the user as is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func fail(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Refs resolves entity references against the lists known to the client.
// A nil Refs skips reference checks.
type Refs interface {
	HasProduct(id string) bool
	HasStore(id string) bool
}

// Func validates a draft.
type Func func(d *draft.Draft, refs Refs) error

// For returns the validator of an entity kind.
func For(kind models.Kind) Func {
	switch kind {
	case models.KindProduct:
		return Product
	case models.KindPurchase:
		return Purchase
	case models.KindSale:
		return Sale
	case models.KindStore:
		return Store
	default:
		return func(*draft.Draft, Refs) error { return nil }
	}
}

// Product requires a name, a positive price and a non-negative stock.
func Product(d *draft.Draft, _ Refs) error {
	if !d.Present(draft.KeyProductName) {
		return fail(draft.KeyProductName, MsgProductName)
	}

	price, err := d.Decimal(draft.KeyProductPrice)
	if !d.Present(draft.KeyProductPrice) || err != nil || !price.IsPositive() {
		return fail(draft.KeyProductPrice, MsgProductPrice)
	}

	stock, err := d.Int(draft.KeyProductStock)
	if !d.Present(draft.KeyProductStock) || err != nil || stock < 0 {
		return fail(draft.KeyProductStock, MsgProductStock)
	}
	return nil
}

// Sale requires every field to be filled and both references to resolve.
// Quantities are not bounded here; the API owns stock arithmetic.
func Sale(d *draft.Draft, refs Refs) error {
	if err := required(d, draft.KeySaleProduct, draft.KeySaleStore, draft.KeySaleStockSold, draft.KeySaleDate); err != nil {
		return err
	}
	if refs == nil {
		return nil
	}
	if !refs.HasProduct(d.Get(draft.KeySaleProduct)) {
		return fail(draft.KeySaleProduct, MsgUnknownProduct)
	}
	if !refs.HasStore(d.Get(draft.KeySaleStore)) {
		return fail(draft.KeySaleStore, MsgUnknownStore)
	}
	return nil
}

// Purchase requires every field to be filled, a positive quantity and
// total, and the product to resolve.
func Purchase(d *draft.Draft, refs Refs) error {
	if err := required(d, draft.KeyPurchaseProduct, draft.KeyPurchaseQuantity, draft.KeyPurchaseDate, draft.KeyPurchaseTotal); err != nil {
		return err
	}
	if qty, err := d.Int(draft.KeyPurchaseQuantity); err != nil || qty <= 0 {
		return fail(draft.KeyPurchaseQuantity, MsgPurchaseQuantity)
	}
	if total, err := d.Decimal(draft.KeyPurchaseTotal); err != nil || !total.IsPositive() {
		return fail(draft.KeyPurchaseTotal, MsgPurchaseTotal)
	}
	if refs != nil && !refs.HasProduct(d.Get(draft.KeyPurchaseProduct)) {
		return fail(draft.KeyPurchaseProduct, MsgUnknownProduct)
	}
	return nil
}

// Store requires a name and a category from the fixed set.
func Store(d *draft.Draft, _ Refs) error {
	if !d.Present(draft.KeyStoreName) {
		return fail(draft.KeyStoreName, MsgStoreName)
	}
	if _, err := models.ParseStoreCategory(d.Get(draft.KeyStoreCategory)); err != nil {
		return fail(draft.KeyStoreCategory, MsgStoreCategory)
	}
	return nil
}

func required(d *draft.Draft, keys ...string) error {
	for _, k := range keys {
		if !d.Present(k) {
			return fail(k, MsgRequiredFields)
		}
	}
	return nil
}
