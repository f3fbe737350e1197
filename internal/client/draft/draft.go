package draft

import (
	"errors"
	"fmt"
	"maps"
	"strconv"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrReadOnlyField = errors.New("read-only field")
)

// Draft is the in-memory copy of an entity being created or edited. It is
// owned by exactly one modal and must not be shared.
type Draft struct {
	schema   Schema
	values   map[string]string
	onChange func(key string)
}

// New returns a draft with every schema field initialized to its default (or
// empty) and the owner field set to owner.
func New(s Schema, owner string) *Draft {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Key] = s.Defaults[f.Key]
	}
	values[s.OwnerKey] = owner
	return &Draft{schema: s, values: values}
}

// FromProduct seeds an edit draft from a fetched product.
func FromProduct(p models.Product, owner string) *Draft {
	d := New(ProductSchema, owner)
	d.values[KeyProductName] = p.Name
	d.values[KeyProductPrice] = p.Price.String()
	d.values[KeyProductStock] = strconv.Itoa(p.Stock)
	d.values[KeyProductDescription] = p.Description
	return d
}

// FromStore seeds an edit draft from a fetched store.
func FromStore(s models.Store, owner string) *Draft {
	d := New(StoreSchema, owner)
	d.values[KeyStoreName] = s.Name
	d.values[KeyStoreAddress] = s.Address
	d.values[KeyStoreCity] = s.City
	d.values[KeyStoreCategory] = string(s.Category)
	return d
}

// FromPurchase seeds a draft from a fetched purchase.
func FromPurchase(p models.Purchase, owner string) *Draft {
	d := New(PurchaseSchema, owner)
	d.values[KeyPurchaseProduct] = p.ProductID
	d.values[KeyPurchaseQuantity] = strconv.Itoa(p.QuantityPurchased)
	d.values[KeyPurchaseDate] = p.PurchaseDate.String()
	d.values[KeyPurchaseTotal] = p.TotalPurchaseAmount.String()
	return d
}

// FromSale seeds a draft from a fetched sale.
func FromSale(s models.Sale, owner string) *Draft {
	d := New(SaleSchema, owner)
	d.values[KeySaleProduct] = s.ProductID
	d.values[KeySaleStore] = s.StoreID
	d.values[KeySaleStockSold] = strconv.Itoa(s.StockSold)
	d.values[KeySaleDate] = s.SaleDate.String()
	return d
}

func (d *Draft) Schema() Schema    { return d.schema }
func (d *Draft) Kind() models.Kind { return d.schema.Kind }
func (d *Draft) Owner() string     { return d.values[d.schema.OwnerKey] }

// Get returns the raw value of key ("" for unknown keys).
func (d *Draft) Get(key string) string {
	return d.values[key]
}

// SetField replaces the value of exactly one field. The value is stored as
// given, without trimming or conversion.
func (d *Draft) SetField(key, value string) error {
	if _, ok := d.values[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if key == d.schema.OwnerKey {
		return fmt.Errorf("%w: %s", ErrReadOnlyField, key)
	}
	d.values[key] = value
	if d.onChange != nil {
		d.onChange(key)
	}
	return nil
}

// OnChange registers a hook called after every successful SetField.
func (d *Draft) OnChange(fn func(key string)) {
	d.onChange = fn
}

// Values returns a copy of all fields.
func (d *Draft) Values() map[string]string {
	return maps.Clone(d.values)
}

// Clone returns an independent copy without the change hook.
func (d *Draft) Clone() *Draft {
	return &Draft{schema: d.schema, values: maps.Clone(d.values)}
}

// Equal reports whether both drafts have the same kind and field values.
func (d *Draft) Equal(o *Draft) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.schema.Kind == o.schema.Kind && maps.Equal(d.values, o.values)
}
