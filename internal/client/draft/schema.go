package draft

import "github.com/dmitrijs2005/stockdesk/internal/client/models"

// FieldType drives submit-time coercion and how the console prompts for a field.
type FieldType int

const (
	Text FieldType = iota
	Decimal
	Integer
	Date
	Category
	ProductRef
	StoreRef
)

// Field describes one entry of a draft.
type Field struct {
	Key    string
	Label  string
	Type   FieldType
	Hidden bool
}

// Schema is the ordered field layout of one entity kind.
type Schema struct {
	Kind     models.Kind
	OwnerKey string
	Fields   []Field
	Defaults map[string]string
}

// Field returns the field with the given key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Draft field keys. They match the JSON names the API uses.
const (
	KeyProductOwner       = "userId"
	KeyProductName        = "name"
	KeyProductPrice       = "price"
	KeyProductStock       = "stock"
	KeyProductDescription = "description"

	KeyPurchaseOwner    = "userID"
	KeyPurchaseProduct  = "productID"
	KeyPurchaseQuantity = "quantityPurchased"
	KeyPurchaseDate     = "purchaseDate"
	KeyPurchaseTotal    = "totalPurchaseAmount"

	KeySaleOwner     = "userID"
	KeySaleProduct   = "productID"
	KeySaleStore     = "storeID"
	KeySaleStockSold = "stockSold"
	KeySaleDate      = "saleDate"

	KeyStoreOwner    = "userId"
	KeyStoreName     = "name"
	KeyStoreAddress  = "address"
	KeyStoreCity     = "city"
	KeyStoreCategory = "category"
)

// ProductSchema lays out a product draft. Stock is shown but never prompted
// for: the API derives it from purchases and sales.
var ProductSchema = Schema{
	Kind:     models.KindProduct,
	OwnerKey: KeyProductOwner,
	Fields: []Field{
		{Key: KeyProductOwner, Label: "Owner", Type: Text, Hidden: true},
		{Key: KeyProductName, Label: "Name", Type: Text},
		{Key: KeyProductPrice, Label: "Price", Type: Decimal},
		{Key: KeyProductStock, Label: "Stock", Type: Integer, Hidden: true},
		{Key: KeyProductDescription, Label: "Description", Type: Text},
	},
	Defaults: map[string]string{KeyProductStock: "0"},
}

var PurchaseSchema = Schema{
	Kind:     models.KindPurchase,
	OwnerKey: KeyPurchaseOwner,
	Fields: []Field{
		{Key: KeyPurchaseOwner, Label: "Owner", Type: Text, Hidden: true},
		{Key: KeyPurchaseProduct, Label: "Product", Type: ProductRef},
		{Key: KeyPurchaseQuantity, Label: "Quantity purchased", Type: Integer},
		{Key: KeyPurchaseDate, Label: "Purchase date", Type: Date},
		{Key: KeyPurchaseTotal, Label: "Total purchase amount", Type: Decimal},
	},
}

var SaleSchema = Schema{
	Kind:     models.KindSale,
	OwnerKey: KeySaleOwner,
	Fields: []Field{
		{Key: KeySaleOwner, Label: "Owner", Type: Text, Hidden: true},
		{Key: KeySaleProduct, Label: "Product", Type: ProductRef},
		{Key: KeySaleStore, Label: "Store", Type: StoreRef},
		{Key: KeySaleStockSold, Label: "Stock sold", Type: Integer},
		{Key: KeySaleDate, Label: "Sale date", Type: Date},
	},
}

var StoreSchema = Schema{
	Kind:     models.KindStore,
	OwnerKey: KeyStoreOwner,
	Fields: []Field{
		{Key: KeyStoreOwner, Label: "Owner", Type: Text, Hidden: true},
		{Key: KeyStoreName, Label: "Name", Type: Text},
		{Key: KeyStoreAddress, Label: "Address", Type: Text},
		{Key: KeyStoreCity, Label: "City", Type: Text},
		{Key: KeyStoreCategory, Label: "Category", Type: Category},
	},
}
