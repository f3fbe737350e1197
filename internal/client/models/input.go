package models

import "github.com/shopspring/decimal"

// The input types below are request bodies built from drafts. Their
// mapstructure tags are the draft field keys.

// ProductInput is sent by the add and update product flows. It carries no
// stock: the API initializes and maintains it.
type ProductInput struct {
	UserID      string          `json:"userId" mapstructure:"userId"`
	Name        string          `json:"name" mapstructure:"name"`
	Price       decimal.Decimal `json:"price" mapstructure:"price"`
	Description string          `json:"description" mapstructure:"description"`
}

// PurchaseInput is sent by the add purchase flow.
type PurchaseInput struct {
	UserID              string          `json:"userID" mapstructure:"userID"`
	ProductID           string          `json:"productID" mapstructure:"productID"`
	QuantityPurchased   int             `json:"quantityPurchased" mapstructure:"quantityPurchased"`
	PurchaseDate        Date            `json:"purchaseDate" mapstructure:"purchaseDate"`
	TotalPurchaseAmount decimal.Decimal `json:"totalPurchaseAmount" mapstructure:"totalPurchaseAmount"`
}

// SaleInput is sent by the add sale flow.
type SaleInput struct {
	UserID    string `json:"userID" mapstructure:"userID"`
	ProductID string `json:"productID" mapstructure:"productID"`
	StoreID   string `json:"storeID" mapstructure:"storeID"`
	StockSold int    `json:"stockSold" mapstructure:"stockSold"`
	SaleDate  Date   `json:"saleDate" mapstructure:"saleDate"`
}

// StoreInput is sent by the add and update store flows.
type StoreInput struct {
	UserID   string        `json:"userId" mapstructure:"userId"`
	Name     string        `json:"name" mapstructure:"name"`
	Address  string        `json:"address" mapstructure:"address"`
	City     string        `json:"city" mapstructure:"city"`
	Category StoreCategory `json:"category" mapstructure:"category"`
}
