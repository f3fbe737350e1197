package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The API stores prices and totals as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind classifies an inventory entity.
type Kind string

const (
	KindProduct  Kind = "product"
	KindPurchase Kind = "purchase"
	KindSale     Kind = "sale"
	KindStore    Kind = "store"
)

// Product is a catalog item. Stock is owned by the API and only changes
// through purchases and sales.
type Product struct {
	ID          string          `json:"_id"`
	UserID      string          `json:"userId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
}

// Store is a sales location.
type Store struct {
	ID       string        `json:"_id"`
	UserID   string        `json:"userId"`
	Name     string        `json:"name"`
	Address  string        `json:"address"`
	City     string        `json:"city"`
	Category StoreCategory `json:"category"`
}

// Purchase records stock inflow for one product.
type Purchase struct {
	ID                  string          `json:"_id"`
	UserID              string          `json:"userID"`
	ProductID           string          `json:"productID"`
	QuantityPurchased   int             `json:"quantityPurchased"`
	PurchaseDate        Date            `json:"purchaseDate"`
	TotalPurchaseAmount decimal.Decimal `json:"totalPurchaseAmount"`
}

// Sale records stock outflow for one product at one store.
type Sale struct {
	ID        string `json:"_id"`
	UserID    string `json:"userID"`
	ProductID string `json:"productID"`
	StoreID   string `json:"storeID"`
	StockSold int    `json:"stockSold"`
	SaleDate  Date   `json:"saleDate"`
}

// User is the authenticated account returned by the login endpoint.
type User struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Token       string `json:"token,omitempty"`
}

// DisplayName returns "First Last", falling back to the email.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up request body.
type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}
