package client

import (
	"context"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// Client is the contract of the inventory API.
type Client interface {
	Close() error
	SetToken(token string)
	Ping(ctx context.Context) error

	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Register(ctx context.Context, reg models.Registration) error

	Products(ctx context.Context, userID string) ([]models.Product, error)
	AddProduct(ctx context.Context, in models.ProductInput) error
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) error
	DeleteProduct(ctx context.Context, id string) error

	Purchases(ctx context.Context, userID string) ([]models.Purchase, error)
	AddPurchase(ctx context.Context, in models.PurchaseInput) error

	Sales(ctx context.Context, userID string) ([]models.Sale, error)
	AddSale(ctx context.Context, in models.SaleInput) error

	Stores(ctx context.Context, userID string) ([]models.Store, error)
	AddStore(ctx context.Context, in models.StoreInput) error
	UpdateStore(ctx context.Context, id string, in models.StoreInput) error
	DeleteStore(ctx context.Context, id string) error
}
