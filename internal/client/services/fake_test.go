package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet models.User
	LoginErr error

	RegisterErr error
	PingErr     error
	CloseErr    error

	ProductsRet  []models.Product
	ProductsErr  error
	PurchasesRet []models.Purchase
	SalesRet     []models.Sale
	StoresRet    []models.Store

	SendErr error

	Token       string
	Calls       []string
	LastUserID  string
	LastProduct models.ProductInput
	LastStore   models.StoreInput
	LastID      string
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}

func (f *fakeClient) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeClient) Close() error               { return f.CloseErr }
func (f *fakeClient) SetToken(token string)      { f.Token = token }
func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) Login(_ context.Context, _ models.Credentials) (models.User, error) {
	f.record("login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, _ models.Registration) error {
	f.record("register")
	return f.RegisterErr
}

func (f *fakeClient) Products(_ context.Context, userID string) ([]models.Product, error) {
	f.record("products")
	f.LastUserID = userID
	return f.ProductsRet, f.ProductsErr
}

func (f *fakeClient) AddProduct(_ context.Context, in models.ProductInput) error {
	f.record("addProduct")
	f.LastProduct = in
	return f.SendErr
}

func (f *fakeClient) UpdateProduct(_ context.Context, id string, in models.ProductInput) error {
	f.record("updateProduct")
	f.LastID, f.LastProduct = id, in
	return f.SendErr
}

func (f *fakeClient) DeleteProduct(_ context.Context, id string) error {
	f.record("deleteProduct")
	f.LastID = id
	return f.SendErr
}

func (f *fakeClient) Purchases(_ context.Context, _ string) ([]models.Purchase, error) {
	f.record("purchases")
	return f.PurchasesRet, nil
}

func (f *fakeClient) AddPurchase(_ context.Context, _ models.PurchaseInput) error {
	f.record("addPurchase")
	return f.SendErr
}

func (f *fakeClient) Sales(_ context.Context, _ string) ([]models.Sale, error) {
	f.record("sales")
	return f.SalesRet, nil
}

func (f *fakeClient) AddSale(_ context.Context, _ models.SaleInput) error {
	f.record("addSale")
	return f.SendErr
}

func (f *fakeClient) Stores(_ context.Context, _ string) ([]models.Store, error) {
	f.record("stores")
	return f.StoresRet, nil
}

func (f *fakeClient) AddStore(_ context.Context, in models.StoreInput) error {
	f.record("addStore")
	f.LastStore = in
	return f.SendErr
}

func (f *fakeClient) UpdateStore(_ context.Context, id string, in models.StoreInput) error {
	f.record("updateStore")
	f.LastID, f.LastStore = id, in
	return f.SendErr
}

func (f *fakeClient) DeleteStore(_ context.Context, id string) error {
	f.record("deleteStore")
	f.LastID = id
	return f.SendErr
}
