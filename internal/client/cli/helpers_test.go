package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/stockdesk/internal/client/config"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// ---- fake auth service ----

type fakeAuth struct {
	loginCreds models.Credentials
	loginRet   services.Session
	loginErr   error

	reg    models.Registration
	regErr error

	restoreRet services.Session
	restoreOK  bool
	restoreErr error

	logoutCalled bool
	logoutErr    error

	pingErr error
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (services.Session, error) {
	f.loginCreds = creds
	return f.loginRet, f.loginErr
}
func (f *fakeAuth) Register(_ context.Context, reg models.Registration) error {
	f.reg = reg
	return f.regErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Restore(context.Context) (services.Session, bool, error) {
	return f.restoreRet, f.restoreOK, f.restoreErr
}
func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return nil }

// ---- fake API client ----

type fakeAPI struct {
	products  []models.Product
	purchases []models.Purchase
	sales     []models.Sale
	stores    []models.Store
	listErr   error

	// sendErrs are returned by successive mutations; nil entries succeed.
	sendErrs []error

	calls        []string
	lastProduct  models.ProductInput
	lastPurchase models.PurchaseInput
	lastSale     models.SaleInput
	lastStore    models.StoreInput
	lastID       string
}

func (f *fakeAPI) send(call string) error {
	f.calls = append(f.calls, call)
	if len(f.sendErrs) == 0 {
		return nil
	}
	err := f.sendErrs[0]
	f.sendErrs = f.sendErrs[1:]
	return err
}

func (f *fakeAPI) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Close() error               { return nil }
func (f *fakeAPI) SetToken(string)            {}
func (f *fakeAPI) Ping(context.Context) error { return nil }
func (f *fakeAPI) Login(context.Context, models.Credentials) (models.User, error) {
	return models.User{}, nil
}
func (f *fakeAPI) Register(context.Context, models.Registration) error { return nil }

func (f *fakeAPI) Products(context.Context, string) ([]models.Product, error) {
	f.calls = append(f.calls, "products")
	return f.products, f.listErr
}
func (f *fakeAPI) AddProduct(_ context.Context, in models.ProductInput) error {
	f.lastProduct = in
	return f.send("addProduct")
}
func (f *fakeAPI) UpdateProduct(_ context.Context, id string, in models.ProductInput) error {
	f.lastID, f.lastProduct = id, in
	return f.send("updateProduct")
}
func (f *fakeAPI) DeleteProduct(_ context.Context, id string) error {
	f.lastID = id
	return f.send("deleteProduct")
}
func (f *fakeAPI) Purchases(context.Context, string) ([]models.Purchase, error) {
	f.calls = append(f.calls, "purchases")
	return f.purchases, f.listErr
}
func (f *fakeAPI) AddPurchase(_ context.Context, in models.PurchaseInput) error {
	f.lastPurchase = in
	return f.send("addPurchase")
}
func (f *fakeAPI) Sales(context.Context, string) ([]models.Sale, error) {
	f.calls = append(f.calls, "sales")
	return f.sales, f.listErr
}
func (f *fakeAPI) AddSale(_ context.Context, in models.SaleInput) error {
	f.lastSale = in
	return f.send("addSale")
}
func (f *fakeAPI) Stores(context.Context, string) ([]models.Store, error) {
	f.calls = append(f.calls, "stores")
	return f.stores, f.listErr
}
func (f *fakeAPI) AddStore(_ context.Context, in models.StoreInput) error {
	f.lastStore = in
	return f.send("addStore")
}
func (f *fakeAPI) UpdateStore(_ context.Context, id string, in models.StoreInput) error {
	f.lastID, f.lastStore = id, in
	return f.send("updateStore")
}
func (f *fakeAPI) DeleteStore(_ context.Context, id string) error {
	f.lastID = id
	return f.send("deleteStore")
}

// ---- app helpers ----

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(auth *fakeAuth, api *fakeAPI, lines ...string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		config: &config.Config{},
		log:    logging.NewNop(),
		auth:   auth,
		api:    api,
		reader: readerFromLines(lines...),
		out:    &out,
	}, &out
}

func loggedInApp(t *testing.T, api *fakeAPI, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	a, out := newTestApp(&fakeAuth{}, api, lines...)
	require.NoError(t, a.startSession(context.Background(), services.Session{UserID: "u1", DisplayName: "Ada L"}))
	api.calls = nil
	out.Reset()
	return a, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.TrimSuffix(toString(v), "\n"))
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return ""
	}
}
