package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
	err   error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) recordID(name, id string) error {
	f.arg = id
	return f.record(name)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Refresh(context.Context) error     { return f.record("refresh") }
func (f *fakeExec) Products(context.Context) error    { return f.record("products") }
func (f *fakeExec) AddProduct(context.Context) error  { return f.record("addproduct") }
func (f *fakeExec) Purchases(context.Context) error   { return f.record("purchases") }
func (f *fakeExec) AddPurchase(context.Context) error { return f.record("addpurchase") }
func (f *fakeExec) Sales(context.Context) error       { return f.record("sales") }
func (f *fakeExec) AddSale(context.Context) error     { return f.record("addsale") }
func (f *fakeExec) Stores(context.Context) error      { return f.record("stores") }
func (f *fakeExec) AddStore(context.Context) error    { return f.record("addstore") }
func (f *fakeExec) EditProduct(_ context.Context, id string) error {
	return f.recordID("editproduct", id)
}
func (f *fakeExec) DeleteProduct(_ context.Context, id string) error {
	return f.recordID("deleteproduct", id)
}
func (f *fakeExec) EditStore(_ context.Context, id string) error {
	return f.recordID("editstore", id)
}
func (f *fakeExec) DeleteStore(_ context.Context, id string) error {
	return f.recordID("deletestore", id)
}

func status() string { return "(online)" }

func TestREPL_LoggedOutCommands(t *testing.T) {
	printed := silencePrintln(t)
	f := &fakeExec{}

	runREPL(context.Background(), f, status, readerFromLines("help", "register", "products", "exit"))

	assert.Equal(t, []string{"register"}, f.calls)
	assert.Contains(t, *printed, helpLoggedOut)
	assert.Contains(t, *printed, "Please login first")
	assert.Contains(t, *printed, "Bye!")
	assert.Contains(t, *printed, "stockdesk (online)>")
}

func TestREPL_LoginThenCommands(t *testing.T) {
	printed := silencePrintln(t)
	f := &fakeExec{}

	runREPL(context.Background(), f, status, readerFromLines(
		"login", "help", "products", "addproduct", "purchases", "addpurchase",
		"sales", "addsale", "stores", "addstore", "refresh", "logout", "quit",
	))

	assert.Equal(t, []string{
		"login", "products", "addproduct", "purchases", "addpurchase",
		"sales", "addsale", "stores", "addstore", "refresh", "logout",
	}, f.calls)
	assert.Contains(t, *printed, helpLoggedIn)
}

func TestREPL_CommandsWithID(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"editproduct p1", "editproduct"},
		{"deleteproduct p1", "deleteproduct"},
		{"editstore p1", "editstore"},
		{"deletestore p1", "deletestore"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			silencePrintln(t)
			f := &fakeExec{loggedIn: true}

			runREPL(context.Background(), f, status, readerFromLines(tt.line))

			require.Equal(t, []string{tt.want}, f.calls)
			assert.Equal(t, "p1", f.arg)
		})
	}
}

func TestREPL_MissingIDPrintsUsage(t *testing.T) {
	printed := silencePrintln(t)
	f := &fakeExec{loggedIn: true}

	runREPL(context.Background(), f, status, readerFromLines("deletestore"))

	assert.Empty(t, f.calls)
	assert.Contains(t, *printed, "Usage: deletestore <id>")
}

func TestREPL_UnknownAndFailingCommands(t *testing.T) {
	printed := silencePrintln(t)
	f := &fakeExec{loggedIn: true, err: errors.New("boom")}

	runREPL(context.Background(), f, status, readerFromLines("frobnicate", "", "stores"))

	assert.Contains(t, *printed, "Unknown command: frobnicate")
	assert.Contains(t, *printed, "Error: boom")
	assert.Equal(t, []string{"stores"}, f.calls)
}

func TestREPL_StopsWhenContextDone(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runREPL(ctx, f, status, readerFromLines("register"))

	assert.Empty(t, f.calls)
}
