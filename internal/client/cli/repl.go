package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/services"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error

	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error

	Purchases(ctx context.Context) error
	AddPurchase(ctx context.Context) error

	Sales(ctx context.Context) error
	AddSale(ctx context.Context) error

	Stores(ctx context.Context) error
	AddStore(ctx context.Context) error
	EditStore(ctx context.Context, id string) error
	DeleteStore(ctx context.Context, id string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: products, addproduct, editproduct <id>, deleteproduct <id>, " +
		"purchases, addpurchase, sales, addsale, stores, addstore, editstore <id>, deletestore <id>, " +
		"refresh, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the stockdesk console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Commands that need a session answer "Please login first" while logged
// out. Handler errors are printed and the loop continues; expected failures
// such as a rejected form are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("stockdesk %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		report(dispatch(logging.ContextWith(ctx, "command", cmd), a, cmd, args))
	}
}

var errUnknownCommand = errors.New("unknown command")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	withID := func(fn func(context.Context, string) error) error {
		if len(args) == 0 {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			return nil
		}
		return fn(ctx, args[0])
	}

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "logout", "refresh", "products", "addproduct", "editproduct", "deleteproduct",
			"purchases", "addpurchase", "sales", "addsale", "stores", "addstore", "editstore", "deletestore":
			return services.ErrNotLoggedIn
		}
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "refresh":
		return a.Refresh(ctx)
	case "products":
		return a.Products(ctx)
	case "addproduct":
		return a.AddProduct(ctx)
	case "editproduct":
		return withID(a.EditProduct)
	case "deleteproduct":
		return withID(a.DeleteProduct)
	case "purchases":
		return a.Purchases(ctx)
	case "addpurchase":
		return a.AddPurchase(ctx)
	case "sales":
		return a.Sales(ctx)
	case "addsale":
		return a.AddSale(ctx)
	case "stores":
		return a.Stores(ctx)
	case "addstore":
		return a.AddStore(ctx)
	case "editstore":
		return withID(a.EditStore)
	case "deletestore":
		return withID(a.DeleteStore)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

func report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotLoggedIn):
		printlnFn("Please login first")
	case errors.Is(err, errUnknownCommand):
		printlnFn("Unknown command:", strings.TrimPrefix(err.Error(), errUnknownCommand.Error()+": "))
	default:
		printlnFn("Error:", err)
	}
}
