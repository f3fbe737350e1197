package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgLoginSuccess    = "Successfully Login"
	msgLoginFailed     = "Wrong credentials, Try again"
	msgLoginIncomplete = "To login user, enter details to proceed..."
	msgRegistered      = "Successfully Registered, Proceed to Login with your details"
	msgUnavailable     = "The inventory service is unreachable, try again later."
)

// Register prompts for the account fields and creates the account on the
// API. Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &reg.FirstName},
		{"Last name", &reg.LastName},
		{"Email", &reg.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	reg.Password = string(password)

	if reg.PhoneNumber, err = getSimpleText(a.reader, "Phone number", a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, reg); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Fprintln(a.out, "! Registration failed:", userMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, msgRegistered)
	return nil
}

// Login prompts for credentials, authenticates and loads the inventory of
// the signed-in user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if strings.TrimSpace(email) == "" || len(password) == 0 {
		fmt.Fprintln(a.out, msgLoginIncomplete)
		return nil
	}

	s, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "error", err)
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ctx, ModeOffline)
			fmt.Fprintln(a.out, msgUnavailable)
			return nil
		}
		fmt.Fprintln(a.out, msgLoginFailed)
		return nil
	}

	a.setMode(ctx, ModeOnline)
	fmt.Fprintln(a.out, msgLoginSuccess)
	return a.startSession(ctx, s)
}

// Restore resumes the persisted session, if there is one.
func (a *App) Restore(ctx context.Context) error {
	s, ok, err := a.auth.Restore(ctx)
	if err != nil || !ok {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s\n", s.DisplayName)
	return a.startSession(ctx, s)
}

// Logout forgets the persisted session and drops the loaded lists.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.endSession()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// userMessage returns the API's message for err, or a generic text.
func userMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, client.ErrUnavailable) {
		return msgUnavailable
	}
	return "please try again"
}
