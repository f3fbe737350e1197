package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
)

func TestRegister(t *testing.T) {
	stubPassword(t, "secret")
	auth := &fakeAuth{}
	a, out := newTestApp(auth, &fakeAPI{}, "Ada", "Lovelace", "ada@example.com", "555-0100")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, models.Registration{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Password:    "secret",
		PhoneNumber: "555-0100",
	}, auth.reg)
	assert.Contains(t, out.String(), msgRegistered)
	assert.False(t, a.isLoggedIn())
}

func TestRegister_ShowsAPIMessage(t *testing.T) {
	stubPassword(t, "secret")
	auth := &fakeAuth{regErr: &client.APIError{Status: 409, Message: "Email already registered"}}
	a, out := newTestApp(auth, &fakeAPI{}, "Ada", "Lovelace", "ada@example.com", "555-0100")

	require.NoError(t, a.Register(context.Background()))

	assert.Contains(t, out.String(), "Email already registered")
	assert.NotContains(t, out.String(), msgRegistered)
}

func TestLogin(t *testing.T) {
	t.Run("success starts a session", func(t *testing.T) {
		stubPassword(t, "secret")
		auth := &fakeAuth{loginRet: services.Session{UserID: "u1", DisplayName: "Ada L"}}
		a, out := newTestApp(auth, &fakeAPI{}, "ada@example.com")

		require.NoError(t, a.Login(context.Background()))

		assert.Equal(t, models.Credentials{Email: "ada@example.com", Password: "secret"}, auth.loginCreds)
		assert.Contains(t, out.String(), msgLoginSuccess)
		assert.True(t, a.isLoggedIn())
		assert.Equal(t, ModeOnline, a.mode)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		stubPassword(t, "bad")
		auth := &fakeAuth{loginErr: &client.APIError{Status: 400, Message: "Invalid"}}
		a, out := newTestApp(auth, &fakeAPI{}, "ada@example.com")

		require.NoError(t, a.Login(context.Background()))

		assert.Contains(t, out.String(), msgLoginFailed)
		assert.False(t, a.isLoggedIn())
	})

	t.Run("unavailable switches to offline", func(t *testing.T) {
		stubPassword(t, "secret")
		auth := &fakeAuth{loginErr: fmt.Errorf("%w: refused", client.ErrUnavailable)}
		a, out := newTestApp(auth, &fakeAPI{}, "ada@example.com")

		require.NoError(t, a.Login(context.Background()))

		assert.Contains(t, out.String(), msgUnavailable)
		assert.Equal(t, ModeOffline, a.mode)
	})

	t.Run("missing email", func(t *testing.T) {
		stubPassword(t, "secret")
		auth := &fakeAuth{}
		a, out := newTestApp(auth, &fakeAPI{}, "")

		require.NoError(t, a.Login(context.Background()))

		assert.Contains(t, out.String(), msgLoginIncomplete)
		assert.Empty(t, auth.loginCreds.Email)
	})

	t.Run("password read error", func(t *testing.T) {
		orig := getPassword
		getPassword = func(_ io.Writer) ([]byte, error) { return nil, errors.New("no tty") }
		t.Cleanup(func() { getPassword = orig })
		a, _ := newTestApp(&fakeAuth{}, &fakeAPI{}, "ada@example.com")

		assert.Error(t, a.Login(context.Background()))
	})
}

func TestRestore(t *testing.T) {
	auth := &fakeAuth{restoreOK: true, restoreRet: services.Session{UserID: "u1", DisplayName: "Ada L"}}
	a, out := newTestApp(auth, &fakeAPI{})

	require.NoError(t, a.Restore(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome back, Ada L")
}

func TestRestore_NothingSaved(t *testing.T) {
	a, out := newTestApp(&fakeAuth{}, &fakeAPI{})

	require.NoError(t, a.Restore(context.Background()))

	assert.False(t, a.isLoggedIn())
	assert.Empty(t, out.String())
}

func TestLogout(t *testing.T) {
	auth := &fakeAuth{}
	a, out := loggedInApp(t, &fakeAPI{})
	a.auth = auth

	require.NoError(t, a.Logout(context.Background()))

	assert.True(t, auth.logoutCalled)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Logged out")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Out of stock", userMessage(&client.APIError{Status: 400, Message: "Out of stock"}))
	assert.Equal(t, msgUnavailable, userMessage(fmt.Errorf("%w: x", client.ErrUnavailable)))
	assert.Equal(t, "please try again", userMessage(errors.New("other")))
}
