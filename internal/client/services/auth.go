// Package services contains the application services of the console.
// This file defines the authentication service: login and registration
// against the API, and the persisted session that lets a restarted console
// skip the login prompt.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/repositories/session"
	"github.com/dmitrijs2005/stockdesk/internal/dbx"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Login: authenticate against the API and persist the session.
//   - Register: create a new account on the API.
//   - Logout: forget the persisted session.
//   - Restore: load a persisted session that has not expired.
//   - Ping: check API liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (Session, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (Session, bool, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(c client.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: c, db: db, log: log, now: time.Now}
}

func (a *authService) repo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (Session, error) {
	u, err := a.client.Login(ctx, creds)
	if err != nil {
		return Session{}, fmt.Errorf("login error: %w", err)
	}

	s := sessionFromUser(u)
	a.client.SetToken(s.Token)

	rec := session.Record{UserID: s.UserID, DisplayName: s.DisplayName, Email: s.Email, Token: s.Token, SavedAt: a.now()}
	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		return repo.Save(ctx, rec)
	})
	if err != nil {
		return Session{}, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "user", s.UserID)
	return s, nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	return a.client.Register(ctx, reg)
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	if err := a.repo(a.db).Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// Restore returns the persisted session, if any. A session whose token has
// expired is cleared and not restored.
func (a *authService) Restore(ctx context.Context) (Session, bool, error) {
	rec, ok, err := a.repo(a.db).Load(ctx)
	if err != nil || !ok {
		return Session{}, false, err
	}

	if exp, ok := tokenExpiry(rec.Token); ok && !a.now().Before(exp) {
		a.log.Info(ctx, "persisted session expired", "user", rec.UserID, "expired_at", exp)
		if err := a.repo(a.db).Clear(ctx); err != nil {
			return Session{}, false, err
		}
		return Session{}, false, nil
	}

	s := sessionFromRecord(rec)
	a.client.SetToken(s.Token)
	return s, true, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// tokenExpiry reads the exp claim of a JWT without verifying it; the API
// does the verification. Opaque or exp-less tokens report ok=false.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
