package services

import (
	"errors"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/repositories/session"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Session identifies the signed-in user. It is passed explicitly to every
// component that needs the owner id.
type Session struct {
	UserID      string
	DisplayName string
	Email       string
	Token       string
}

// Valid reports whether the session belongs to a user.
func (s Session) Valid() bool { return s.UserID != "" }

func sessionFromUser(u models.User) Session {
	return Session{UserID: u.ID, DisplayName: u.DisplayName(), Email: u.Email, Token: u.Token}
}

func sessionFromRecord(r session.Record) Session {
	return Session{UserID: r.UserID, DisplayName: r.DisplayName, Email: r.Email, Token: r.Token}
}
