// Package session tracks who is logged in to the depot console and gates
// operations by role.
//
// A Session is either unauthenticated or bound to one username. The role is
// not cached: every check re-reads the account from the store, so an admin
// who demotes themselves loses admin rights on the next call.
package session

import (
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/google/uuid"
)

// AccountSource is the part of the store the session reads.
type AccountSource interface {
	Authenticate(username, password string) (models.UserAccount, bool)
	Account(username string) (models.UserAccount, bool)
}

type Session struct {
	accounts AccountSource
	username string
	id       uuid.UUID
}

func New(accounts AccountSource) *Session {
	return &Session{accounts: accounts}
}

// Login binds the session to username when the password matches exactly.
// A failed attempt leaves the previous state untouched.
func (s *Session) Login(username, password string) (models.AccountView, error) {
	acc, ok := s.accounts.Authenticate(username, password)
	if !ok {
		return models.AccountView{}, fmt.Errorf("login %q: %w", username, common.ErrorUnauthorized)
	}
	s.username = acc.Username
	s.id = uuid.New()
	return acc.View(), nil
}

func (s *Session) Logout() {
	s.username = ""
	s.id = uuid.Nil
}

// ID identifies the current login; uuid.Nil when logged out.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the logged-in account. It reports false when nobody is
// logged in or the account has since been removed.
func (s *Session) Current() (models.AccountView, bool) {
	if s.username == "" {
		return models.AccountView{}, false
	}
	acc, ok := s.accounts.Account(s.username)
	if !ok {
		return models.AccountView{}, false
	}
	return acc.View(), true
}

// RequireUser returns the acting username or ErrorUnauthorized.
func (s *Session) RequireUser() (string, error) {
	v, ok := s.Current()
	if !ok {
		return "", common.ErrorUnauthorized
	}
	return v.Username, nil
}

// RequireAdmin is RequireUser plus an admin check.
func (s *Session) RequireAdmin() (string, error) {
	v, ok := s.Current()
	if !ok {
		return "", common.ErrorUnauthorized
	}
	if !v.IsAdmin {
		return "", fmt.Errorf("%s: %w", v.Username, common.ErrForbidden)
	}
	return v.Username, nil
}
