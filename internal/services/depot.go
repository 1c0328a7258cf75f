// Package services holds the depot's business operations. DepotService
// puts the session gate in front of every store operation and commits each
// mutation through the persistence gateway before reporting success.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/logging"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/persistence"
	"github.com/dmitrijs2005/busdepot/internal/session"
	"github.com/dmitrijs2005/busdepot/internal/store"
	"github.com/dmitrijs2005/busdepot/internal/timex"
)

// DepotService is the operation surface the CLI talks to.
//
// Reads need any logged-in identity; mutations and the account listing need
// an admin. When a save fails the in-memory change is kept and the returned
// error wraps common.ErrPersistenceFailure.
type DepotService struct {
	store   *store.Store
	gateway persistence.Gateway
	session *session.Session
	logger  logging.Logger
}

func NewDepotService(st *store.Store, gw persistence.Gateway, sess *session.Session, logger logging.Logger) *DepotService {
	return &DepotService{store: st, gateway: gw, session: sess, logger: logger}
}

// log returns the logger tagged with the current login.
func (s *DepotService) log() logging.Logger {
	return s.logger.With("session", s.session.ID().String())
}

func (s *DepotService) saveRoutes(ctx context.Context) error {
	return s.gateway.SaveRoutes(ctx, s.store.Routes())
}

func (s *DepotService) saveAccounts(ctx context.Context) error {
	return s.gateway.SaveAccounts(ctx, s.store.Accounts())
}

func (s *DepotService) ListRoutes(ctx context.Context) ([]models.Route, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	return s.store.ListRoutes(), nil
}

func (s *DepotService) FindRoutes(ctx context.Context, field models.RouteField, value string) ([]models.Route, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	return s.store.FindRoutesBy(field, value)
}

func (s *DepotService) SortRoutes(ctx context.Context, field models.RouteField) ([]models.Route, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	return s.store.SortRoutes(field)
}

func (s *DepotService) RoutesArrivingWithin(ctx context.Context, limit timex.Clock) ([]models.Route, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	return s.store.RoutesArrivingWithin(limit), nil
}

// GetRoute returns the route an edit or delete of number would act on.
func (s *DepotService) GetRoute(ctx context.Context, number string) (models.Route, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return models.Route{}, err
	}
	r, ok := s.store.Route(number)
	if !ok {
		return models.Route{}, fmt.Errorf("route %q: %w", number, common.ErrorNotFound)
	}
	return r, nil
}

func (s *DepotService) AddRoute(ctx context.Context, r models.Route) error {
	acting, err := s.session.RequireAdmin()
	if err != nil {
		return err
	}
	s.store.AddRoute(r)
	s.log().Info(ctx, "route added", "by", acting, "route", r.Number)
	return s.saveRoutes(ctx)
}

// UpdateRoute edits the first route numbered number.
func (s *DepotService) UpdateRoute(ctx context.Context, number string, patch models.RoutePatch) (models.Route, error) {
	acting, err := s.session.RequireAdmin()
	if err != nil {
		return models.Route{}, err
	}
	updated, err := s.store.UpdateRoute(number, patch)
	if err != nil {
		return models.Route{}, err
	}
	s.log().Info(ctx, "route updated", "by", acting, "route", number)
	return updated, s.saveRoutes(ctx)
}

// DeleteRoute removes the first route numbered number.
func (s *DepotService) DeleteRoute(ctx context.Context, number string) error {
	acting, err := s.session.RequireAdmin()
	if err != nil {
		return err
	}
	if err := s.store.DeleteRoute(number); err != nil {
		return err
	}
	s.log().Info(ctx, "route deleted", "by", acting, "route", number)
	return s.saveRoutes(ctx)
}

func (s *DepotService) GetAccount(ctx context.Context, username string) (models.AccountView, error) {
	if _, err := s.session.RequireAdmin(); err != nil {
		return models.AccountView{}, err
	}
	a, ok := s.store.Account(username)
	if !ok {
		return models.AccountView{}, fmt.Errorf("account %q: %w", username, common.ErrorNotFound)
	}
	return a.View(), nil
}

func (s *DepotService) AddAccount(ctx context.Context, a models.UserAccount) error {
	acting, err := s.session.RequireAdmin()
	if err != nil {
		return err
	}
	if err := s.store.AddAccount(a); err != nil {
		return err
	}
	s.log().Info(ctx, "account added", "by", acting, "account", a.Username, "admin", a.IsAdmin)
	return s.saveAccounts(ctx)
}

func (s *DepotService) UpdateAccount(ctx context.Context, username string, patch models.AccountPatch) (models.AccountView, error) {
	acting, err := s.session.RequireAdmin()
	if err != nil {
		return models.AccountView{}, err
	}
	updated, err := s.store.UpdateAccount(username, patch)
	if err != nil {
		return models.AccountView{}, err
	}
	s.log().Info(ctx, "account updated", "by", acting, "account", username,
		"password_changed", patch.Password != nil, "admin", updated.IsAdmin)
	return updated.View(), s.saveAccounts(ctx)
}

// DeleteAccount removes username. The logged-in admin cannot remove
// their own account.
func (s *DepotService) DeleteAccount(ctx context.Context, username string) error {
	acting, err := s.session.RequireAdmin()
	if err != nil {
		return err
	}
	if err := s.store.DeleteAccount(username, acting); err != nil {
		return err
	}
	s.log().Info(ctx, "account deleted", "by", acting, "account", username)
	return s.saveAccounts(ctx)
}

func (s *DepotService) ListAccounts(ctx context.Context) ([]models.AccountView, error) {
	if _, err := s.session.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.store.ListAccounts(), nil
}

// Login authenticates against the store.
func (s *DepotService) Login(ctx context.Context, username, password string) (models.AccountView, error) {
	v, err := s.session.Login(username, password)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "username", username)
		return models.AccountView{}, err
	}
	s.log().Info(ctx, "logged in", "username", v.Username, "admin", v.IsAdmin)
	return v, nil
}

func (s *DepotService) Logout(ctx context.Context) {
	if v, ok := s.session.Current(); ok {
		s.log().Info(ctx, "logged out", "username", v.Username)
	}
	s.session.Logout()
}

// Current is the logged-in account, if any.
func (s *DepotService) Current() (models.AccountView, bool) {
	return s.session.Current()
}

// Close releases the storage backend.
func (s *DepotService) Close() error {
	if err := s.gateway.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
