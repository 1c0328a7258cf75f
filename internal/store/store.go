// Package store holds the in-memory record store: the route catalog and the
// user accounts, plus the query primitives the menus are built on.
//
// A Store is created once per process and handed to whoever needs it. It is
// not safe for concurrent use; the CLI runs a single session at a time.
// Every read returns a copy, so callers never alias the stored slices.
package store

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/timex"
)

// ArrivalWindowHours is how far before the limit time a route may arrive.
const ArrivalWindowHours = 12

type Store struct {
	routes   []models.Route
	accounts []models.UserAccount
}

// New builds a store over copies of the given collections.
func New(routes []models.Route, accounts []models.UserAccount) *Store {
	return &Store{
		routes:   slices.Clone(routes),
		accounts: slices.Clone(accounts),
	}
}

// Routes returns a snapshot of all routes in insertion order.
func (s *Store) Routes() []models.Route {
	return slices.Clone(s.routes)
}

// Accounts returns a snapshot of all accounts, passwords included.
// Used by the persistence layer only.
func (s *Store) Accounts() []models.UserAccount {
	return slices.Clone(s.accounts)
}

func (s *Store) ListRoutes() []models.Route {
	return s.Routes()
}

// FindRoutesBy returns routes whose field equals value, ignoring case.
func (s *Store) FindRoutesBy(field models.RouteField, value string) ([]models.Route, error) {
	result := make([]models.Route, 0)
	for _, r := range s.routes {
		v, err := field.Value(r)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(v, value) {
			result = append(result, r)
		}
	}
	return result, nil
}

// SortRoutes returns a copy of the routes ordered by field. Ties keep their
// insertion order.
func (s *Store) SortRoutes(field models.RouteField) ([]models.Route, error) {
	if _, err := field.Value(models.Route{}); err != nil {
		return nil, err
	}
	sorted := slices.Clone(s.routes)
	slices.SortStableFunc(sorted, func(a, b models.Route) int {
		av, _ := field.Value(a)
		bv, _ := field.Value(b)
		return cmp.Compare(av, bv)
	})
	return sorted, nil
}

// RoutesArrivingWithin returns routes arriving no later than limit minus
// ArrivalWindowHours. The comparison is on time of day only; a threshold
// that wrapped past midnight is not corrected.
func (s *Store) RoutesArrivingWithin(limit timex.Clock) []models.Route {
	threshold := limit.MinusHours(ArrivalWindowHours)
	result := make([]models.Route, 0)
	for _, r := range s.routes {
		if !r.Arrival.After(threshold) {
			result = append(result, r)
		}
	}
	return result
}

// AddRoute appends r. Duplicate numbers are accepted.
func (s *Store) AddRoute(r models.Route) {
	s.routes = append(s.routes, r)
}

func (s *Store) routeIndex(number string) int {
	return slices.IndexFunc(s.routes, func(r models.Route) bool { return r.Number == number })
}

// Route returns the first route with the given number.
func (s *Store) Route(number string) (models.Route, bool) {
	i := s.routeIndex(number)
	if i < 0 {
		return models.Route{}, false
	}
	return s.routes[i], true
}

// UpdateRoute applies patch to the first route with the given number.
func (s *Store) UpdateRoute(number string, patch models.RoutePatch) (models.Route, error) {
	i := s.routeIndex(number)
	if i < 0 {
		return models.Route{}, fmt.Errorf("route %q: %w", number, common.ErrorNotFound)
	}
	s.routes[i] = patch.Apply(s.routes[i])
	return s.routes[i], nil
}

// DeleteRoute removes the first route with the given number.
func (s *Store) DeleteRoute(number string) error {
	i := s.routeIndex(number)
	if i < 0 {
		return fmt.Errorf("route %q: %w", number, common.ErrorNotFound)
	}
	s.routes = slices.Delete(s.routes, i, i+1)
	return nil
}

func (s *Store) accountIndex(username string) int {
	return slices.IndexFunc(s.accounts, func(a models.UserAccount) bool { return a.Username == username })
}

// Account looks an account up by username.
func (s *Store) Account(username string) (models.UserAccount, bool) {
	i := s.accountIndex(username)
	if i < 0 {
		return models.UserAccount{}, false
	}
	return s.accounts[i], true
}

// Authenticate returns the account whose username and password both match
// exactly.
func (s *Store) Authenticate(username, password string) (models.UserAccount, bool) {
	for _, a := range s.accounts {
		if a.Username == username && a.Password == password {
			return a, true
		}
	}
	return models.UserAccount{}, false
}

func (s *Store) AddAccount(a models.UserAccount) error {
	if s.accountIndex(a.Username) >= 0 {
		return fmt.Errorf("account %q: %w", a.Username, common.ErrAlreadyExists)
	}
	s.accounts = append(s.accounts, a)
	return nil
}

// UpdateAccount replaces the account stored under username with a record
// built from patch. The key and position are preserved.
func (s *Store) UpdateAccount(username string, patch models.AccountPatch) (models.UserAccount, error) {
	i := s.accountIndex(username)
	if i < 0 {
		return models.UserAccount{}, fmt.Errorf("account %q: %w", username, common.ErrorNotFound)
	}
	updated := patch.Apply(s.accounts[i])
	s.accounts[i] = updated
	return updated, nil
}

// DeleteAccount removes username. An identity may never delete itself;
// that check runs before the lookup.
func (s *Store) DeleteAccount(username, acting string) error {
	if username == acting {
		return fmt.Errorf("account %q: %w", username, common.ErrSelfDeleteForbidden)
	}
	i := s.accountIndex(username)
	if i < 0 {
		return fmt.Errorf("account %q: %w", username, common.ErrorNotFound)
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	return nil
}

func (s *Store) ListAccounts() []models.AccountView {
	views := make([]models.AccountView, 0, len(s.accounts))
	for _, a := range s.accounts {
		views = append(views, a.View())
	}
	return views
}
