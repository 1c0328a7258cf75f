package persistence

import (
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/timex"
)

// SeedRoutes is the catalog materialized when no route storage exists.
func SeedRoutes() []models.Route {
	return []models.Route{
		{
			Number:      "1",
			BusType:     "Express",
			Destination: "Minsk",
			Departure:   timex.MustClock(9, 0),
			Arrival:     timex.MustClock(12, 0),
		},
	}
}

// SeedAccounts is the account list materialized when no account storage
// exists.
func SeedAccounts() []models.UserAccount {
	return []models.UserAccount{
		{Username: "admin", Password: "admin123", IsAdmin: true},
		{Username: "user", Password: "user123", IsAdmin: false},
	}
}
