// Package accounts persists user accounts to SQLite.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/busdepot/internal/models"
)

// Repository stores the whole account collection in insertion order.
type Repository interface {
	GetAll(ctx context.Context) ([]models.UserAccount, error)
	ReplaceAll(ctx context.Context, accounts []models.UserAccount) error
}
