// Package routes persists the route catalog to SQLite.
package routes

import (
	"context"

	"github.com/dmitrijs2005/busdepot/internal/models"
)

// Repository stores the whole route collection in insertion order.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Route, error)
	// ReplaceAll overwrites the stored collection with routes.
	ReplaceAll(ctx context.Context, routes []models.Route) error
}
