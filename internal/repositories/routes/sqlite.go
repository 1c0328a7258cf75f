package routes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/dbx"
	"github.com/dmitrijs2005/busdepot/internal/models"
)

// SQLiteRepository implements Repository over a DBTX. ReplaceAll issues
// several statements, so callers bind it to a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetAll returns every stored route ordered by position.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Route, error) {
	query := `select route_number, bus_type, destination, departure_time, arrival_time
		from routes order by position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select routes: %w", err)
	}
	defer rows.Close()

	result := make([]models.Route, 0)
	for rows.Next() {
		var item models.Route
		if err := rows.Scan(&item.Number, &item.BusType, &item.Destination, &item.Departure, &item.Arrival); err != nil {
			return nil, fmt.Errorf("failed to scan route row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate route rows: %w", err)
	}
	return result, nil
}

// ReplaceAll deletes every row and inserts routes with positions 0..n-1.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, routes []models.Route) error {
	if _, err := r.db.ExecContext(ctx, `delete from routes`); err != nil {
		return fmt.Errorf("failed to clear routes: %w", err)
	}

	query := `insert into routes (position, route_number, bus_type, destination, departure_time, arrival_time)
		values (?, ?, ?, ?, ?, ?)`
	for i, item := range routes {
		_, err := r.db.ExecContext(ctx, query, i, item.Number, item.BusType, item.Destination, item.Departure, item.Arrival)
		if err != nil {
			return fmt.Errorf("failed to insert route %q: %w", item.Number, err)
		}
	}
	return nil
}
