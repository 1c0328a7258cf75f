package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/dbx"
	"github.com/dmitrijs2005/busdepot/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.UserAccount, error) {
	rows, err := r.db.QueryContext(ctx, `select username, password, is_admin from accounts order by position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	result := make([]models.UserAccount, 0)
	for rows.Next() {
		var item models.UserAccount
		if err := rows.Scan(&item.Username, &item.Password, &item.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return result, nil
}

// ReplaceAll deletes every row and inserts accounts in order. The username
// column is unique, so a duplicate in the input fails the whole call.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, accounts []models.UserAccount) error {
	if _, err := r.db.ExecContext(ctx, `delete from accounts`); err != nil {
		return fmt.Errorf("failed to clear accounts: %w", err)
	}

	query := `insert into accounts (position, username, password, is_admin) values (?, ?, ?, ?)`
	for i, item := range accounts {
		if _, err := r.db.ExecContext(ctx, query, i, item.Username, item.Password, item.IsAdmin); err != nil {
			return fmt.Errorf("failed to insert account %q: %w", item.Username, err)
		}
	}
	return nil
}
