package beneficiaries

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Replace must run inside a transaction for the swap to be atomic.
func (r *PostgresRepository) Replace(ctx context.Context, owner string, list []models.Beneficiary) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM beneficiaries WHERE owner = $1`, owner); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO beneficiaries (owner, position, recipient, percentage)
		 VALUES ($1, $2, $3, $4)`

	for i, b := range list {
		if _, err := r.db.ExecContext(ctx, query, owner, i, b.Recipient, b.Percentage); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, owner string) ([]models.Beneficiary, error) {
	query :=
		`SELECT recipient, percentage
		 FROM beneficiaries
		 WHERE owner = $1
		 ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Beneficiary
	for rows.Next() {
		var b models.Beneficiary
		if err := rows.Scan(&b.Recipient, &b.Percentage); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
