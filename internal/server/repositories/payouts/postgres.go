package payouts

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

func (r *PostgresRepository) Create(ctx context.Context, p *models.Payout) error {
	query :=
		`INSERT INTO payouts (owner, recipient, amount, height)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, p.Owner, p.Recipient, p.Amount, p.Height).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]models.Payout, error) {
	query :=
		`SELECT id, owner, recipient, amount, height, created_at
		 FROM payouts
		 WHERE owner = $1
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Payout
	for rows.Next() {
		var p models.Payout
		if err := rows.Scan(&p.ID, &p.Owner, &p.Recipient, &p.Amount, &p.Height, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
