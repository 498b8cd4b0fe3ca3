package guardians

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, owner, guardian string) error {
	query :=
		`INSERT INTO guardians (owner, guardian)
		 VALUES ($1, $2)
		 ON CONFLICT (owner, guardian) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, owner, guardian)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, owner, guardian string) error {
	query :=
		`DELETE FROM guardians
		 WHERE owner = $1 AND guardian = $2`

	res, err := r.db.ExecContext(ctx, query, owner, guardian)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner, guardian string) (*models.Guardian, error) {
	query :=
		`SELECT owner, guardian, extension_count, created_at
		 FROM guardians
		 WHERE owner = $1 AND guardian = $2`

	g := &models.Guardian{}
	err := r.db.QueryRowContext(ctx, query, owner, guardian).Scan(&g.Owner, &g.Guardian, &g.ExtensionCount, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) IncrementExtensions(ctx context.Context, owner, guardian string) (int, error) {
	query :=
		`UPDATE guardians SET extension_count = extension_count + 1
		 WHERE owner = $1 AND guardian = $2
		 RETURNING extension_count`

	var count int
	err := r.db.QueryRowContext(ctx, query, owner, guardian).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) List(ctx context.Context, owner string) ([]models.Guardian, error) {
	query :=
		`SELECT owner, guardian, extension_count, created_at
		 FROM guardians
		 WHERE owner = $1
		 ORDER BY created_at, guardian`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Guardian
	for rows.Next() {
		var g models.Guardian
		if err := rows.Scan(&g.Owner, &g.Guardian, &g.ExtensionCount, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
