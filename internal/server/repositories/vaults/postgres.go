package vaults

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

func (r *PostgresRepository) Create(ctx context.Context, owner string) error {
	query :=
		`INSERT INTO vaults (owner)
		 VALUES ($1)
		 ON CONFLICT (owner) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, owner); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner string) (*models.Vault, error) {
	query :=
		`SELECT owner, balance, message_hash, message_locator
		 FROM vaults
		 WHERE owner = $1`

	v := &models.Vault{}
	var hash, locator sql.NullString

	err := r.db.QueryRowContext(ctx, query, owner).Scan(&v.Owner, &v.Balance, &hash, &locator)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if hash.Valid && locator.Valid {
		v.Message = &models.Message{Hash: hash.String, Locator: locator.String}
	}

	return v, nil
}

func (r *PostgresRepository) AddBalance(ctx context.Context, owner string, delta int64) (int64, error) {
	query :=
		`UPDATE vaults SET balance = balance + $2, updated_at = now()
		 WHERE owner = $1
		 RETURNING balance`

	var balance int64
	err := r.db.QueryRowContext(ctx, query, owner, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return balance, nil
}

func (r *PostgresRepository) SetMessage(ctx context.Context, owner string, msg models.Message) error {
	query :=
		`UPDATE vaults SET message_hash = $2, message_locator = $3, updated_at = now()
		 WHERE owner = $1`

	res, err := r.db.ExecContext(ctx, query, owner, msg.Hash, msg.Locator)
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
