package tokens

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

func (r *PostgresRepository) Mint(ctx context.Context, switchOwner, holder string) (*models.Token, error) {
	query :=
		`INSERT INTO switch_tokens (switch_owner, holder)
		 VALUES ($1, $2)
		 RETURNING id, created_at`

	t := &models.Token{SwitchOwner: switchOwner, Holder: holder}
	if err := r.db.QueryRowContext(ctx, query, switchOwner, holder).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

const selectToken = `SELECT id, switch_owner, holder, created_at
		 FROM switch_tokens`

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Token, error) {
	return r.get(ctx, selectToken+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*models.Token, error) {
	return r.get(ctx, selectToken+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) GetBySwitch(ctx context.Context, switchOwner string) (*models.Token, error) {
	return r.get(ctx, selectToken+` WHERE switch_owner = $1`, switchOwner)
}

func (r *PostgresRepository) get(ctx context.Context, query string, arg any) (*models.Token, error) {
	t := &models.Token{}
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&t.ID, &t.SwitchOwner, &t.Holder, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) SetHolder(ctx context.Context, id int64, holder string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE switch_tokens SET holder = $2 WHERE id = $1`, id, holder)
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

func (r *PostgresRepository) LastID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM switch_tokens`).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}
