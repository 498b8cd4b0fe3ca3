package beneficiariesv2

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

func (r *PostgresRepository) GetList(ctx context.Context, owner string) (*models.BeneficiaryList, error) {
	query :=
		`SELECT owner, entry_count, total_percentage
		 FROM beneficiary_lists
		 WHERE owner = $1`

	return r.scanList(r.db.QueryRowContext(ctx, query, owner))
}

func (r *PostgresRepository) EnsureList(ctx context.Context, owner string) (*models.BeneficiaryList, error) {
	// The no-op update makes RETURNING yield the existing row on conflict.
	query :=
		`INSERT INTO beneficiary_lists (owner)
		 VALUES ($1)
		 ON CONFLICT (owner) DO UPDATE SET owner = EXCLUDED.owner
		 RETURNING owner, entry_count, total_percentage`

	return r.scanList(r.db.QueryRowContext(ctx, query, owner))
}

func (r *PostgresRepository) scanList(row *sql.Row) (*models.BeneficiaryList, error) {
	l := &models.BeneficiaryList{}
	if err := row.Scan(&l.Owner, &l.Count, &l.TotalPercentage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) UpdateList(ctx context.Context, l *models.BeneficiaryList) error {
	query :=
		`UPDATE beneficiary_lists SET entry_count = $2, total_percentage = $3
		 WHERE owner = $1`

	res, err := r.db.ExecContext(ctx, query, l.Owner, l.Count, l.TotalPercentage)
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

func (r *PostgresRepository) Insert(ctx context.Context, owner string, position int, b models.Beneficiary) error {
	query :=
		`INSERT INTO beneficiary_entries (owner, position, recipient, percentage)
		 VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, owner, position, b.Recipient, b.Percentage); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner string, position int) (*models.Beneficiary, error) {
	query :=
		`SELECT recipient, percentage
		 FROM beneficiary_entries
		 WHERE owner = $1 AND position = $2`

	b := &models.Beneficiary{}
	if err := r.db.QueryRowContext(ctx, query, owner, position).Scan(&b.Recipient, &b.Percentage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner string, position int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM beneficiary_entries WHERE owner = $1 AND position = $2`, owner, position)
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

	// The primary key is deferred, so the shift may pass through duplicates.
	query :=
		`UPDATE beneficiary_entries SET position = position - 1
		 WHERE owner = $1 AND position > $2`

	if _, err := r.db.ExecContext(ctx, query, owner, position); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, owner string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM beneficiary_entries WHERE owner = $1`, owner); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Range(ctx context.Context, owner string, offset, limit int) ([]models.Beneficiary, error) {
	query :=
		`SELECT recipient, percentage
		 FROM beneficiary_entries
		 WHERE owner = $1
		 ORDER BY position
		 OFFSET $2 LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, owner, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]models.Beneficiary, 0, limit)
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
