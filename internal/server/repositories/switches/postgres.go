package switches

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

func (r *PostgresRepository) Create(ctx context.Context, s *models.Switch) error {
	query :=
		`INSERT INTO switches (owner, check_interval, grace_period, last_check_in)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (owner) DO NOTHING
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, s.Owner, s.Interval, s.GracePeriod, s.LastCheckIn).Scan(&s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

const selectSwitch = `SELECT owner, check_interval, grace_period, last_check_in, triggered, triggered_at, created_at
		 FROM switches
		 WHERE owner = $1`

func (r *PostgresRepository) Get(ctx context.Context, owner string) (*models.Switch, error) {
	return r.get(ctx, selectSwitch, owner)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, owner string) (*models.Switch, error) {
	return r.get(ctx, selectSwitch+` FOR UPDATE`, owner)
}

func (r *PostgresRepository) get(ctx context.Context, query string, owner string) (*models.Switch, error) {
	s := &models.Switch{}
	var triggeredAt sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, owner).Scan(
		&s.Owner, &s.Interval, &s.GracePeriod, &s.LastCheckIn, &s.Triggered, &triggeredAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if triggeredAt.Valid {
		h := triggeredAt.Int64
		s.TriggeredAt = &h
	}

	return s, nil
}

func (r *PostgresRepository) UpdateCheckIn(ctx context.Context, owner string, height int64) error {
	query :=
		`UPDATE switches SET last_check_in = $2
		 WHERE owner = $1`

	return r.execOne(ctx, query, owner, height)
}

func (r *PostgresRepository) MarkTriggered(ctx context.Context, owner string, height int64) error {
	query :=
		`UPDATE switches SET triggered = TRUE, triggered_at = $2
		 WHERE owner = $1 AND NOT triggered`

	return r.execOne(ctx, query, owner, height)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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

func (r *PostgresRepository) ListDue(ctx context.Context, height int64, limit int) ([]string, error) {
	query :=
		`SELECT owner FROM switches
		 WHERE NOT triggered AND last_check_in + check_interval + grace_period <= $1
		 ORDER BY last_check_in + check_interval + grace_period, owner
		 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, height, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return owners, nil
}
