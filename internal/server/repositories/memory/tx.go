package memory

import (
	"context"
	"database/sql/driver"
	"errors"
)

var errNoSQL = errors.New("memory: statements are not supported")

// connector opens connections whose transactions snapshot the store.
type connector struct{ s *store }

func (c *connector) Connect(context.Context) (driver.Conn, error) { return &conn{s: c.s}, nil }

func (c *connector) Driver() driver.Driver { return txDriver{} }

type txDriver struct{}

func (txDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("memory: use RepositoryManager.OpenDB")
}

type conn struct{ s *store }

func (c *conn) Prepare(string) (driver.Stmt, error) { return nil, errNoSQL }

func (c *conn) Close() error { return nil }

func (c *conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *conn) BeginTx(ctx context.Context, _ driver.TxOptions) (driver.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.s.tx.Lock()
	c.s.mu.Lock()
	snap := c.s.data.clone()
	c.s.mu.Unlock()
	return &tx{s: c.s, snap: snap}, nil
}

// Ping lets readiness checks succeed without a real database.
func (c *conn) Ping(context.Context) error { return nil }

type tx struct {
	s    *store
	snap data
}

func (t *tx) Commit() error {
	t.snap = data{}
	t.s.tx.Unlock()
	return nil
}

func (t *tx) Rollback() error {
	t.s.mu.Lock()
	t.s.data = t.snap
	t.s.mu.Unlock()
	t.s.tx.Unlock()
	return nil
}
