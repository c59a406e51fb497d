package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// A minimal fake driver that records transaction outcomes. Enough to
// exercise WithTx without a real database.

type fakeDriver struct {
	mu         sync.Mutex
	committed  int
	rolledBack int
}

type fakeConn struct{ d *fakeDriver }
type fakeTx struct{ d *fakeDriver }
type fakeStmt struct{}

func (d *fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{d: d}, nil }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return fakeStmt{}, nil }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return &fakeTx{d: c.d}, nil }

func (t *fakeTx) Commit() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.committed++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.rolledBack++
	return nil
}

func (fakeStmt) Close() error                                    { return nil }
func (fakeStmt) NumInput() int                                   { return 0 }
func (fakeStmt) Exec([]driver.Value) (driver.Result, error)      { return driver.RowsAffected(1), nil }
func (fakeStmt) Query([]driver.Value) (driver.Rows, error)       { return nil, errors.New("not implemented") }

var registerOnce sync.Once
var testDriver = &fakeDriver{}

func openFakeDB(t *testing.T) *sql.DB {
	t.Helper()
	registerOnce.Do(func() { sql.Register("dbxfake", testDriver) })
	db, err := sql.Open("dbxfake", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := openFakeDB(t)
	before := testDriver.committed

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM x`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, before+1, testDriver.committed)
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := openFakeDB(t)
	before := testDriver.rolledBack

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, before+1, testDriver.rolledBack)
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := openFakeDB(t)
	before := testDriver.rolledBack

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, before+1, testDriver.rolledBack)
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := openFakeDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err)
}
