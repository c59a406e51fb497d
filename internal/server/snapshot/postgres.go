package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtalk/internal/common"
	"github.com/dmitrijs2005/gophtalk/internal/dbx"
	"github.com/dmitrijs2005/gophtalk/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Postgres persists the document in a single-row table. Save rewrites the
// row in full inside one transaction, which keeps the backend equivalent
// to the file snapshot: the last completed Save wins, nothing incremental.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens the database and applies the embedded migrations.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Save(ctx context.Context, data []byte) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM directory_snapshot WHERE id = 1`); err != nil {
			return fmt.Errorf("clearing snapshot row: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO directory_snapshot (id, data, updated_at) VALUES (1, $1, now())`, data); err != nil {
			return fmt.Errorf("inserting snapshot row: %w", err)
		}
		return nil
	})
}

func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	row := p.db.QueryRowContext(ctx, `SELECT data FROM directory_snapshot WHERE id = 1`)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("reading snapshot row: %w", err)
	}
	return data, nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
