package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGoose(t *testing.T, err error) *bool {
	t.Helper()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		return err
	}
	return &called
}

func TestNewPostgres_AppliesMigrations(t *testing.T) {
	called := stubGoose(t, nil)

	p, err := NewPostgres(context.Background(), "postgres://u:p@127.0.0.1:5432/gophtalk")
	require.NoError(t, err)
	assert.True(t, *called)
	require.NoError(t, p.Close())
}

func TestNewPostgres_MigrationFailure(t *testing.T) {
	stubGoose(t, errors.New("boom"))

	_, err := NewPostgres(context.Background(), "postgres://u:p@127.0.0.1:5432/gophtalk")
	assert.ErrorContains(t, err, "running migrations")
}
