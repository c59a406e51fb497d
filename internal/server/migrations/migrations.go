// Package migrations embeds the SQL migrations for the Postgres snapshot
// backend, applied through goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
