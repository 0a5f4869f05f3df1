package migrations

import "embed"

// FS contains the Postgres schema migrations.
//
//go:embed *.sql
var FS embed.FS
