// Package migrations embebe las migraciones SQL de goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
