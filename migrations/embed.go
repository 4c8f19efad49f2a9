// Package migrations embeds the goose SQL migrations so the binary can
// bring a fresh database up to date without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
