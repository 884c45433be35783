// Package migrations embeds the combat log schema for goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
