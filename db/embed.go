// Package db embeds the SQL migrations so production builds carry the
// schema with the binary (build with -tags embed_migrations).
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
