// Package migrations embeds the postgres schema
package migrations

import "embed"

// FS holds the numbered up/down files under sql/
//
//go:embed sql/*.sql
var FS embed.FS

// Dir is the directory inside FS that holds the files
const Dir = "sql"
