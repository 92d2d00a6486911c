package migrations

import "embed"

// FS holds the SQL migrations, one directory per backend.
//
//go:embed sqlite/*.sql
var FS embed.FS
