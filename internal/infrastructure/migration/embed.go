package migration

import "embed"

// Scripts are MySQL DDL. SQLite databases are migrated from the gorm models.

//go:embed scripts/goose/*.sql
var gooseScripts embed.FS

//go:embed scripts/migrate/*.sql
var migrateScripts embed.FS

const (
	gooseDir   = "scripts/goose"
	migrateDir = "scripts/migrate"
)
