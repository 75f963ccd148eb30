package migration

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/doramashorts/backend/internal/shared/logger"
)

func TestNewStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	s, err := NewStrategy(StrategyGoose, "sqlite", log)
	require.NoError(t, err)
	assert.Equal(t, StrategyAutoMigrate, s.Name())

	s, err = NewStrategy("", "mysql", log)
	require.NoError(t, err)
	assert.Equal(t, StrategyGoose, s.Name())

	s, err = NewStrategy(StrategyGolangMigrate, "mysql", log)
	require.NoError(t, err)
	assert.Equal(t, StrategyGolangMigrate, s.Name())

	_, err = NewStrategy("flyway", "mysql", log)
	assert.Error(t, err)
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "m.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	s := NewAutoMigrateStrategy(logger.NewNopLogger())
	require.NoError(t, s.Up(context.Background(), db))

	for _, table := range []string{"users", "videos", "subscriptions", "purchases"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("subscriptions", "uk_subscriptions_non_terminal"))
	assert.True(t, db.Migrator().HasIndex("purchases", "uk_purchases_paid_key"))

	assert.Error(t, s.Down(context.Background(), db, 1))
}

func TestEmbeddedScriptsAreConsistent(t *testing.T) {
	gooseFiles, err := fs.Glob(gooseScripts, gooseDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, gooseFiles)

	ups, err := fs.Glob(migrateScripts, migrateDir+"/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrateScripts, migrateDir+"/*.down.sql")
	require.NoError(t, err)
	assert.Len(t, ups, len(gooseFiles))
	assert.Len(t, downs, len(ups))

	for _, f := range gooseFiles {
		body, err := fs.ReadFile(gooseScripts, f)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), f)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), f)
	}
}
