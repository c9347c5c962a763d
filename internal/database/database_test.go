package database_test

import (
	"testing"

	"katalog/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	db, err := database.Open("sqlite", "file:database_test?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"users", "tags", "attributes", "products", "product_tags", "product_attributes"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "")
	assert.ErrorContains(t, err, "unsupported database driver")
}
