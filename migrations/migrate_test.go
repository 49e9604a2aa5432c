// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first statement goose sends fails
	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.ErrorIs(t, err, ErrNilDB)
}

func TestEmbeddedSchema(t *testing.T) {
	raw, err := fs.ReadFile(embedMigrations, "00001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "-- +goose Up")
	assert.Contains(t, schema, "-- +goose Down")
	for _, table := range []string{"users", "files", "share_links"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
	// the reaper relies on these
	assert.Contains(t, schema, "ON DELETE CASCADE")
	assert.True(t, strings.Contains(schema, "token              VARCHAR(255) NOT NULL UNIQUE"))
}
