package postgres

import (
	"fmt"
	"io/fs"
	"testing"

	"linkvault/internal/repository/postgres/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgErrorHelpers(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsPgDuplicateError(dup))
	assert.False(t, IsPgDuplicateError(fk))
	assert.Equal(t, "users_email_key", PgConstraintName(dup))
	assert.Empty(t, PgConstraintName(pgx.ErrNoRows))

	assert.True(t, IsPgForeignKeyError(fk))
	assert.False(t, IsPgForeignKeyError(dup))

	assert.True(t, IsPgNoRowsError(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsPgNoRowsError(dup))
}

func TestIsValidID(t *testing.T) {
	assert.True(t, isValidID("7c9e6679-7425-40de-944b-e07fc1f90ae7"))
	assert.False(t, isValidID(""))
	assert.False(t, isValidID("64b7f0c2e1a2b3c4d5e6f789"))
}

func TestUserConstraintFields(t *testing.T) {
	assert.Equal(t, "username", userConstraintFields["users_username_key"])
	assert.Equal(t, "email", userConstraintFields["users_email_key"])
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	raw, err := fs.ReadFile(migrations.FS, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "-- +goose Up")
	assert.Contains(t, string(raw), "users_email_key")
}

func TestNewTableNames(t *testing.T) {
	tables := NewTableNames()
	assert.Equal(t, "users", tables.Users)
	assert.Equal(t, "folders", tables.Folders)
	assert.Equal(t, "links", tables.Links)
}
