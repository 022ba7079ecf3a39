package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/config"
	"github.com/pageza/healthscan/backend/internal/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&config.Config{DBDriver: "sqlite", SQLitePath: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	return db
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	db := openSQLite(t)
	assert.NoError(t, HealthCheck(context.Background(), db))

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
}

func TestUniqueEmailIsReportedAsViolation(t *testing.T) {
	db := openSQLite(t)

	first := models.User{ID: uuid.New(), Name: "A", Email: "dup@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&first).Error)

	second := models.User{ID: uuid.New(), Name: "B", Email: "dup@example.com", PasswordHash: "y"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolationPostgresCode(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(assert.AnError))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDSNDefaultsSSLMode(t *testing.T) {
	dsn := DSN(&config.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", dsn)
}

func TestRedisOptionsPrefersURL(t *testing.T) {
	opts, err := RedisOptions(&config.Config{RedisURL: "redis://:pw@cache:6380/2", RedisHost: "ignored", RedisPort: "1"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = RedisOptions(&config.Config{RedisHost: "localhost", RedisPort: "6379", RedisDB: 1})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)
}
