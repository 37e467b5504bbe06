// Package integrationtest provides db and server helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/cmd/httpserver"
	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/middleware"
	"github.com/go-petr/money-guard/internal/notifier"
	"github.com/go-petr/money-guard/internal/userrepo"
	"github.com/go-petr/money-guard/pkg/configpkg"
	"github.com/go-petr/money-guard/pkg/dbpkg"
	"github.com/go-petr/money-guard/pkg/passpkg"
)

// SetupServer returns test server over a migrated database that is flushed after the test.
func SetupServer(t *testing.T, configPath string, sink notifier.Sink) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load(configPath)
	if err != nil {
		t.Fatalf(`configpkg.Load(%q) returned error: %v`, configPath, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(db, logger, config, sink)
	if err != nil {
		t.Fatalf(`httpserver.New(db, logger, config, sink) returned error: %v`, err)
	}

	return server
}

// Flush truncates every application table, keeping the migration bookkeeping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables sql.NullString

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public' AND table_name <> 'schema_migrations';`

	if err := db.QueryRow(query).Scan(&tables); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if !tables.Valid {
		return
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables.String + " CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB connects to the database, applies migrations and flushes it after the test.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("db migration failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SeedUser stores a user with the given password.
func SeedUser(t *testing.T, db *sql.DB, username, email, password string) domain.User {
	t.Helper()

	hashed, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash() returned error: %v", err)
	}

	user, err := userrepo.NewRepoPGS(db).Create(context.Background(), domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashed,
		Email:          email,
	})
	if err != nil {
		t.Fatalf("seeding user %q failed: %v", username, err)
	}

	return user
}
