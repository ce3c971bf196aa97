// Package store implements the persistence layer of the catalog: a database
// connection wrapper for PostgreSQL and SQLite, goose-driven migrations, and
// one repository per aggregate (users, planets, characters, starships,
// favorites). All repository SQL is built with squirrel so that placeholder
// syntax follows the active driver.
package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/migrations"
)

// DB wraps the raw connection with the driver name and a squirrel statement
// builder configured for that driver's placeholder format ($N for Postgres,
// ? for SQLite).
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func newStatementBuilder(driver string) sq.StatementBuilderType {
	if driver == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
