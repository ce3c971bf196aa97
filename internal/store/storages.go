package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/config"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
)

// Storages bundles all repositories behind their interfaces for injection
// into the service layer. Nothing outside this package touches the database
// connection directly.
type Storages struct {
	Users      UserRepository
	Planets    PlanetRepository
	Characters CharacterRepository
	Starships  StarshipRepository
	Favorites  FavoriteRepository
}

// NewStorages connects to the configured database, applies migrations, and
// constructs every repository. A "postgres://" or "postgresql://" DSN selects
// the pgx driver; any other value is treated as a SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		Users:      NewUserRepository(db, log),
		Planets:    NewPlanetRepository(db, log),
		Characters: NewCharacterRepository(db, log),
		Starships:  NewStarshipRepository(db, log),
		Favorites:  NewFavoriteRepository(db, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
