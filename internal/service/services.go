// Package service contains the catalog access layer: all validation,
// lookup ordering and error classification between the HTTP handlers and the
// repositories. The per-entry-point uniqueness keys and the legacy error
// conflations live here, behind interfaces the handlers depend on.
package service

import (
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/config"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
)

type Services struct {
	AuthService     AuthService
	CatalogService  CatalogService
	FavoriteService FavoriteService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(storages.Users, cfg.Auth, logger),
		CatalogService: NewCatalogService(
			storages.Users, storages.Planets, storages.Characters, storages.Starships, logger),
		FavoriteService: NewFavoriteService(
			storages.Users, storages.Planets, storages.Characters, storages.Starships, storages.Favorites, logger),
		AppInfoService: appInfoService,
	}, nil
}
