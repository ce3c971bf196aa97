package handler

import (
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/config"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/handler/http"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
