package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/config"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/handler"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/server"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/service"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine; the environment may carry everything
	_ = godotenv.Load()

	log := logger.NewLogger("starwars-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
