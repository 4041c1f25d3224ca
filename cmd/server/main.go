package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	myHTTP "github.com/MKhiriev/go-gate-keeper/internal/handler/http"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/server"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	log := logger.NewLogger("gate-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("extractor_url", cfg.Extractor.BaseURL).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	vectorKey, err := cfg.VectorKeyBytes()
	if err != nil {
		log.Fatal().Err(err).Msg("error decoding vector key")
	}

	cipher, err := crypto.NewVectorCipher(vectorKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vector cipher")
	}

	extractor := biometric.NewRESTExtractor(biometric.ExtractorConfig{
		BaseURL: cfg.Extractor.BaseURL,
		Timeout: cfg.Extractor.Timeout,
	})

	services := service.NewServices(storages, extractor, cipher, cfg, log)

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
