package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/client"
	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("go-pin-background")
	cfg, err := config.GetBackgroundConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	app, err := client.NewApp(ctx, cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init background app error")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("error closing background app")
		}
	}()

	log.Info().Str("address", app.Addr()).Str("build", info.String()).Msg("background started")
	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("background run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
