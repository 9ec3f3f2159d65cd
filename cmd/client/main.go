package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/skillscope/internal/client"
	"github.com/MKhiriev/skillscope/internal/config"
	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/service"
	"github.com/MKhiriev/skillscope/internal/store"
	"github.com/MKhiriev/skillscope/internal/tui"
	"github.com/MKhiriev/skillscope/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("skillscope-client", cfg.Log.File)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.KV.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewClientServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, cfg.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, app, log); err != nil {
		fmt.Fprintf(os.Stderr, "skillscope: %v\n", err)
	}
}

func run(ctx context.Context, app client.Client, log *logger.Logger) error {
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	log.Info().Msg("client exited")
	return nil
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
