package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/avoskresensky/sealnote/internal/adapter"
	"github.com/avoskresensky/sealnote/internal/client"
	"github.com/avoskresensky/sealnote/internal/config"
	"github.com/avoskresensky/sealnote/internal/logger"
	"github.com/avoskresensky/sealnote/internal/service"
	"github.com/avoskresensky/sealnote/internal/store"
	"github.com/avoskresensky/sealnote/internal/tui"
	"github.com/avoskresensky/sealnote/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sealnote-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPNoteServerAdapter(cfg.Adapter, localStorage.Credentials, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create note server adapter")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg.App, log)
	ui := tui.New(services, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background(), flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
