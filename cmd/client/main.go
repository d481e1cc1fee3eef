package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log, closeLog := logger.NewClientLogger("note-keeper-client", "")
	defer closeLog()

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create server adapter:", err)
		return 1
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open local session store:", err)
		return 1
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	var app client.Client = client.NewApp(services, log, client.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
	if err = app.Run(ctx, args); err != nil {
		log.Debug().Err(err).Msg("client run error")
		return 1
	}
	return 0
}
