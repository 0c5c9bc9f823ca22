package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-bookshelf/internal/client"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var app client.Client = client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		logger.NewConsoleLogger("go-bookshelf-client", os.Stderr, false).
			Fatal().Err(err).Msg("command failed")
	}
}
