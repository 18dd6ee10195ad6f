package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

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
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), client.Usage())
		fmt.Fprintln(flag.CommandLine.Output(), "\nflags:")
		flag.PrintDefaults()
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("go-pin-client", cfg.LogFile)

	ctx := context.Background()
	app, err := client.NewOptionsApp(ctx, cfg, info, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err = run(ctx, app, flag.Args()); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrMissingArgument) {
			flag.Usage()
		}
		_ = app.Close()
		os.Exit(1)
	}

	_ = app.Close()
}

func run(ctx context.Context, app *client.OptionsApp, args []string) error {
	if len(args) == 0 {
		return app.Run(ctx)
	}
	return app.Exec(ctx, args, os.Stdout)
}
