package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"roam/internal/adapters/google"
	"roam/internal/adapters/profilestore"
	"roam/internal/cli"
	"roam/internal/config"
	"roam/internal/domain"
	"roam/internal/ports"
	"roam/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (JSON profile stores, the Maps Platform
// client) behind ports and hands the assembled app to the command tree.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "roam:", err)
		os.Exit(1)
	}

	garage := profilestore.NewGarageStore(cfg.ConfigDir)
	places := profilestore.NewPlaceStore(cfg.ConfigDir)

	app := &cli.App{
		Config:   cfg,
		Garage:   garage,
		Places:   places,
		Composer: services.NewComposer(garage, places),
		NewProvider: func(apiKey string) (ports.RouteProvider, error) {
			return google.NewClient(apiKey)
		},
		Out: os.Stdout,
		Now: time.Now,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "roam:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes usage-class failures from operational ones.
func exitCode(err error) int {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return 2
	}
	return 1
}
