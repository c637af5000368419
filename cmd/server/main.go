// Command server boots the order management engine and keeps it
// running until interrupted. The engine has no network surface of its
// own; embedding programs reach it through the internal/app container,
// and this binary exists to validate a deployment's configuration,
// schema version and wiring.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ims/backend/internal/app"
	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	migrate := flag.Bool("migrate", false, "apply pending schema migrations before starting")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init application:", err)
		os.Exit(1)
	}
	defer application.Close()

	if *migrate {
		migrator, err := migration.New(*source, cfg.Database.URL(), application.Log)
		if err != nil {
			application.Log.Fatal("init migrator", zap.Error(err))
		}
		if err := migrator.Up(); err != nil {
			application.Log.Fatal("apply migrations", zap.Error(err))
		}
		migrator.Close()
	}

	application.Log.Info("started",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("database", cfg.Database.Driver),
		zap.String("sequence_backend", cfg.Sequence.Backend),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	application.Log.Info("shutting down", zap.String("signal", sig.String()))
}
