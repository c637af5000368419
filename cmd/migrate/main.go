// Command migrate applies or rolls back the database schema.
//
//	migrate -config config.yaml up
//	migrate -config config.yaml down
//	migrate -config config.yaml version
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/infrastructure/logger"
	"github.com/ims/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	migrator, err := migration.New(*source, cfg.Database.URL(), log)
	if err != nil {
		log.Fatal("init migrator", zap.Error(err))
	}
	defer migrator.Close()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = migrator.Version()
		if err == nil {
			log.Info("migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		log.Fatal("unknown command", zap.String("command", command))
	}
	if err != nil {
		log.Fatal("migration failed", zap.String("command", command), zap.Error(err))
	}
}
