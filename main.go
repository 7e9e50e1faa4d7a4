// @title EDUCONEXA API
// @version 1.0
// @description Courses, lessons, progress, certificates and the community feed of the EDUCONEXA platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name educonexa_session

package main

import (
	"educonexa_backend/internal/app"
	"educonexa_backend/internal/config"
	"educonexa_backend/pkg/logger"
	"flag"
	"log"
)

const configDir = "configs"

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "migrate the database schema and exit")
	migrate := flag.Bool("migrate", false, "migrate on startup even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	if cfg.MigrateOnly {
		if err := app.RunMigrations(cfg); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migrated, exiting")
		return
	}

	application, err := app.NewApp(cfg, configDir)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer logger.Log.Sync()

	application.Run()
}
