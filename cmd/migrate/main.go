package main

import (
	"flag"
	"os"

	"starwars-api/config"
	"starwars-api/internal/database"
	"starwars-api/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Run the migrations")
	resetFlag := flag.Bool("reset", false, "Drop all tables before migrating")
	seedFlag := flag.Bool("seed", false, "Load the bundled fixture data")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	log, err := logger.New(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer log.Sync()

	if !*migrateFlag && !*resetFlag && !*seedFlag {
		flag.Usage()
		os.Exit(2)
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	log.Info("Connected to database")

	if *resetFlag {
		log.Info("Resetting database...")
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to drop tables", zap.Error(err))
		}
	}

	// Reset and seed both need the schema in place afterwards.
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate", zap.Error(err))
	}
	log.Info("Migrations completed")

	if *seedFlag {
		res, err := database.Seed(db)
		if err != nil {
			log.Fatal("Failed to seed", zap.Error(err))
		}
		log.Info("Seed completed",
			zap.Int("users", res.Users),
			zap.Int("planets", res.Planets),
			zap.Int("characters", res.Characters))
	}
}
