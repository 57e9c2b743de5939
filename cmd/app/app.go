package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/moimlab/survey-api/internal/api"
	"github.com/moimlab/survey-api/internal/config"
	"github.com/moimlab/survey-api/internal/db"
	"github.com/moimlab/survey-api/internal/logger"
	"github.com/moimlab/survey-api/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	// Seed the restaurant catalog on first boot. Skipped when any row exists.
	seeded, err := dao.NewRestaurantDAO(postgresDB).EnsureSeeded(dao.SampleRestaurants)
	if err != nil {
		return fmt.Errorf("failed to seed restaurants -> %w", err)
	}
	if seeded {
		zap.L().Info("seeded restaurant catalog", zap.Int("rows", len(dao.SampleRestaurants)))
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
