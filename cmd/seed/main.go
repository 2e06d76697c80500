package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go-dispo/internal/seeder"
	"go-dispo/internal/shared/connection"
	"go-dispo/internal/shift"
	"go-dispo/internal/shifttemplate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	startDate := flag.String("start", time.Now().Format("2006-01-02"), "first day to seed (YYYY-MM-DD)")
	weeks := flag.Int("weeks", 4, "number of weeks to seed")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	svc := seeder.NewService(
		shifttemplate.NewRepository(gormDB),
		shift.NewRepository(gormDB),
		logger,
	)

	result, err := svc.GenerateShiftInstances(context.Background(), *startDate, *weeks)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	for _, seedErr := range result.Errors {
		logger.Warn("row skipped",
			zap.String("template_id", seedErr.TemplateID),
			zap.String("date", seedErr.Date),
			zap.String("message", seedErr.Message),
		)
	}

	logger.Info("seed complete",
		zap.String("start", *startDate),
		zap.Int("weeks", *weeks),
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", len(result.Errors)),
	)
}
