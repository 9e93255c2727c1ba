package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/yourusername/tryout-api/internal/config"
	pgRepo "github.com/yourusername/tryout-api/internal/repository/postgres"
	"github.com/yourusername/tryout-api/internal/service"
	"github.com/yourusername/tryout-api/pkg/database"
)

// Offline scoring runner: scores one package and exits. Used for reruns
// after manual data fixes, without going through the HTTP API.
//
//	DATABASE_HOST=... DATABASE_USER=... go run ./cmd/score-batch <package-id>
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <package-id>\n", os.Args[0])
		os.Exit(2)
	}

	packageID, err := strconv.ParseUint(os.Args[1], 10, 32)
	if err != nil || packageID == 0 {
		fmt.Fprintf(os.Stderr, "invalid package id %q\n", os.Args[1])
		os.Exit(2)
	}

	dbCfg := config.DatabaseConfig{
		Host:     envOr("DATABASE_HOST", "localhost"),
		Port:     envOr("DATABASE_PORT", "5432"),
		User:     envOr("DATABASE_USER", "postgres"),
		Password: os.Getenv("DATABASE_PASSWORD"),
		DBName:   envOr("DATABASE_DBNAME", "tryout_db"),
		SSLMode:  envOr("DATABASE_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresDB(dbCfg.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, errDB := database.GetSQLDB(db); errDB == nil {
			sqlDB.Close()
		}
	}()

	packageRepo := pgRepo.NewPackageRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	// No cache and no push channel in batch mode.
	scoringService := service.NewScoringService(packageRepo, resultRepo, nil, db, nil)

	result, err := scoringService.ScorePackage(context.Background(), uint(packageID))
	if err != nil {
		log.Fatalf("Scoring failed for package #%d: %v", packageID, err)
	}

	fmt.Printf("Package #%d scored: %d subtests, %d users ranked\n",
		result.PackageID, len(result.Subtests), len(result.Leaderboard))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
