// Command backfill marks a gym's historical payments as already synced so a
// fresh accounting integration starts from a chosen cutoff instead of
// exporting years of back catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/adapter/repository"
	"github.com/gymstack/accounting-service/internal/config"
	"github.com/gymstack/accounting-service/internal/infrastructure/database"
	"github.com/gymstack/accounting-service/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	var (
		gymIDFlag  = flag.String("gym", "", "gym id (UUID) to backfill")
		cutoffFlag = flag.String("cutoff", "", "mark payments created before this date as synced (YYYY-MM-DD)")
	)
	flag.Parse()

	if *gymIDFlag == "" || *cutoffFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: backfill -gym <uuid> -cutoff <YYYY-MM-DD>")
		os.Exit(2)
	}

	gymID, err := uuid.Parse(*gymIDFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid gym id: %v\n", err)
		os.Exit(2)
	}

	cutoff, err := time.Parse("2006-01-02", *cutoffFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid cutoff date: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Connect(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	payments := repository.NewPaymentRepository(db, log)

	count, err := payments.MarkSyncedBefore(context.Background(), gymID, cutoff)
	if err != nil {
		log.Fatal("Backfill failed", zap.Error(err))
	}

	fmt.Printf("marked %d payments as synced (gym %s, created before %s)\n",
		count, gymID, cutoff.Format("2006-01-02"))
}
