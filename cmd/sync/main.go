// Command sync mirrors the university timetable feeds into the local
// database. It is meant to run from cron or by hand, one subcommand per
// feed: groups, classrooms, teachers, or all.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sippec/config"
	"sippec/internal/infra/auth"
	logs "sippec/internal/infra/log"
	"sippec/internal/infra/persistence/postgres"
	"sippec/internal/infra/timetable"
	"sippec/internal/usecase"
	"sippec/internal/usecase/impl"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <groups|classrooms|teachers|all>\n", os.Args[0])
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(2)
	}
	subcommand := os.Args[1]
	switch subcommand {
	case "groups", "classrooms", "teachers", "all":
	default:
		usage()
		os.Exit(2)
	}

	if err := run(context.Background(), subcommand); err != nil {
		slog.Error("Sync failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, subcommand string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	client, err := timetable.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	syncService := impl.NewSyncService(impl.SyncServiceParams{
		TxManager:     postgres.NewTransactionManager(db),
		ClassroomRepo: postgres.NewClassroomRepository(db),
		Timetable:     client,
		Hasher:        auth.NewBcryptHasher(cfg),
		Logger:        logger,
	})

	type step struct {
		name string
		run  func(context.Context) (*usecase.SyncResult, error)
	}

	var steps []step
	if subcommand == "groups" || subcommand == "all" {
		steps = append(steps, step{"groups", syncService.SyncGroups})
	}
	if subcommand == "classrooms" || subcommand == "all" {
		steps = append(steps, step{"classrooms", syncService.SyncClassrooms})
	}
	if subcommand == "teachers" || subcommand == "all" {
		steps = append(steps, step{"teachers", syncService.SyncTeachers})
	}

	for _, s := range steps {
		result, err := s.run(ctx)
		if err != nil {
			return fmt.Errorf("sync %s: %w", s.name, err)
		}
		logger.Info("Sync finished",
			slog.String("feed", s.name),
			slog.Int("fetched", result.Fetched),
			slog.Int("imported", result.Imported),
			slog.Int("skipped", result.Skipped),
		)
	}

	return nil
}
