package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/postgres"
	transactionRepo "marketplace/internal/repository/transaction"
	"marketplace/internal/service/migration"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

const usage = `usage: migrate-transactions <command>

commands:
  migrate    перевести легаси-транзакции на схему entity/action
  validate   сверить итог миграции, ненулевой код выхода при расхождениях
  rollback   восстановить легаси-вид по метаданным происхождения
`

func main() {
	if len(os.Args) != 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	command := os.Args[1]

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	err = run(context.Background(), appLogger, cfg, command)
	if err != nil {
		mainLog.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, command string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	repository := transactionRepo.New(querier.New(pool, pgxv5.DefaultCtxGetter))
	service := migration.New(repository, tx.New(pool))

	var report *migration.Report
	switch command {
	case "migrate":
		report, err = service.Migrate(ctx)
	case "validate":
		report, err = service.Validate(ctx)
	case "rollback":
		report, err = service.Rollback(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}

	if report != nil {
		printReport(command, report)
	}
	return err
}

func printReport(command string, report *migration.Report) {
	fmt.Printf("%s report:\n", command)
	fmt.Printf("  total:    %d\n", report.Total)
	fmt.Printf("  migrated: %d\n", report.Migrated)
	fmt.Printf("  skipped:  %d\n", report.Skipped)
	fmt.Printf("  failed:   %d\n", report.Failed)
	fmt.Printf("  restored: %d\n", report.Restored)

	if len(report.Mismatches) > 0 {
		fmt.Printf("  mismatches (%d):\n", len(report.Mismatches))
		for _, mismatch := range report.Mismatches {
			fmt.Printf("    - %s\n", mismatch)
		}
	}
}
