package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/config"
	"github.com/aliskhannn/amateur-radio-quiz/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/amateur-radio-quiz/internal/infra/postgres/repository"
	"github.com/aliskhannn/amateur-radio-quiz/internal/logger"
	"github.com/aliskhannn/amateur-radio-quiz/internal/repository"
)

func main() {
	prune := flag.Bool("prune", false, "Delete stored questions that are not in the file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg, *prune); err != nil {
		lg.Error("import failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger, prune bool) error {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	records, err := repository.NewFileQuestionRepository(cfg.Questions.Path, lg).GetAll(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("question file has no usable records")
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	var removed int64
	err = postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := pgrepo.NewQuestionRepository(tx, lg)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		if err := repo.UpsertMany(ctx, records); err != nil {
			return err
		}
		if !prune {
			return nil
		}

		ids := make([]string, 0, len(records))
		for _, r := range records {
			ids = append(ids, r.ID)
		}
		n, err := repo.DeleteMissing(ctx, ids)
		removed = n
		return err
	})
	if err != nil {
		return err
	}

	stored, err := pgrepo.NewQuestionRepository(pool, lg).Count(ctx)
	if err != nil {
		return err
	}

	lg.Info("questions imported",
		zap.String("path", cfg.Questions.Path),
		zap.Int("records", len(records)),
		zap.Int64("removed", removed),
		zap.Int("stored", stored),
	)

	return nil
}
