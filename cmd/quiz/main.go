package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/config"
	"github.com/aliskhannn/amateur-radio-quiz/internal/delivery/terminal"
	"github.com/aliskhannn/amateur-radio-quiz/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/amateur-radio-quiz/internal/infra/postgres/repository"
	"github.com/aliskhannn/amateur-radio-quiz/internal/logger"
	"github.com/aliskhannn/amateur-radio-quiz/internal/repository"
	"github.com/aliskhannn/amateur-radio-quiz/internal/service"
)

func main() {
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

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("quiz failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	// Initialize the question source.
	var source service.QuestionSource
	switch cfg.Questions.Source {
	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()
		source = pgrepo.NewQuestionRepository(pool, lg)
	default:
		source = repository.NewFileQuestionRepository(cfg.Questions.Path, lg)
	}

	quizService := service.NewQuizService(source, service.NewRand(cfg.Quiz.Seed), lg)

	session, err := quizService.BuildSession(ctx, cfg.Quiz.TargetCount, cfg.Quiz.Stratify)
	if err != nil {
		return err
	}

	handler := terminal.NewHandler(
		os.Stdin,
		os.Stdout,
		session,
		service.NewStopwatch(),
		lg,
		terminal.Options{TimerInTitle: cfg.UI.TimerInTitle},
	)
	return handler.Run(ctx)
}
