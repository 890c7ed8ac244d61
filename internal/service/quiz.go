package service

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
	"github.com/aliskhannn/amateur-radio-quiz/internal/repository"
)

// QuizService builds quiz sessions out of a question source.
type QuizService struct {
	source  QuestionSource
	builder *BankBuilder
	rng     *rand.Rand
	logger  *zap.Logger
}

// NewQuizService creates a QuizService. rng drives both exam sampling and answer
// shuffling; pass a seeded one for reproducible exams.
func NewQuizService(source QuestionSource, rng *rand.Rand, logger *zap.Logger) *QuizService {
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuizService{
		source:  source,
		builder: NewBankBuilder(rng),
		rng:     rng,
		logger:  logger,
	}
}

// BuildSession loads the question bank, samples an exam of about targetCount
// questions and starts a session over it. It returns ErrEmptyBank when no
// question survives parsing and sampling.
func (s *QuizService) BuildSession(ctx context.Context, targetCount int, stratify bool) (*entities.QuizSession, error) {
	records, err := s.source.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	selected := s.builder.Build(records, targetCount, stratify)
	if len(selected) == 0 {
		s.logger.Warn("question bank is empty",
			zap.Int("records", len(records)),
			zap.Int("target_count", targetCount),
		)
		return nil, ErrEmptyBank
	}

	session := entities.NewQuizSession(selected, s.rng)

	s.logger.Info("quiz session built",
		zap.String("session_id", session.ID),
		zap.Int("records", len(records)),
		zap.Int("categories", len(Categories(records))),
		zap.Int("target_count", targetCount),
		zap.Bool("stratify", stratify),
		zap.Int("selected", len(selected)),
	)

	return session, nil
}

// BuildSessionFromFile builds a session straight from a question file.
func BuildSessionFromFile(
	ctx context.Context,
	path string,
	targetCount int,
	stratify bool,
	rng *rand.Rand,
	logger *zap.Logger,
) (*entities.QuizSession, error) {
	repo := repository.NewFileQuestionRepository(path, logger)
	return NewQuizService(repo, rng, logger).BuildSession(ctx, targetCount, stratify)
}
