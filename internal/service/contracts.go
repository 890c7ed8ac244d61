package service

import (
	"context"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
)

// QuestionSource provides the full, unsampled question bank.
type QuestionSource interface {
	GetAll(ctx context.Context) ([]entities.QuestionRecord, error)
}
