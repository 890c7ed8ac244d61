package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
)

var ErrFileUnreadable = errors.New("question file is missing or unreadable")

// FileQuestionRepository loads the question bank from a ';' delimited text file.
// The file is read on every GetAll call so edits are picked up by the next session.
type FileQuestionRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileQuestionRepository creates a repository reading questions from path.
func NewFileQuestionRepository(path string, logger *zap.Logger) *FileQuestionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileQuestionRepository{
		path:   path,
		logger: logger,
	}
}

// GetAll parses every valid record of the file. Malformed lines are skipped.
func (r *FileQuestionRepository) GetAll(ctx context.Context) ([]entities.QuestionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", r.path, ErrFileUnreadable, err)
	}
	defer f.Close()

	records, skipped, err := ParseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", r.path, ErrFileUnreadable, err)
	}

	r.logger.Debug("question file parsed",
		zap.String("path", r.path),
		zap.Int("records", len(records)),
		zap.Int("skipped_lines", skipped),
	)

	return records, nil
}
