package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
	"github.com/aliskhannn/amateur-radio-quiz/internal/infra/postgres"
)

var schema = []string{`
	CREATE TABLE IF NOT EXISTS questions (
		id         TEXT PRIMARY KEY,
		category   TEXT NOT NULL,
		prompt_en  TEXT NOT NULL,
		prompt_fr  TEXT NOT NULL,
		answers_en TEXT[] NOT NULL,
		answers_fr TEXT[] NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS questions_category_idx ON questions (category)`,
}

// QuestionRepository stores the question bank in PostgreSQL.
// Only the bank lives here; quiz sessions are never persisted.
type QuestionRepository struct {
	db     postgres.DBTX
	logger *zap.Logger
}

// NewQuestionRepository creates a new QuestionRepository on top of a pool or a transaction.
func NewQuestionRepository(db postgres.DBTX, logger *zap.Logger) *QuestionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionRepository{db: db, logger: logger}
}

// EnsureSchema creates the questions table if it does not exist yet.
func (r *QuestionRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure questions schema: %w", err)
		}
	}
	return nil
}

// GetAll returns every stored question ordered by id.
// Rows without four answers per language are skipped.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]entities.QuestionRecord, error) {
	query := `
		SELECT id, category, prompt_en, prompt_fr, answers_en, answers_fr
		FROM questions
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	defer rows.Close()

	var (
		records []entities.QuestionRecord
		skipped int
	)
	for rows.Next() {
		var (
			rec                  entities.QuestionRecord
			promptEN, promptFR   string
			answersEN, answersFR []string
		)
		if err := rows.Scan(&rec.ID, &rec.Category, &promptEN, &promptFR, &answersEN, &answersFR); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}

		if len(answersEN) != entities.AnswersPerQuestion || len(answersFR) != entities.AnswersPerQuestion {
			skipped++
			continue
		}

		rec.Prompt = map[entities.Language]string{
			entities.LangEnglish: promptEN,
			entities.LangFrench:  promptFR,
		}
		rec.Answers = map[entities.Language][]string{
			entities.LangEnglish: answersEN,
			entities.LangFrench:  answersFR,
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	if skipped > 0 {
		r.logger.Warn("skipped malformed question rows", zap.Int("skipped", skipped))
	}

	return records, nil
}

// UpsertMany inserts or replaces the given records in one batch.
func (r *QuestionRepository) UpsertMany(ctx context.Context, records []entities.QuestionRecord) error {
	query := `
		INSERT INTO questions (id, category, prompt_en, prompt_fr, answers_en, answers_fr, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE
		SET category = EXCLUDED.category,
		    prompt_en = EXCLUDED.prompt_en,
		    prompt_fr = EXCLUDED.prompt_fr,
		    answers_en = EXCLUDED.answers_en,
		    answers_fr = EXCLUDED.answers_fr,
		    updated_at = now()
	`

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			query,
			rec.ID,
			rec.Category,
			rec.Prompt[entities.LangEnglish],
			rec.Prompt[entities.LangFrench],
			rec.Answers[entities.LangEnglish],
			rec.Answers[entities.LangFrench],
		)
	}

	results := r.db.SendBatch(ctx, batch)
	for _, rec := range records {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("upsert question %s: %w", rec.ID, err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("close upsert batch: %w", err)
	}

	return nil
}

// DeleteMissing removes stored questions whose id is not in keep.
func (r *QuestionRepository) DeleteMissing(ctx context.Context, keep []string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE NOT (id = ANY($1))`, keep)
	if err != nil {
		return 0, fmt.Errorf("delete missing questions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
