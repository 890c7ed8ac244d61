package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
	"github.com/aliskhannn/amateur-radio-quiz/internal/infra/postgres"
)

// Runs against a disposable database named by TEST_DATABASE_URL.
func TestQuestionRepository_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 2})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	records := []entities.QuestionRecord{
		{
			ID:       "B-001-001-001",
			Category: "001",
			Prompt:   map[entities.Language]string{entities.LangEnglish: "en", entities.LangFrench: "fr"},
			Answers: map[entities.Language][]string{
				entities.LangEnglish: {"a", "b", "c", "d"},
				entities.LangFrench:  {"e", "f", "g", "h"},
			},
		},
		{
			ID:       "B-002-001-001",
			Category: "002",
			Prompt:   map[entities.Language]string{entities.LangEnglish: "en2", entities.LangFrench: "fr2"},
			Answers: map[entities.Language][]string{
				entities.LangEnglish: {"a", "b", "c", "d"},
				entities.LangFrench:  {"e", "f", "g", "h"},
			},
		},
	}

	// Everything happens in a transaction that is rolled back.
	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer func(tx pgx.Tx) { _ = tx.Rollback(ctx) }(tx)

	repo := NewQuestionRepository(tx, nil)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if _, err := repo.DeleteMissing(ctx, []string{}); err != nil {
		t.Fatalf("DeleteMissing: %v", err)
	}
	if err := repo.UpsertMany(ctx, records); err != nil {
		t.Fatalf("UpsertMany: %v", err)
	}
	if err := repo.UpsertMany(ctx, records[:1]); err != nil {
		t.Fatalf("UpsertMany again: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != 2 || got[0].ID != "B-001-001-001" || got[1].Category != "002" {
		t.Fatalf("GetAll = %+v", got)
	}
	if got[0].CorrectAnswer(entities.LangFrench) != "e" {
		t.Errorf("french correct answer = %q", got[0].CorrectAnswer(entities.LangFrench))
	}

	removed, err := repo.DeleteMissing(ctx, []string{"B-002-001-001"})
	if err != nil || removed != 1 {
		t.Fatalf("DeleteMissing = %d, %v", removed, err)
	}
}
