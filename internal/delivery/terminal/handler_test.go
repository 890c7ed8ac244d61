package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
	"github.com/aliskhannn/amateur-radio-quiz/internal/service"
)

// identity keeps answers in source order, so slot 1 is always correct.
type identity struct{}

func (identity) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func record(id string) entities.QuestionRecord {
	return entities.QuestionRecord{
		ID:       id,
		Category: id[2:5],
		Prompt: map[entities.Language]string{
			entities.LangEnglish: "Which band?",
			entities.LangFrench:  "Quelle bande?",
		},
		Answers: map[entities.Language][]string{
			entities.LangEnglish: {"2 m", "3 m", "4 m", "5 m"},
			entities.LangFrench:  {"2 m fr", "3 m fr", "4 m fr", "5 m fr"},
		},
	}
}

func run(t *testing.T, session *entities.QuizSession, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(input), &out, session, service.NewStopwatch(), nil, Options{})
	err := h.Run(context.Background())
	return out.String(), err
}

func TestHandler_FullExam(t *testing.T) {
	session := entities.NewQuizSession([]entities.QuestionRecord{record("B-001-001-001"), record("B-002-001-001")}, identity{})

	out, err := run(t, session, "1\n\n3\n\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"B-001-001-001 : \nQuelle bande?",
		"  1) 2 m fr",
		"  4) 5 m",
		"Exacte! La réponse était: 2 m fr",
		"Correct! The answer was: 2 m",
		"Incorrect! The correct answer was: 2 m",
		"Répondues - Answered: 2/2",
		"Your score: 1/2 (50.00%)",
		msgFailed,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q\n%s", want, out)
		}
	}
	if session.State() != entities.StateFinished {
		t.Errorf("State = %s", session.State())
	}
}

func TestHandler_RepromptsWithoutSelection(t *testing.T) {
	session := entities.NewQuizSession([]entities.QuestionRecord{record("B-001-001-001")}, identity{})

	out, err := run(t, session, "\nabc\n9\n1\n\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := strings.Count(out, msgChooseAnswer); n != 3 {
		t.Errorf("choose-answer message shown %d times, want 3", n)
	}
	if !strings.Contains(out, "Your score: 1/1 (100.00%)") || !strings.Contains(out, msgPassed) {
		t.Errorf("unexpected result:\n%s", out)
	}
}

func TestHandler_Quit(t *testing.T) {
	session := entities.NewQuizSession([]entities.QuestionRecord{record("B-001-001-001")}, identity{})

	out, err := run(t, session, "q\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, msgQuit) {
		t.Errorf("quit message missing:\n%s", out)
	}
	if session.State() != entities.StatePresenting {
		t.Errorf("State = %s", session.State())
	}
}

func TestHandler_InputClosed(t *testing.T) {
	session := entities.NewQuizSession([]entities.QuestionRecord{record("B-001-001-001")}, identity{})

	out, err := run(t, session, "2\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, msgInputClosed) {
		t.Errorf("input closed message missing:\n%s", out)
	}
}

func TestHandler_EmptySession(t *testing.T) {
	out, err := run(t, entities.NewQuizSession(nil, nil), "")
	if !errors.Is(err, service.ErrEmptyBank) {
		t.Fatalf("err = %v, want ErrEmptyBank", err)
	}
	if !strings.Contains(out, msgNoQuestions) {
		t.Errorf("no-questions message missing:\n%s", out)
	}
}

func TestHandler_RefreshTitle(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out, entities.NewQuizSession(nil, nil), service.NewStopwatch(), nil, Options{})

	h.refreshTitle()

	got := out.String()
	if !strings.HasPrefix(got, "\033]0;"+windowTitle) || !strings.HasSuffix(got, "\007") {
		t.Errorf("title = %q", got)
	}
	if !strings.Contains(got, "Chronomètre / Time: 00:0") {
		t.Errorf("title misses elapsed time: %q", got)
	}
}

func TestParseSlot(t *testing.T) {
	tests := map[string]int{
		"1":  0,
		"4":  3,
		"0":  entities.NoSelection,
		"5":  entities.NoSelection,
		"":   entities.NoSelection,
		"-1": entities.NoSelection,
		"b":  entities.NoSelection,
	}
	for in, want := range tests {
		if got := parseSlot(in); got != want {
			t.Errorf("parseSlot(%q) = %d, want %d", in, got, want)
		}
	}
}
