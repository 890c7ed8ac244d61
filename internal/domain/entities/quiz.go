package entities

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOperation = errors.New("invalid operation for current quiz state")
	ErrNoSelection      = errors.New("no answer selected")
)

// NoSelection is the slot value a front end passes when nothing is selected.
const NoSelection = -1

// PassPercent is the minimal share of correct answers, in percent, to pass the exam.
const PassPercent = 70

// State is the position of a QuizSession in its lifecycle.
type State string

const (
	StatePresenting State = "presenting" // question shown, waiting for an answer
	StateSubmitted  State = "submitted"  // answer checked, waiting for advance
	StateFinished   State = "finished"   // all questions answered, score is final
	StateEmpty      State = "empty"      // session built without questions
)

// Permuter produces random permutations. *rand.Rand satisfies it.
type Permuter interface {
	Perm(n int) []int
}

// AnswerResult describes the outcome of a submitted answer.
type AnswerResult struct {
	Correct       bool
	ChosenSlot    int                 // display slot picked by the user
	ChosenIndex   int                 // index of the picked answer in the source encoding
	CorrectSlot   int                 // display slot holding the correct answer
	CorrectAnswer map[Language]string // correct answer text per language
}

// Score is the final result of a finished session.
type Score struct {
	Correct int
	Total   int
	Passed  bool
}

// Percentage returns the share of correct answers in percent.
func (s Score) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// QuizSession drives one exam from the first question to the final score.
// All methods are safe to call from several goroutines; transitions are serialized.
type QuizSession struct {
	ID          string     // random session ID, used in logs
	StartedAt   time.Time  // timestamp when the session was created
	CompletedAt *time.Time // timestamp when the last answer was advanced past

	mu                 sync.Mutex
	rng                Permuter
	questions          []QuizQuestion
	current            int
	score              int
	answered           int
	awaitingSubmission bool
}

// NewQuizSession creates a session over the given records in their given order.
// A session without records starts in StateEmpty. A nil rng is replaced by a time-seeded one.
func NewQuizSession(records []QuestionRecord, rng Permuter) *QuizSession {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	questions := make([]QuizQuestion, len(records))
	for i, r := range records {
		questions[i] = QuizQuestion{Record: r}
	}

	return &QuizSession{
		ID:                 uuid.NewString(),
		StartedAt:          time.Now(),
		rng:                rng,
		questions:          questions,
		awaitingSubmission: len(questions) > 0,
	}
}

// State returns the current lifecycle state.
func (s *QuizSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *QuizSession) state() State {
	switch {
	case len(s.questions) == 0:
		return StateEmpty
	case s.current >= len(s.questions):
		return StateFinished
	case s.awaitingSubmission:
		return StatePresenting
	default:
		return StateSubmitted
	}
}

// Total returns the number of questions in the session.
func (s *QuizSession) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// Index returns the zero-based index of the current question.
// It equals Total once the session is finished.
func (s *QuizSession) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the question being shown. The first call for a question
// fixes its answer order; later calls return the same order.
func (s *QuizSession) CurrentQuestion() (QuizQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state()
	if st != StatePresenting && st != StateSubmitted {
		return QuizQuestion{}, fmt.Errorf("current question in state %s: %w", st, ErrInvalidOperation)
	}

	s.display()
	return s.questions[s.current], nil
}

// display generates the presentation permutation of the current question once.
func (s *QuizSession) display() {
	q := &s.questions[s.current]
	if q.Permutation != nil {
		return
	}

	n := len(q.Record.Answers[LangEnglish])
	if n == 0 {
		n = AnswersPerQuestion
	}
	q.Permutation = s.rng.Perm(n)
}

// SubmitAnswer checks the answer shown at the given display slot.
func (s *QuizSession) SubmitAnswer(slot int) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.state(); st != StatePresenting {
		return AnswerResult{}, fmt.Errorf("submit answer in state %s: %w", st, ErrInvalidOperation)
	}

	s.display()
	q := s.questions[s.current]

	original, ok := q.OriginalIndex(slot)
	if !ok {
		return AnswerResult{}, fmt.Errorf("submit answer at slot %d: %w: %w", slot, ErrInvalidOperation, ErrNoSelection)
	}

	result := AnswerResult{
		Correct:       original == CorrectIndex,
		ChosenSlot:    slot,
		ChosenIndex:   original,
		CorrectSlot:   q.CorrectSlot(),
		CorrectAnswer: make(map[Language]string, len(Languages)),
	}
	for _, lang := range Languages {
		result.CorrectAnswer[lang] = q.Record.CorrectAnswer(lang)
	}

	if result.Correct {
		s.score++
	}
	s.answered++
	s.awaitingSubmission = false

	return result, nil
}

// Advance moves past a submitted question and returns the new state.
func (s *QuizSession) Advance() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.state(); st != StateSubmitted {
		return st, fmt.Errorf("advance in state %s: %w", st, ErrInvalidOperation)
	}

	s.current++
	if s.current >= len(s.questions) {
		now := time.Now()
		s.CompletedAt = &now
		return StateFinished, nil
	}

	s.awaitingSubmission = true
	return StatePresenting, nil
}

// Progress returns the number of submitted answers and the total number of questions.
func (s *QuizSession) Progress() (answered, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answered, len(s.questions)
}

// FinalScore returns the result of a finished session.
func (s *QuizSession) FinalScore() (Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.state(); st != StateFinished {
		return Score{}, fmt.Errorf("final score in state %s: %w", st, ErrInvalidOperation)
	}

	total := len(s.questions)
	return Score{
		Correct: s.score,
		Total:   total,
		Passed:  s.score*100 >= PassPercent*total,
	}, nil
}
