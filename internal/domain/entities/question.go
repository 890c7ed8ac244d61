// Package entities contains domain entities used across the application.
package entities

// Language identifies one of the two languages every question is written in.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LangFrench, LangEnglish}

// AnswersPerQuestion is the fixed number of options of every question.
const AnswersPerQuestion = 4

// CorrectIndex is the position of the correct answer in the source encoding.
const CorrectIndex = 0

// QuestionRecord is one parsed line of the question bank.
// Answers[lang][CorrectIndex] is always the correct answer.
type QuestionRecord struct {
	ID       string                // question identifier, e.g. "B-001-002-003"
	Category string                // section code sliced out of ID, e.g. "001"
	Prompt   map[Language]string   // question text per language
	Answers  map[Language][]string // four answers per language, correct one first
}

// CorrectAnswer returns the canonical correct answer in the given language.
func (r QuestionRecord) CorrectAnswer(lang Language) string {
	answers := r.Answers[lang]
	if len(answers) == 0 {
		return ""
	}
	return answers[CorrectIndex]
}

// QuizQuestion is a QuestionRecord together with the order its answers are shown in.
// Permutation[slot] is the original answer index displayed at that slot; the same
// permutation is applied to both languages so rows line up.
type QuizQuestion struct {
	Record      QuestionRecord
	Permutation []int
}

// DisplayedAnswers returns the answers in the given language in display order.
func (q QuizQuestion) DisplayedAnswers(lang Language) []string {
	answers := q.Record.Answers[lang]
	out := make([]string, 0, len(q.Permutation))
	for _, idx := range q.Permutation {
		if idx < len(answers) {
			out = append(out, answers[idx])
		}
	}
	return out
}

// OriginalIndex maps a display slot back to the answer index in the source encoding.
func (q QuizQuestion) OriginalIndex(slot int) (int, bool) {
	if slot < 0 || slot >= len(q.Permutation) {
		return 0, false
	}
	return q.Permutation[slot], true
}

// CorrectSlot returns the display slot holding the correct answer.
func (q QuizQuestion) CorrectSlot() int {
	for slot, idx := range q.Permutation {
		if idx == CorrectIndex {
			return slot
		}
	}
	return -1
}
