package repository

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
)

const (
	fieldDelimiter = ";"
	minFields      = 11

	// Category code occupies id[2:5], e.g. "B-001-002-003" -> "001".
	categoryStart = 2
	categoryEnd   = 5

	maxLineSize = 1024 * 1024

	utf8BOM = "\uFEFF"
)

// Field positions inside one record line.
const (
	fieldID = iota
	fieldEnglishPrompt
	fieldEnglishAnswers // 4 answers, correct first
	_
	_
	_
	fieldFrenchPrompt
	fieldFrenchAnswers // 4 answers, correct first
)

// ParseRecord turns one line of the question file into a QuestionRecord.
// Lines with fewer than 11 fields are reported as not ok.
func ParseRecord(line string) (entities.QuestionRecord, bool) {
	parts := strings.Split(strings.TrimSpace(line), fieldDelimiter)
	if len(parts) < minFields {
		return entities.QuestionRecord{}, false
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	id := parts[fieldID]

	return entities.QuestionRecord{
		ID:       id,
		Category: categoryOf(id),
		Prompt: map[entities.Language]string{
			entities.LangEnglish: parts[fieldEnglishPrompt],
			entities.LangFrench:  parts[fieldFrenchPrompt],
		},
		Answers: map[entities.Language][]string{
			entities.LangEnglish: answersAt(parts, fieldEnglishAnswers),
			entities.LangFrench:  answersAt(parts, fieldFrenchAnswers),
		},
	}, true
}

// ParseRecords reads records line by line and returns them with the number of skipped lines.
func ParseRecords(r io.Reader) ([]entities.QuestionRecord, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		records []entities.QuestionRecord
		skipped int
		first   = true
	)
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		record, ok := ParseRecord(line)
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("scan question lines: %w", err)
	}

	return records, skipped, nil
}

// categoryOf slices the category code out of an id. Short ids give a partial
// or empty category instead of an error.
func categoryOf(id string) string {
	if len(id) <= categoryStart {
		return ""
	}
	end := categoryEnd
	if len(id) < end {
		end = len(id)
	}
	return id[categoryStart:end]
}

func answersAt(parts []string, from int) []string {
	answers := make([]string, entities.AnswersPerQuestion)
	copy(answers, parts[from:from+entities.AnswersPerQuestion])
	return answers
}
