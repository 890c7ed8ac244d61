package repository

import (
	"strings"
	"testing"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
)

const validLine = "B-001-002-003;What is 1+1?;2;3;4;5;Combien font 1+1?;deux;trois;quatre;cinq"

func TestParseRecord(t *testing.T) {
	rec, ok := ParseRecord(validLine + "\r\n")
	if !ok {
		t.Fatal("valid line rejected")
	}

	if rec.ID != "B-001-002-003" {
		t.Errorf("ID = %q", rec.ID)
	}
	if rec.Category != "001" {
		t.Errorf("Category = %q, want 001", rec.Category)
	}
	if rec.Prompt[entities.LangEnglish] != "What is 1+1?" || rec.Prompt[entities.LangFrench] != "Combien font 1+1?" {
		t.Errorf("Prompt = %v", rec.Prompt)
	}
	if got := rec.CorrectAnswer(entities.LangEnglish); got != "2" {
		t.Errorf("english correct answer = %q", got)
	}
	if got := rec.CorrectAnswer(entities.LangFrench); got != "deux" {
		t.Errorf("french correct answer = %q", got)
	}
	for _, lang := range entities.Languages {
		if n := len(rec.Answers[lang]); n != entities.AnswersPerQuestion {
			t.Errorf("%s has %d answers", lang, n)
		}
	}
	if rec.Answers[entities.LangFrench][3] != "cinq" {
		t.Errorf("last french answer = %q", rec.Answers[entities.LangFrench][3])
	}
}

func TestParseRecord_TrimsFields(t *testing.T) {
	rec, ok := ParseRecord(" B-002-001-001 ; Prompt ; a ; b ; c ; d ; Question ; e ; f ; g ; h ")
	if !ok {
		t.Fatal("line rejected")
	}
	if rec.ID != "B-002-001-001" || rec.Category != "002" {
		t.Errorf("ID = %q, Category = %q", rec.ID, rec.Category)
	}
	if rec.Answers[entities.LangEnglish][0] != "a" || rec.Prompt[entities.LangFrench] != "Question" {
		t.Errorf("fields not trimmed: %+v", rec)
	}
}

func TestParseRecord_Rejects(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"B-001-001-001;only;a;few;fields",
		"a;b;c;d;e;f;g;h;i;j",
	}
	for _, line := range lines {
		if _, ok := ParseRecord(line); ok {
			t.Errorf("ParseRecord(%q) accepted", line)
		}
	}
}

func TestParseRecord_ExtraFieldsAndShortID(t *testing.T) {
	rec, ok := ParseRecord("B-0;p;a;b;c;d;q;e;f;g;h;extra")
	if !ok {
		t.Fatal("line with extra field rejected")
	}
	if rec.Category != "0" {
		t.Errorf("Category = %q, want partial slice", rec.Category)
	}

	rec, ok = ParseRecord("X;p;a;b;c;d;q;e;f;g;h")
	if !ok {
		t.Fatal("line with short id rejected")
	}
	if rec.Category != "" {
		t.Errorf("Category = %q, want empty", rec.Category)
	}
}

func TestParseRecords_SkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"\uFEFF" + validLine,
		"garbage",
		"B-002-001-001;p;a;b;c;d;q;e;f;g;h",
		"",
		"B-003-001-001;p;a;b;c;d;q;e;f;g;h",
	}, "\n")

	records, skipped, err := ParseRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if records[0].ID != "B-001-002-003" {
		t.Errorf("BOM not stripped: %q", records[0].ID)
	}
	for _, rec := range records {
		if rec.Category == "" {
			t.Errorf("record %s has empty category", rec.ID)
		}
	}
}
