package terminal

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
	"github.com/aliskhannn/amateur-radio-quiz/internal/service"
)

var languageHeaders = map[entities.Language]string{
	entities.LangFrench:  "Français",
	entities.LangEnglish: "English",
}

// renderQuestion formats the question in both languages with the answers in display order.
func renderQuestion(q entities.QuizQuestion) string {
	var b strings.Builder

	b.WriteString(msgSeparatorLine + "\n")
	for _, lang := range entities.Languages {
		fmt.Fprintf(&b, "[%s]\n%s : \n%s\n", languageHeaders[lang], q.Record.ID, q.Record.Prompt[lang])
		for slot, answer := range q.DisplayedAnswers(lang) {
			fmt.Fprintf(&b, "  %d) %s\n", slot+1, answer)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderFeedback formats the outcome of a submitted answer in both languages.
func renderFeedback(res entities.AnswerResult) string {
	fr, en := msgIncorrectFR, msgIncorrectEN
	if res.Correct {
		fr, en = msgCorrectFR, msgCorrectEN
	}

	return fmt.Sprintf(fr, res.CorrectAnswer[entities.LangFrench]) + "\n" +
		fmt.Sprintf(en, res.CorrectAnswer[entities.LangEnglish]) + "\n"
}

func renderStatus(answered, total int, stopwatch *service.Stopwatch) string {
	status := fmt.Sprintf(msgProgress, answered, total)
	if stopwatch != nil {
		status += "   " + fmt.Sprintf(msgElapsed, service.FormatElapsed(stopwatch.Elapsed()))
	}
	return status + "\n"
}

// renderScore formats the final result.
func renderScore(score entities.Score) string {
	result := msgFailed
	if score.Passed {
		result = msgPassed
	}

	return msgSeparatorLine + "\n" +
		fmt.Sprintf(msgScore, score.Correct, score.Total, score.Percentage()) + "\n" +
		result + "\n"
}

// renderTitle builds the escape sequence setting the terminal window title.
func renderTitle(stopwatch *service.Stopwatch) string {
	title := windowTitle + " - " + fmt.Sprintf(msgElapsed, service.FormatElapsed(stopwatch.Elapsed()))
	return "\033]0;" + title + "\007"
}
