// messages.go contains bilingual message templates for the terminal front end.

package terminal

const windowTitle = "Amateur Radio (Basic) Test - v1.0.0"

// Prompts.
const (
	msgSubmitPrompt = "Soumettre / Submit [1-4, q]: "
	msgNextPrompt   = "Suivante / Next [Enter, q]: "
)

// Feedback and status messages.
const (
	msgChooseAnswer  = "Choisissez une réponse / Choose an answer (1-4)."
	msgCorrectFR     = "Exacte! La réponse était: %s"
	msgCorrectEN     = "Correct! The answer was: %s"
	msgIncorrectFR   = "Erreur! La réponse était: %s"
	msgIncorrectEN   = "Incorrect! The correct answer was: %s"
	msgProgress      = "Répondues - Answered: %d/%d"
	msgElapsed       = "Chronomètre / Time: %s"
	msgScore         = "Your score: %d/%d (%.2f%%)"
	msgPassed        = "Vous avez Réussi! / You Passed!"
	msgFailed        = "Vous avez Échoué... / You Failed..."
	msgNoQuestions   = "Aucune question chargée. / No questions loaded."
	msgQuit          = "Examen interrompu. / Exam aborted."
	msgInputClosed   = "Entrée fermée. / Input closed."
	msgSeparatorLine = "────────────────────────────────────────"
)
