package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
	"github.com/aliskhannn/amateur-radio-quiz/internal/service"
)

// Options tunes the terminal front end.
type Options struct {
	TimerInTitle bool // refresh the elapsed time in the window title every second
}

// Handler drives a QuizSession from line based terminal input.
type Handler struct {
	in        io.Reader
	out       io.Writer
	outMu     sync.Mutex
	session   *entities.QuizSession
	stopwatch *service.Stopwatch
	logger    *zap.Logger
	opts      Options
}

// NewHandler creates a new terminal handler.
func NewHandler(
	in io.Reader,
	out io.Writer,
	session *entities.QuizSession,
	stopwatch *service.Stopwatch,
	logger *zap.Logger,
	opts Options,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stopwatch == nil {
		stopwatch = service.NewStopwatch()
	}

	return &Handler{
		in:        in,
		out:       out,
		session:   session,
		stopwatch: stopwatch,
		logger:    logger,
		opts:      opts,
	}
}

// Run plays the session until it is finished, the user quits, input ends or ctx is done.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started", zap.String("session_id", h.session.ID))
	defer h.logger.Info("terminal handler stopped", zap.String("session_id", h.session.ID))

	if h.opts.TimerInTitle {
		stop, err := h.startTimer()
		if err != nil {
			h.logger.Warn("elapsed time ticker disabled", zap.Error(err))
		} else {
			defer stop()
		}
	}

	done, err := h.show()
	if err != nil || done {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	lines := readLines(h.in, stop)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				h.write(msgInputClosed + "\n")
				return nil
			}

			done, err := h.handleLine(line)
			if err != nil {
				h.logger.Error("handle input",
					zap.String("session_id", h.session.ID),
					zap.Error(err),
				)
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// show renders whatever the current state needs and reports whether the session is over.
func (h *Handler) show() (bool, error) {
	switch h.session.State() {
	case entities.StatePresenting:
		q, err := h.session.CurrentQuestion()
		if err != nil {
			return false, err
		}
		answered, total := h.session.Progress()
		h.write(renderQuestion(q) + renderStatus(answered, total, h.stopwatch) + msgSubmitPrompt)
		return false, nil

	case entities.StateSubmitted:
		h.write(msgNextPrompt)
		return false, nil

	case entities.StateFinished:
		score, err := h.session.FinalScore()
		if err != nil {
			return false, err
		}
		h.logger.Info("quiz finished",
			zap.String("session_id", h.session.ID),
			zap.Int("correct", score.Correct),
			zap.Int("total", score.Total),
			zap.Bool("passed", score.Passed),
			zap.Duration("elapsed", h.stopwatch.Elapsed()),
		)
		h.write(renderScore(score) + fmt.Sprintf(msgElapsed, service.FormatElapsed(h.stopwatch.Elapsed())) + "\n")
		return true, nil

	default:
		h.write(msgNoQuestions + "\n")
		return true, service.ErrEmptyBank
	}
}

// handleLine applies one line of user input to the session.
func (h *Handler) handleLine(line string) (bool, error) {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "q" || input == "quit" {
		h.write(msgQuit + "\n")
		return true, nil
	}

	switch h.session.State() {
	case entities.StatePresenting:
		res, err := h.session.SubmitAnswer(parseSlot(input))
		if errors.Is(err, entities.ErrNoSelection) {
			h.write(msgChooseAnswer + "\n" + msgSubmitPrompt)
			return false, nil
		}
		if err != nil {
			return false, err
		}

		h.logger.Debug("answer submitted",
			zap.String("session_id", h.session.ID),
			zap.Int("slot", res.ChosenSlot),
			zap.Bool("correct", res.Correct),
		)

		answered, total := h.session.Progress()
		h.write(renderFeedback(res) + renderStatus(answered, total, h.stopwatch))

	case entities.StateSubmitted:
		if _, err := h.session.Advance(); err != nil {
			return false, err
		}
	}

	return h.show()
}

// parseSlot converts "1".."4" to a display slot, anything else to NoSelection.
func parseSlot(input string) int {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > entities.AnswersPerQuestion {
		return entities.NoSelection
	}
	return n - 1
}

// readLines streams input lines until EOF or until stop is closed.
func readLines(r io.Reader, stop <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()
	return lines
}

func (h *Handler) write(s string) {
	h.outMu.Lock()
	defer h.outMu.Unlock()
	if _, err := io.WriteString(h.out, s); err != nil {
		h.logger.Error("failed to write to terminal", zap.Error(err))
	}
}
