package terminal

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// startTimer refreshes the window title with the elapsed time every second.
// The job only reads the stopwatch and never touches the session.
func (h *Handler) startTimer() (stop func(), err error) {
	c := cron.New()

	if _, err := c.AddFunc("@every 1s", h.refreshTitle); err != nil {
		return nil, fmt.Errorf("add timer job: %w", err)
	}

	h.refreshTitle()
	c.Start()

	return func() {
		<-c.Stop().Done()
	}, nil
}

func (h *Handler) refreshTitle() {
	h.write(renderTitle(h.stopwatch))
}
