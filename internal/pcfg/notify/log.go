package notify

import (
	"strings"

	"github.com/performai/pcfg/internal/log"
)

// Log prints messages through the logger and answers every question with its
// default. Used when stdin is not a terminal or --yes is given.
type Log struct{}

// Notify implements Notifier
func (Log) Notify(m Message) (Button, error) {
	text := m.Text
	if m.Title != "" {
		text = m.Title + ": " + text
	}

	switch m.Severity {
	case Error:
		log.Error("%s", text)
	case Warning:
		log.Warn("%s", text)
	default:
		log.Info("%s", text)
	}
	for _, line := range strings.Split(strings.TrimSpace(m.Details), "\n") {
		if line != "" {
			log.InfoH2("%s", line)
		}
	}

	b := m.DefaultButton()
	if m.Buttons != OK {
		log.DebugH2("answered %s", b)
	}
	return b, nil
}

// Confirm implements Prompter
func (Log) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// Input implements Prompter
func (Log) Input(_ string, def string) (string, error) {
	return def, nil
}

// Select implements Prompter
func (Log) Select(_ string, _ []string, def int) (int, error) {
	return def, nil
}
