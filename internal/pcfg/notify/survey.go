package notify

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/errors"
)

// AskFunc matches survey.AskOne
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Survey is the interactive terminal UI
type Survey struct {
	ask AskFunc
}

// NewSurvey returns a Survey backed by survey.AskOne
func NewSurvey() *Survey {
	return &Survey{ask: survey.AskOne}
}

// NewSurveyWith returns a Survey using ask, for scripted input
func NewSurveyWith(ask AskFunc) *Survey {
	return &Survey{ask: ask}
}

func (s *Survey) askOne(p survey.Prompt, response interface{}) error {
	if err := s.ask(p, response); err != nil {
		if err == terminal.InterruptErr {
			return errors.ErrCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Notify implements Notifier
func (s *Survey) Notify(m Message) (Button, error) {
	choices := m.Buttons.Choices()
	if len(choices) == 1 {
		return Log{}.Notify(m)
	}

	text := m.Text
	if m.Title != "" {
		text = m.Title + ": " + text
	}
	if m.Severity == Warning {
		log.Warn("%s", text)
		text = "Continue?"
	}

	options := make([]string, len(choices))
	def := 0
	for i, c := range choices {
		options[i] = c.String()
		if c == m.DefaultButton() {
			def = i
		}
	}

	var idx int
	prompt := &survey.Select{
		Message: text,
		Options: options,
		Default: def,
		Help:    m.Details,
	}
	if err := s.askOne(prompt, &idx); err != nil {
		if errors.Is(err, errors.ErrCancelled) {
			return ButtonCancel, nil
		}
		return ButtonNone, err
	}
	if idx < 0 || idx >= len(choices) {
		return ButtonNone, fmt.Errorf("prompt returned invalid choice %d", idx)
	}
	return choices[idx], nil
}

// Confirm implements Prompter
func (s *Survey) Confirm(message string, def bool) (bool, error) {
	answer := def
	err := s.askOne(&survey.Confirm{Message: message, Default: def}, &answer)
	return answer, err
}

// Input implements Prompter
func (s *Survey) Input(message, def string) (string, error) {
	answer := def
	err := s.askOne(&survey.Input{Message: message, Default: def}, &answer)
	return answer, err
}

// Select implements Prompter
func (s *Survey) Select(message string, options []string, def int) (int, error) {
	if def < 0 || def >= len(options) {
		def = 0
	}
	idx := def
	err := s.askOne(&survey.Select{Message: message, Options: options, Default: def}, &idx)
	return idx, err
}
