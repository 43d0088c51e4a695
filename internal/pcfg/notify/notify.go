// Package notify is the message-box and prompt surface used by the CLI.
// The editor never talks to the user directly; commands pass one of these
// implementations around instead.
package notify

// Buttons selects which answers a message offers
type Buttons int

const (
	OK Buttons = iota
	OKCancel
	YesNo
	YesNoCancel
)

// Button is the answer picked by the user
type Button int

const (
	ButtonNone Button = iota
	ButtonOK
	ButtonCancel
	ButtonYes
	ButtonNo
)

func (b Button) String() string {
	switch b {
	case ButtonOK:
		return "OK"
	case ButtonCancel:
		return "Cancel"
	case ButtonYes:
		return "Yes"
	case ButtonNo:
		return "No"
	default:
		return "None"
	}
}

// Severity picks the icon/colour of a message
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Question
)

// Message is one notification
type Message struct {
	Title    string
	Text     string
	Details  string
	Buttons  Buttons
	Severity Severity
	// Default is returned by non-interactive notifiers; zero means the first
	// button of the set.
	Default Button
}

// Choices returns the buttons offered by b in display order
func (b Buttons) Choices() []Button {
	switch b {
	case OKCancel:
		return []Button{ButtonOK, ButtonCancel}
	case YesNo:
		return []Button{ButtonYes, ButtonNo}
	case YesNoCancel:
		return []Button{ButtonYes, ButtonNo, ButtonCancel}
	default:
		return []Button{ButtonOK}
	}
}

// DefaultButton returns m.Default if it belongs to the button set, otherwise
// the first choice
func (m Message) DefaultButton() Button {
	choices := m.Buttons.Choices()
	for _, c := range choices {
		if c == m.Default {
			return c
		}
	}
	return choices[0]
}

// Notifier shows a message and returns the pressed button
type Notifier interface {
	Notify(m Message) (Button, error)
}

// Prompter asks for form values
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Input(message, def string) (string, error)
	Select(message string, options []string, def int) (int, error)
}

// UI is both a notifier and a prompter
type UI interface {
	Notifier
	Prompter
}
