package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/history"
	"github.com/performai/pcfg/internal/pcfg/notify"
)

// fakeUI answers prompts from a script. A nil answer accepts the default.
type fakeUI struct {
	t       *testing.T
	answers []interface{}
	buttons []notify.Button
	asked   []string
}

func (f *fakeUI) next(message string) interface{} {
	f.t.Helper()
	f.asked = append(f.asked, message)
	if len(f.answers) == 0 {
		f.t.Fatalf("unexpected prompt %q", message)
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a
}

func (f *fakeUI) Notify(m notify.Message) (notify.Button, error) {
	f.asked = append(f.asked, m.Title)
	if len(f.buttons) == 0 {
		return m.DefaultButton(), nil
	}
	b := f.buttons[0]
	f.buttons = f.buttons[1:]
	return b, nil
}

func (f *fakeUI) Confirm(message string, def bool) (bool, error) {
	switch a := f.next(message).(type) {
	case nil:
		return def, nil
	case error:
		return false, a
	default:
		return a.(bool), nil
	}
}

func (f *fakeUI) Input(message, def string) (string, error) {
	switch a := f.next(message).(type) {
	case nil:
		return def, nil
	case error:
		return "", a
	default:
		return a.(string), nil
	}
}

func (f *fakeUI) Select(message string, _ []string, def int) (int, error) {
	switch a := f.next(message).(type) {
	case nil:
		return def, nil
	case error:
		return 0, a
	default:
		return a.(int), nil
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segatools.ini")
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readConfig(t *testing.T, path string) string {
	t.Helper()
	//nolint:gosec // G304: test path
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// newTestSession builds a session without touching the working directory
func newTestSession(t *testing.T, path string, ui notify.UI) *session {
	t.Helper()
	s := &session{
		dir:     filepath.Dir(path),
		path:    path,
		history: history.New("", false),
		editor:  editor.New(),
		ui:      ui,
	}
	_ = s.editor.Open(path)
	t.Cleanup(s.Close)
	return s
}

func TestApplyAndSave_Loaded(t *testing.T) {
	path := writeConfig(t, "[keychip]\nid=OLD\n")
	s := newTestSession(t, path, &fakeUI{t: t})

	err := s.applyAndSave(func(e *editor.Editor) error {
		return e.Set("keychip", "id", "NEW")
	})
	if err != nil {
		t.Fatalf("applyAndSave() error: %v", err)
	}
	if got := readConfig(t, path); got != "[keychip]\nid=NEW\n\n" {
		t.Errorf("file = %q", got)
	}
}

func TestApplyAndSave_ApplyErrorWritesNothing(t *testing.T) {
	path := writeConfig(t, "[keychip]\nid=OLD\n")
	s := newTestSession(t, path, &fakeUI{t: t})

	err := s.applyAndSave(func(e *editor.Editor) error {
		_ = e.Set("keychip", "id", "NEW")
		return errors.ErrCancelled
	})
	if !errors.Is(err, errors.ErrCancelled) {
		t.Errorf("applyAndSave() error = %v, want ErrCancelled", err)
	}
	if got := readConfig(t, path); got != "[keychip]\nid=OLD\n" {
		t.Errorf("file was modified: %q", got)
	}
}

func TestApplyAndSave_NotLoadedDeclined(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "segatools.ini")
	ui := &fakeUI{t: t, buttons: []notify.Button{notify.ButtonNo}}
	s := newTestSession(t, missing, ui)

	called := false
	err := s.applyAndSave(func(_ *editor.Editor) error {
		called = true
		return nil
	})
	if !errors.Is(err, errors.ErrNotLoaded) {
		t.Errorf("applyAndSave() error = %v, want ErrNotLoaded", err)
	}
	if called {
		t.Error("apply ran without a loaded document")
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("a file was created while not loaded")
	}
}

func TestApplyAndSave_NotLoadedOpensAnotherFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "segatools.ini")
	other := writeConfig(t, "[aime]\nenable=1\n")
	ui := &fakeUI{t: t, buttons: []notify.Button{notify.ButtonYes}, answers: []interface{}{other}}
	s := newTestSession(t, missing, ui)

	err := s.applyAndSave(func(e *editor.Editor) error {
		return e.Set("aime", "enable", "0")
	})
	if err != nil {
		t.Fatalf("applyAndSave() error: %v", err)
	}
	if s.path != other {
		t.Errorf("session path = %q, want %q", s.path, other)
	}
	if got := readConfig(t, other); got != "[aime]\nenable=0\n\n" {
		t.Errorf("file = %q", got)
	}
}

func TestRequireLoaded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "segatools.ini")
	s := newTestSession(t, missing, &fakeUI{t: t})
	if err := s.requireLoaded(); !errors.Is(err, errors.ErrNotLoaded) {
		t.Errorf("requireLoaded() error = %v, want ErrNotLoaded", err)
	}

	loaded := newTestSession(t, writeConfig(t, "[aime]\n"), &fakeUI{t: t})
	if err := loaded.requireLoaded(); err != nil {
		t.Errorf("requireLoaded() error = %v", err)
	}
}
