package cmd

import (
	"fmt"
	"os"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/config"
	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/fileutil"
	"github.com/performai/pcfg/internal/pcfg/history"
	"github.com/performai/pcfg/internal/pcfg/notify"
)

// newUI picks the prompt implementation; tests replace it
var newUI = func(settings *config.Settings) notify.UI {
	if yesFlag || !settings.InteractiveEnabled() {
		return notify.Log{}
	}
	return notify.NewSurvey()
}

// session bundles everything a command needs to act on the config file
type session struct {
	dir      string
	path     string
	settings *config.Settings
	history  *history.Store
	editor   *editor.Editor
	ui       notify.UI
}

// openSession resolves the config path and tries to open it. A file that
// cannot be opened is reported but does not fail the session; commands
// decide whether they need a loaded document.
func openSession() (*session, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(dir)
	if err != nil {
		return nil, err
	}

	path, err := config.ResolveConfigPath(fileFlag, settings)
	if err != nil {
		return nil, err
	}

	// Only a file that exists gets a history store next to it.
	enabled := !noHistoryFlag && settings.HistoryEnabled() && fileutil.IsFile(path)
	store := history.New(history.PathFor(path), enabled)
	if err := store.Init(); err != nil {
		log.Warn("History unavailable: %v", err)
		store = history.New("", false)
	}

	s := &session{
		dir:      dir,
		path:     path,
		settings: settings,
		history:  store,
		editor:   editor.New(editor.WithHistory(store)),
		ui:       newUI(settings),
	}

	if err := s.editor.Open(path); err != nil {
		log.Debug("Open failed: %v", err)
	}
	return s, nil
}

// Close releases the history database
func (s *session) Close() {
	if err := s.history.Close(); err != nil {
		log.Debug("closing history: %v", err)
	}
}

// requireLoaded fails with a hint when no document could be opened
func (s *session) requireLoaded() error {
	if s.editor.Loaded() {
		return nil
	}
	return fmt.Errorf("%w: cannot open %s (use --file or 'pcfg open <path>')", errors.ErrNotLoaded, s.path)
}

// offerOpen asks the user to pick a config file when none is loaded
func (s *session) offerOpen() error {
	answer, err := s.ui.Notify(notify.Message{
		Title:    "No file open",
		Text:     fmt.Sprintf("Could not open %s. Open another segatools.ini now?", s.path),
		Details:  "Changes can only be saved into a config file that was loaded successfully.",
		Buttons:  notify.YesNo,
		Severity: notify.Question,
		Default:  notify.ButtonNo,
	})
	if err != nil {
		return err
	}
	if answer != notify.ButtonYes {
		return errors.ErrNotLoaded
	}

	path, err := s.ui.Input("Path to segatools.ini", s.path)
	if err != nil {
		return err
	}
	if err := s.editor.Open(path); err != nil {
		return err
	}
	s.path = s.editor.Path()
	log.Info("Opened %s", s.path)
	return nil
}

// applyAndSave runs apply on a loaded document and saves it. Saving without a
// loaded document is refused before anything is written.
func (s *session) applyAndSave(apply func(e *editor.Editor) error) error {
	if !s.editor.Loaded() {
		if err := s.offerOpen(); err != nil {
			return err
		}
	}
	if err := apply(s.editor); err != nil {
		return err
	}
	if err := s.editor.Save(); err != nil {
		return err
	}
	log.Success("%s", s.editor.Status())
	return nil
}

// warnCardConflict shows a warning when both card files exist
func (s *session) warnCardConflict() {
	c, conflict := s.editor.CardConflict()
	if !conflict {
		return
	}
	_, _ = notify.Log{}.Notify(notify.Message{
		Title:    "Card file conflict",
		Text:     fmt.Sprintf("both aime.txt and felica.txt exist in %s", c.Dir),
		Details:  "The game reads only one of them. Delete the file you do not use.",
		Severity: notify.Warning,
	})
}
