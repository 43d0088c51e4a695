package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConf(t *testing.T, dir, content string) {
	t.Helper()
	_ = os.MkdirAll(filepath.Join(dir, PCFG_DIR), 0750)
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(filepath.Join(dir, PCFG_DIR, CONFIG_FILE), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSettings_Missing(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.File != "" || !s.HistoryEnabled() || !s.InteractiveEnabled() {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "file: game/segatools.ini\nhistory: false\n")

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if want := filepath.Join(dir, "game", "segatools.ini"); s.File != want {
		t.Errorf("File = %q, want %q", s.File, want)
	}
	if s.HistoryEnabled() {
		t.Error("history: false was ignored")
	}
	if !s.InteractiveEnabled() {
		t.Error("interactive should default to true")
	}
}

func TestLoadSettings_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "flie: typo.ini\n")

	_, err := LoadSettings(dir)
	if err == nil || !strings.Contains(err.Error(), "conf.yaml") {
		t.Errorf("LoadSettings() error = %v, want strict parse error", err)
	}
}

func TestResolveConfigPath_Priority(t *testing.T) {
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(oldWd) }()
	_ = os.Chdir(dir)

	settings := &Settings{File: "/from/conf.ini"}

	t.Setenv(ENV_FILE, "/from/env.ini")
	if got, _ := ResolveConfigPath("/from/flag.ini", settings); got != "/from/flag.ini" {
		t.Errorf("flag should win, got %q", got)
	}
	if got, _ := ResolveConfigPath("", settings); got != "/from/env.ini" {
		t.Errorf("env should win over conf, got %q", got)
	}

	t.Setenv(ENV_FILE, "")
	if got, _ := ResolveConfigPath("", settings); got != "/from/conf.ini" {
		t.Errorf("conf should win over default, got %q", got)
	}

	got, err := ResolveConfigPath("", nil)
	if err != nil {
		t.Fatalf("ResolveConfigPath() error: %v", err)
	}
	if filepath.Base(got) != DEFAULT_FILE {
		t.Errorf("default = %q, want %s in working directory", got, DEFAULT_FILE)
	}
}

func TestSetDefaultFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "segatools.ini")

	if err := SetDefaultFile(dir, target); err != nil {
		t.Fatalf("SetDefaultFile() error: %v", err)
	}
	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.File != target {
		t.Errorf("File = %q, want %q", s.File, target)
	}
}
