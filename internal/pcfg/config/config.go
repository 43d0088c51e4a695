// Package config decides which segatools.ini the tool works on and holds the
// tool's own settings from .pcfg/conf.yaml.
//
//nolint:revive // Constant names mirror the on-disk layout
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/performai/pcfg/internal/log"
)

const (
	PCFG_DIR     = ".pcfg"
	CONFIG_FILE  = "conf.yaml"
	DEFAULT_FILE = "segatools.ini"
	ENV_FILE     = "PCFG_FILE"
)

// Settings are the tool preferences read from .pcfg/conf.yaml
type Settings struct {
	File        string `yaml:"file,omitempty"`
	History     *bool  `yaml:"history,omitempty"`
	Interactive *bool  `yaml:"interactive,omitempty"`
}

// HistoryEnabled reports whether save snapshots are on (default true)
func (s *Settings) HistoryEnabled() bool {
	return s.History == nil || *s.History
}

// InteractiveEnabled reports whether prompts may be shown (default true)
func (s *Settings) InteractiveEnabled() bool {
	return s.Interactive == nil || *s.Interactive
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// parseYamlFromFile parses YAML data from a file into a data structure
func parseYamlFromFile(confPath string, data any) error {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	defer buf.Reset()

	//nolint:gosec // G304: Config path is constructed by application
	f, err := os.Open(confPath)
	if err != nil {
		return fmt.Errorf("file open error: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := buf.ReadFrom(f); err != nil {
		return fmt.Errorf("file read error: %w", err)
	}

	if err := yaml.UnmarshalStrict(buf.Bytes(), data); err != nil {
		return fmt.Errorf("error unmarshal yaml: %w", err)
	}
	return nil
}

// LoadSettings reads dir/.pcfg/conf.yaml. A missing file yields defaults.
func LoadSettings(dir string) (*Settings, error) {
	var s Settings
	confPath := filepath.Join(dir, PCFG_DIR, CONFIG_FILE)
	if _, err := os.Stat(confPath); os.IsNotExist(err) {
		return &s, nil
	}
	if err := parseYamlFromFile(confPath, &s); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", confPath, err)
	}
	// Relative paths in conf.yaml are relative to the workspace, not .pcfg.
	if s.File != "" && !filepath.IsAbs(s.File) {
		s.File = filepath.Join(dir, s.File)
	}
	return &s, nil
}

// SaveSettings writes s to dir/.pcfg/conf.yaml
func SaveSettings(dir string, s *Settings) error {
	pcfgDir := filepath.Join(dir, PCFG_DIR)
	if err := os.MkdirAll(pcfgDir, 0750); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", PCFG_DIR, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: settings are not secret
	return os.WriteFile(filepath.Join(pcfgDir, CONFIG_FILE), data, 0644)
}

// GetEnvFile returns the PCFG_FILE environment variable
func GetEnvFile() string {
	return os.Getenv(ENV_FILE)
}

// ResolveConfigPath determines the config file from:
// 1. Command-line flag (--file)
// 2. Environment variable (PCFG_FILE)
// 3. file: in .pcfg/conf.yaml
// 4. segatools.ini in the working directory
func ResolveConfigPath(fileFlag string, settings *Settings) (string, error) {
	if fileFlag != "" {
		return fileFlag, nil
	}

	if envFile := GetEnvFile(); envFile != "" {
		return envFile, nil
	}

	if settings != nil && settings.File != "" {
		return settings.File, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, DEFAULT_FILE)
	log.Debug("Using default config file %s", path)
	return path, nil
}

// SetDefaultFile remembers path as the default config in dir/.pcfg/conf.yaml
func SetDefaultFile(dir, path string) error {
	s, err := LoadSettings(dir)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	s.File = path
	return SaveSettings(dir, s)
}
