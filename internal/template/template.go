// Package template renders starter segatools.ini files
package template

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var (
	//go:embed all:templates
	// File is the embedded filesystem containing all templates
	File embed.FS
)

// DefaultTemplate is the embedded starter config
const DefaultTemplate = "templates/segatools.ini.tmpl"

// Info is the data a starter config is rendered with
type Info struct {
	Variant   string
	Server    string
	KeychipID string
	AimePath  string
	RouterDNS string
	Subnet    string
	AMFS      string
	Option    string
	AppData   string
}

type fileSystem interface {
	ReadFile(string) ([]byte, error)
}

type embeddedFS struct{ fs embed.FS }

// ReadFile accepts Windows separators; embed.FS only understands slashes.
func (e embeddedFS) ReadFile(name string) ([]byte, error) {
	return e.fs.ReadFile(strings.ReplaceAll(name, `\`, "/"))
}

type osFS struct{}

//nolint:gosec // G304: user supplied template path
func (osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Render executes an embedded template
func Render(name string, info Info) (string, error) {
	return render(embeddedFS{File}, name, info)
}

// RenderFile executes a template from the operating system filesystem
func RenderFile(path string, info Info) (string, error) {
	return render(osFS{}, path, info)
}

func render(fsys fileSystem, file string, info Info) (string, error) {
	data, err := fsys.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %q: %w", file, err)
	}

	tmpl, err := template.New(filepath.Base(file)).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, info); err != nil {
		return "", fmt.Errorf("template execute error: %w", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// ToDestination renders src (embedded when custom is false) and creates
// destination with the result. An existing destination is never overwritten.
func ToDestination(src string, custom bool, info Info, destination string) error {
	var content string
	var err error
	if custom {
		content, err = RenderFile(src, info)
	} else {
		content, err = Render(src, info)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0750); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", filepath.Dir(destination), err)
	}
	return writeContent(destination, strings.NewReader(content))
}

//nolint:gosec // G302: config files are shared with the game
func writeContent(destination string, content io.Reader) error {
	destFile, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s: %w", destination, fs.ErrExist)
		}
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		_ = destFile.Close()
	}()

	if _, err := io.Copy(destFile, content); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
