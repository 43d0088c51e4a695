//nolint:revive // Package name is intentional to test unexported template package internals.
package template

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/performai/pcfg/internal/pcfg/ini"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

func starterInfo(v variant.Variant) Info {
	return Info{
		Variant:   string(v),
		Server:    "play.mumur.net",
		KeychipID: "A69E01A8888",
		AimePath:  `DEVICE\aime.txt`,
		RouterDNS: "223.5.5.5",
		Subnet:    "192.168.1.0",
	}
}

// TestRender_DetectsAsRequestedVariant renders the starter for every game and
// checks the result parses back as that game
func TestRender_DetectsAsRequestedVariant(t *testing.T) {
	for _, v := range variant.All() {
		t.Run(string(v), func(t *testing.T) {
			out, err := Render(DefaultTemplate, starterInfo(v))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			doc := ini.Parse(out)
			if got := variant.Detect(doc); got != v {
				t.Errorf("Detect() = %s, want %s\n%s", got, v, out)
			}
			if got := doc.GetString("keychip", "gameid", ""); got != string(v) {
				t.Errorf("keychip.gameid = %q", got)
			}
			if got := doc.GetString("dns", "default", ""); got != "play.mumur.net" {
				t.Errorf("dns.default = %q", got)
			}
			if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
				t.Errorf("output should end with exactly one newline: %q", out[len(out)-10:])
			}
		})
	}
}

func TestEmbeddedFS_WindowsPath(t *testing.T) {
	fsys := embeddedFS{File}
	win, err := fsys.ReadFile(`templates\segatools.ini.tmpl`)
	if err != nil {
		t.Fatalf("ReadFile(windows path) error: %v", err)
	}
	unix, err := fsys.ReadFile("templates/segatools.ini.tmpl")
	if err != nil {
		t.Fatalf("ReadFile(unix path) error: %v", err)
	}
	if string(win) != string(unix) {
		t.Error("Windows and Unix paths returned different content")
	}
}

func TestRenderFile_Custom(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "custom.tmpl")
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(src, []byte("[keychip]\nid={{.KeychipID}}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := RenderFile(src, Info{KeychipID: "X"})
	if err != nil {
		t.Fatalf("RenderFile() error: %v", err)
	}
	if out != "[keychip]\nid=X\n" {
		t.Errorf("RenderFile() = %q", out)
	}
}

func TestRenderFile_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := RenderFile(filepath.Join(dir, "missing.tmpl"), Info{}); err == nil {
		t.Error("expected error for missing template")
	}

	bad := filepath.Join(dir, "bad.tmpl")
	//nolint:gosec // G306: Test file permissions are acceptable
	_ = os.WriteFile(bad, []byte("{{.Nope}}"), 0644)
	if _, err := RenderFile(bad, Info{}); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestToDestination_NeverOverwrites(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "game", "segatools.ini")

	if err := ToDestination(DefaultTemplate, false, starterInfo(variant.SDEZ), dest); err != nil {
		t.Fatalf("ToDestination() error: %v", err)
	}
	//nolint:gosec // G304: test path
	first, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}

	err = ToDestination(DefaultTemplate, false, starterInfo(variant.SDHD), dest)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("second ToDestination() error = %v, want fs.ErrExist", err)
	}
	//nolint:gosec // G304: test path
	second, _ := os.ReadFile(dest)
	if string(first) != string(second) {
		t.Error("existing file was modified")
	}
}
