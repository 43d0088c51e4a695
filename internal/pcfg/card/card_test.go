package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/performai/pcfg/internal/pcfg/errors"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, []byte("01234567890123456789"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		configured string
		want       string
	}{
		{
			name:       "configured file exists",
			files:      []string{"DEVICE/aime.txt", "DEVICE/felica.txt"},
			configured: "DEVICE/aime.txt",
			want:       "DEVICE/aime.txt",
		},
		{
			name:       "aime falls back to felica",
			files:      []string{"DEVICE/felica.txt"},
			configured: "DEVICE/aime.txt",
			want:       "DEVICE/felica.txt",
		},
		{
			name:       "felica falls back to aime",
			files:      []string{"DEVICE/aime.txt"},
			configured: "DEVICE/felica.txt",
			want:       "DEVICE/aime.txt",
		},
		{
			name:       "basename match is case-insensitive",
			files:      []string{"DEVICE/felica.txt"},
			configured: "DEVICE/AIME.TXT",
			want:       "DEVICE/felica.txt",
		},
		{
			name:       "other name prefers aime",
			files:      []string{"DEVICE/aime.txt", "DEVICE/felica.txt"},
			configured: "DEVICE/card.txt",
			want:       "DEVICE/aime.txt",
		},
		{
			name:       "other name then felica",
			files:      []string{"DEVICE/felica.txt"},
			configured: "DEVICE/card.txt",
			want:       "DEVICE/felica.txt",
		},
		{
			name:       "nothing exists",
			files:      nil,
			configured: "DEVICE/aime.txt",
			want:       "DEVICE/aime.txt",
		},
		{
			name:       "windows separators",
			files:      []string{"DEVICE/felica.txt"},
			configured: `DEVICE\aime.txt`,
			want:       "DEVICE/felica.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			for _, f := range tt.files {
				touch(t, filepath.Join(base, filepath.FromSlash(f)))
			}

			got := Resolve(tt.configured, base)
			want := filepath.Join(base, filepath.FromSlash(tt.want))
			if got != want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.configured, got, want)
			}
		})
	}
}

func TestResolve_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "felica.txt"))

	got := Resolve(filepath.Join(dir, "aime.txt"), "/does/not/matter")
	if want := filepath.Join(dir, "felica.txt"); got != want {
		t.Errorf("Resolve(abs) = %q, want %q", got, want)
	}
}

func TestCheckConflict(t *testing.T) {
	dir := t.TempDir()

	if _, conflict := CheckConflict(dir); conflict {
		t.Error("empty directory reported a conflict")
	}

	touch(t, filepath.Join(dir, "aime.txt"))
	if _, conflict := CheckConflict(dir); conflict {
		t.Error("single aime.txt reported a conflict")
	}

	touch(t, filepath.Join(dir, "felica.txt"))
	c, conflict := CheckConflict(dir)
	if !conflict {
		t.Fatal("expected conflict with both files present")
	}
	if c.AimePath != filepath.Join(dir, "aime.txt") || c.FelicaPath != filepath.Join(dir, "felica.txt") {
		t.Errorf("unexpected conflict paths: %+v", c)
	}

	// Resolution stays deterministic while conflicting.
	if got := Resolve("card.txt", dir); got != c.AimePath {
		t.Errorf("Resolve() during conflict = %q, want %q", got, c.AimePath)
	}
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DEVICE", "aime.txt")

	content, ok, err := Read(path)
	if err != nil || ok || content != "" {
		t.Errorf("Read(missing) = %q, %v, %v; want empty, false, nil", content, ok, err)
	}

	if err := Write(path, "01020304050607080910\r\n"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	content, ok, err = Read(path)
	if err != nil || !ok {
		t.Fatalf("Read() = %v, %v", ok, err)
	}
	if content != "01020304050607080910\r\n" {
		t.Errorf("Read() = %q, content must be verbatim", content)
	}
}

func TestWrite_EmptyPath(t *testing.T) {
	if err := Write("  ", "x"); !errors.Is(err, errors.ErrEmptyCardPath) {
		t.Errorf("Write(empty) error = %v, want ErrEmptyCardPath", err)
	}
}
