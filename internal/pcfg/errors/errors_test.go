package errors

import (
	"fmt"
	"io/fs"
	"testing"
)

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrap(ErrNotLoaded, "failed to save")
	if err.Error() != "failed to save: no configuration file is loaded" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !Is(err, ErrNotLoaded) {
		t.Error("wrapped error should match its sentinel")
	}

	err = Wrapf(ErrKeyMissing, "%s.%s", "keychip", "id")
	if err.Error() != "keychip.id: key not found" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
	if Is(err, ErrSectionMissing) {
		t.Error("wrapped error matched the wrong sentinel")
	}
}

func TestAs(t *testing.T) {
	base := &fs.PathError{Op: "open", Path: "segatools.ini", Err: fs.ErrNotExist}
	err := Wrap(fmt.Errorf("load: %w", base), "failed to load config")

	var pathErr *fs.PathError
	if !As(err, &pathErr) {
		t.Fatal("As() should find the PathError")
	}
	if pathErr.Path != "segatools.ini" {
		t.Errorf("Path = %q", pathErr.Path)
	}
	if !Is(err, fs.ErrNotExist) {
		t.Error("Is() should see through every wrap")
	}
}
