package editorconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 200)), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Default()
	s.IndentStyle = Tabs
	if err := WriteFile(path, s); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != Serialize(s) {
		t.Errorf("file content mismatch:\n%s", b)
	}
}

func TestWriteFileRefusesInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := WriteFile(path, Default()); err != nil {
		t.Fatal(err)
	}

	tabs := Default()
	tabs.IndentStyle = "tab"
	zeroWidth := Default()
	zeroWidth.TabWidth = 0

	tests := []struct {
		name string
		s    Settings
	}{
		{"zero value", Settings{}},
		{"unknown indent style", tabs},
		{"zero tab width", zeroWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WriteFile(path, tt.s); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != Serialize(Default()) {
				t.Errorf("existing file should be left unchanged, got:\n%s", b)
			}
		})
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)
	err := WriteFile(path, Default())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the os error to pass through, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	s := Default()
	s.Charset = UTF16LE
	s.EndOfLine = CRLF
	good := filepath.Join(dir, "good")
	if err := WriteFile(good, s); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(good)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != s {
		t.Errorf("got %+v, want %+v", got, s)
	}

	bad := filepath.Join(dir, "bad")
	if err := os.WriteFile(bad, []byte("indent_size = notanumber"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(bad); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	ok, err := Exists(path)
	if err != nil || ok {
		t.Errorf("Exists on missing file = %v, %v", ok, err)
	}

	if err := WriteFile(path, Default()); err != nil {
		t.Fatal(err)
	}
	ok, err = Exists(path)
	if err != nil || !ok {
		t.Errorf("Exists on present file = %v, %v", ok, err)
	}
}
