package editorconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// WriteFile creates or truncates path and writes the serialized settings to
// it. Settings that do not validate are refused before path is touched. I/O
// errors are returned as-is.
func WriteFile(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	data := Serialize(s)
	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Debug("wrote editorconfig", "path", path, "size", humanize.Bytes(uint64(len(data))))
	return nil
}

// ReadFile reads and parses the settings stored at path.
func ReadFile(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	s, err := Parse(string(b))
	if err != nil {
		return Settings{}, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	log.Debug("read editorconfig", "path", path, "size", humanize.Bytes(uint64(len(b))))
	return s, nil
}

// Exists reports whether a file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("unable to stat %s: %w", path, err)
}
