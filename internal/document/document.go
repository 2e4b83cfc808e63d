package document

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dshills/scribe/internal/log"
)

// tempSuffix names the file a save writes before renaming it into place.
const tempSuffix = ".scribe-save"

// Document is the decoded content of a file and how it was stored.
type Document struct {
	Path   string
	Text   string
	Format Format
}

// Read loads and decodes the file at path.
func Read(fsys FileSystem, path string) (*Document, error) {
	if fsys == nil {
		fsys = DefaultFS()
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}

	text, format, off, err := Decode(data)
	if err != nil {
		de := &DecodeError{Path: path, Offset: off}
		if !errors.Is(err, ErrDecode) {
			de.Err = err
		}
		return nil, de
	}

	log.Debug(log.CatFile, "loaded", "path", path, "bytes", len(data),
		"encoding", format.Encoding, "eol", format.LineEnding)
	return &Document{Path: path, Text: text, Format: format}, nil
}

// Load returns the decoded text of the file at path.
func Load(fsys FileSystem, path string) (string, error) {
	doc, err := Read(fsys, path)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// Write encodes text in format and atomically replaces the file at path.
func Write(fsys FileSystem, path, text string, format Format) error {
	if path == "" {
		return ErrNoPath
	}
	if fsys == nil {
		fsys = DefaultFS()
	}

	data, err := Encode(text, format)
	if err != nil {
		return fmt.Errorf("document: encode %s: %w", path, err)
	}

	perm := fs.FileMode(0o644)
	if info, err := fsys.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDir, path)
		}
		perm = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+tempSuffix)
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("document: write %s: %w", path, err)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("document: replace %s: %w", path, err)
	}

	log.Debug(log.CatFile, "saved", "path", path, "bytes", len(data))
	return nil
}
