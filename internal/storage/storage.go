package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/svanberg/goto/internal/model"
)

// ErrNotFound is returned when a bookmark record does not exist on disk.
var ErrNotFound = errors.New("bookmark not found")

// ParseError marks a record file whose contents could not be decoded.
// During a full scan these are skipped with a warning rather than
// aborting the scan.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store persists bookmarks as one YAML file per bookmark under the
// data directory, grouped in one subdirectory per domain and named by
// the bookmark's URL hash.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates a Store rooted at dir.
func New(dir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute record path for a bookmark.
func (s *Store) Path(b model.Bookmark) string {
	return filepath.Join(s.dir, filepath.FromSlash(b.RelPath()))
}

// Save writes a bookmark record. When a record for the same URL already
// exists it is merged in: a non-empty new title replaces the old one and
// tags are unioned, so repeated saves never lose data.
func (s *Store) Save(b model.Bookmark) (model.Bookmark, error) {
	if b.URL == "" {
		return b, fmt.Errorf("refusing to save bookmark without URL")
	}

	if existing, err := s.Load(s.Path(b)); err == nil {
		b = existing.Merge(b)
	} else if !errors.Is(err, ErrNotFound) {
		return b, err
	}

	return b, s.write(b)
}

// Replace overwrites a bookmark's record with exactly the given state,
// skipping the merge. Any existing record for the URL stays in place
// until the new one is renamed over it, so a failed replacement never
// loses the old record.
func (s *Store) Replace(b model.Bookmark) error {
	if b.URL == "" {
		return fmt.Errorf("refusing to save bookmark without URL")
	}
	return s.write(b)
}

// write encodes a record and renames it into place. The write goes to a
// temporary file first, so a partially written record is never
// observable.
func (s *Store) write(b model.Bookmark) error {
	target := s.Path(b)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode bookmark %s: %w", b.URL, err)
	}

	tmp, err := os.CreateTemp(dir, ".goto-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into %s: %w", target, err)
	}

	return nil
}

// Load reads a single bookmark record from path. Returns ErrNotFound
// when the file does not exist, and a *ParseError when the contents
// cannot be decoded.
func (s *Store) Load(path string) (model.Bookmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Bookmark{}, ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("read %s: %w", path, err)
	}

	var b model.Bookmark
	if err := yaml.Unmarshal(data, &b); err != nil {
		return model.Bookmark{}, &ParseError{Path: path, Err: err}
	}
	if b.URL == "" {
		return model.Bookmark{}, &ParseError{Path: path, Err: errors.New("record has no url")}
	}
	b.Tags = model.MergeTags(b.Tags, nil)

	return b, nil
}

// LoadAll walks the data directory and returns every decodable bookmark
// record. Hidden files and directories are skipped, which keeps e.g. a
// .git directory inside the data dir out of scans. A record that fails
// to decode is logged and skipped; the scan continues. A missing data
// directory yields an empty result.
func (s *Store) LoadAll() ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.dir && errors.Is(err, os.ErrNotExist) {
				return filepath.SkipAll
			}
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if strings.HasPrefix(d.Name(), ".") && path != s.dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		b, err := s.Load(path)
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				s.log.Warn("skipping malformed bookmark", "path", path, "error", parseErr.Err)
				return nil
			}
			return err
		}
		bookmarks = append(bookmarks, b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookmarks, nil
}

// Delete removes a bookmark's record file. Returns ErrNotFound when no
// record exists for the bookmark.
func (s *Store) Delete(b model.Bookmark) error {
	path := s.Path(b)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
