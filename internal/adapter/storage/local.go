// Package storage keeps recording and export files on local disk.
package storage

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// Local is a flat directory of immutable, uniquely named files.
type Local struct {
	dir string
}

// File is an open stored file.
type File struct {
	io.ReadSeekCloser
	Name    string
	Size    int64
	ModTime time.Time
}

// NewLocal creates the directory if needed and returns a store rooted at it.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Save writes data under name atomically and fails if name exists. The
// file is durable once Save returns.
func (l *Local) Save(name string, data []byte) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("storage: %s: %w", name, domain.ErrAlreadyExists)
	}

	tmp, err := l.createTemp()
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return discard(tmp, "write", name, err)
	}
	return l.commit(tmp, name, path)
}

// SaveStream stores whatever fill writes without holding it in memory. The
// content is hashed on the way to a temporary file, and nameFor receives the
// SHA-256 digest to choose the final name. An error from fill is returned
// unchanged and nothing is kept.
func (l *Local) SaveStream(fill func(w io.Writer) error, nameFor func(digest []byte) string) (string, int64, error) {
	tmp, err := l.createTemp()
	if err != nil {
		return "", 0, err
	}

	h := sha256.New()
	cw := &countingWriter{w: io.MultiWriter(tmp, h)}
	if err := fill(cw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", 0, err
	}

	name := nameFor(h.Sum(nil))
	path, err := l.path(name)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", 0, err
	}
	if _, err := os.Lstat(path); err == nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", 0, fmt.Errorf("storage: %s: %w", name, domain.ErrAlreadyExists)
	}
	if err := l.commit(tmp, name, path); err != nil {
		return "", 0, err
	}
	return name, cw.n, nil
}

func (l *Local) createTemp() (*os.File, error) {
	tmp, err := os.CreateTemp(l.dir, ".upload-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("storage: create temp file: %w", domain.ErrStorage)
	}
	return tmp, nil
}

// commit makes a fully written temp file durable and moves it into place.
func (l *Local) commit(tmp *os.File, name, path string) error {
	if err := tmp.Sync(); err != nil {
		return discard(tmp, "sync", name, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return discard(tmp, "chmod", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: close %s: %v: %w", name, err, domain.ErrStorage)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: rename %s: %v: %w", name, err, domain.ErrStorage)
	}
	return nil
}

func discard(tmp *os.File, op, name string, err error) error {
	tmp.Close()
	os.Remove(tmp.Name())
	return fmt.Errorf("storage: %s %s: %v: %w", op, name, err, domain.ErrStorage)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Open opens a stored file for reading. A missing file is domain.ErrNotFound.
func (l *Local) Open(name string) (*File, error) {
	path, err := l.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("storage: %s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %v: %w", name, err, domain.ErrStorage)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("storage: stat %s: %v: %w", name, err, domain.ErrStorage)
	}
	return &File{ReadSeekCloser: f, Name: name, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (l *Local) Remove(name string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %v: %w", name, err, domain.ErrStorage)
	}
	return nil
}

// path resolves a bare file name inside the store. Names with separators
// or dot segments are rejected.
func (l *Local) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("storage: %w", domain.NewValidationError("file_name", "invalid file name"))
	}
	return filepath.Join(l.dir, name), nil
}
