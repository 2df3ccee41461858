// Package files loads text sources into immutable line stores.
package files

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/drake/peek/text"
)

// MaxLineSize is the longest single line ReadLines accepts.
const MaxLineSize = 1 << 20

var (
	// ErrNotRegular is returned when a path names something other than a regular file.
	ErrNotRegular = errors.New("not a regular file")

	// ErrInvalidUTF8 is returned when a line cannot be decoded as UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Source yields the line store for a file.
type Source interface {
	Lines(f File) ([]string, error)
}

// Disk is a Source that reads the file on every call.
type Disk struct{}

// Lines implements Source.
func (Disk) Lines(f File) ([]string, error) {
	return Load(f)
}

// File describes a text source on disk.
type File struct {
	Path string
	Name string
}

// New returns a descriptor for path.
func New(path string) File {
	clean := filepath.Clean(path)
	return File{Path: clean, Name: filepath.Base(clean)}
}

// Load opens f and reads it into a line store.
// Nothing is returned on failure; a partially read file is never handed out.
func Load(f File) ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", f.Path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", f.Path, ErrNotRegular)
	}

	lines, err := ReadLines(fh)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return lines, nil
}

// ReadLines splits r into display-ready lines: line endings are removed and
// each line is passed through text.Normalize. A line that is not valid UTF-8
// fails the whole read.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var lines []string
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", n, ErrInvalidUTF8)
		}
		lines = append(lines, text.Normalize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
