package files

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) File {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return New(path)
}

func TestNew(t *testing.T) {
	f := New("/tmp/dir/../notes.txt")
	if f.Path != "/tmp/notes.txt" {
		t.Fatalf("unexpected path: %q", f.Path)
	}
	if f.Name != "notes.txt" {
		t.Fatalf("unexpected name: %q", f.Name)
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"tabs", "\tx\ny\tz", []string{"    x", "y    z"}},
		{"control chars", "\x1b[1;1Hxx\na\rb", []string{"\uFFFD[1;1Hxx", "a\uFFFDb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected lines: want %q got %q", tt.want, got)
			}
		})
	}
}

func TestReadLinesInvalidUTF8(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("ok\n\xff\xfebad\n"))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("unexpected error: want %v got %v", ErrInvalidUTF8, err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error should name the line: %v", err)
	}
	if lines != nil {
		t.Fatalf("expected no lines on failure, got %q", lines)
	}
}

func TestLoadInvalidUTF8(t *testing.T) {
	f := writeFile(t, "bin.dat", "fine\n\xc3\x28\n")
	_, err := Load(f)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("unexpected error: want %v got %v", ErrInvalidUTF8, err)
	}
	if !strings.Contains(err.Error(), f.Path) {
		t.Fatalf("error should name the path: %v", err)
	}
}

func TestDiskSource(t *testing.T) {
	f := writeFile(t, "d.txt", "x\n")
	var src Source = Disk{}
	lines, err := src.Lines(f)
	if err != nil || len(lines) != 1 || lines[0] != "x" {
		t.Fatalf("unexpected result: %q %v", lines, err)
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got, err := ReadLines(strings.NewReader(long + "\nshort"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || len(got[0]) != len(long) || got[1] != "short" {
		t.Fatalf("long line not preserved: %d lines", len(got))
	}
}

func TestReadLinesTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxLineSize+1)
	if _, err := ReadLines(strings.NewReader(long)); err == nil {
		t.Fatalf("expected error for line over %d bytes", MaxLineSize)
	}
}

func TestLoad(t *testing.T) {
	f := writeFile(t, "a.txt", "one\n\ttwo\n")
	lines, err := Load(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"one", "    two"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines: want %q got %q", want, lines)
	}
}

func TestLoadMissing(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "missing.txt"))
	lines, err := Load(f)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines != nil {
		t.Fatalf("expected no lines on failure, got %q", lines)
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(New(t.TempDir()))
	if !errors.Is(err, ErrNotRegular) {
		t.Fatalf("unexpected error: want %v got %v", ErrNotRegular, err)
	}
}

func TestCache(t *testing.T) {
	f := writeFile(t, "c.txt", "first\n")
	c := NewCache(4)

	lines, err := c.Lines(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("unexpected cache len: %d", c.Len())
	}

	// A hit must not touch the disk again.
	if err := os.WriteFile(f.Path, []byte("changed\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	again, err := c.Lines(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, again) {
		t.Fatalf("cache miss on repeated load: want %q got %q", lines, again)
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	c := NewCache(4)
	if _, err := c.Lines(New(filepath.Join(t.TempDir(), "nope"))); err == nil {
		t.Fatalf("expected error")
	}
	if c.Len() != 0 {
		t.Fatalf("failed load was cached")
	}
}
