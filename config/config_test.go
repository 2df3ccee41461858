package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDirRespectsXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "plan9" {
		t.Skip("XDG_CONFIG_HOME is only consulted on other Unix systems")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	if got, want := Dir(), filepath.Join(base, "peek"); got != want {
		t.Fatalf("unexpected dir: want %q got %q", want, got)
	}
	if got, want := LogFile(), filepath.Join(base, "peek", "peek.log"); got != want {
		t.Fatalf("unexpected log file: want %q got %q", want, got)
	}
}

func TestDirFallsBackToTemp(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "plan9" {
		t.Skip("fallback depends on XDG/HOME resolution")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	t.Setenv("TMPDIR", tmp)

	if got, want := Dir(), filepath.Join(tmp, "peek"); got != want {
		t.Fatalf("unexpected fallback dir: want %q got %q", want, got)
	}
}
