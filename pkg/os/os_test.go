package os

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "probe")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{path: dir, want: true},
		{path: file, want: true},
		{path: filepath.Join(dir, "nope"), want: false},
	}

	for _, test := range tests {
		if got := Exists(test.path); got != test.want {
			t.Errorf("Exists(%v) = %v, want %v", test.path, got, test.want)
		}
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "probe")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{path: dir, want: true},
		{path: file, want: false},
		{path: filepath.Join(dir, "nope"), want: false},
	}

	for _, test := range tests {
		if got := DirExists(test.path); got != test.want {
			t.Errorf("DirExists(%v) = %v, want %v", test.path, got, test.want)
		}
	}
}

func TestCheckCreateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := CheckCreateDir(dir); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Errorf("dir %v was not created", dir)
	}
	// second call is a no-op
	if err := CheckCreateDir(dir); err != nil {
		t.Errorf("re-create of %v failed: %v", dir, err)
	}
}

func TestFileLock(t *testing.T) {
	lock, err := NewFileLock(filepath.Join(t.TempDir(), "locks", "test.lock"))
	if err != nil {
		t.Fatal(err)
	}
	if err := lock.Lock(); err != nil {
		t.Fatal(err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatal(err)
	}
}
