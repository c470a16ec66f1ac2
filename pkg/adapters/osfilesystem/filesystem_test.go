package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "skin.png")

	if err := fs.WriteFile(path, []byte("pixels")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("expected %q, got %q", "pixels", data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out", "avatars", "steve.png")

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	if err := fs.MkdirAll(nested); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if info, err := os.Stat(nested); err != nil || !info.IsDir() {
		t.Errorf("expected directory to exist: %v", err)
	}
}

func TestFileSystem_Glob(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	matches, err := fs.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 || filepath.Base(matches[0]) != "a.png" || filepath.Base(matches[1]) != "b.png" {
		t.Errorf("unexpected matches %v", matches)
	}
}
