package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTemplate creates {dir}/templates/{name}.tex.
func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()

	tmplDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(tmplDir, 0o750); err != nil {
		t.Fatalf("failed to create templates dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmplDir, name+".tex"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "custom", `\documentclass{book}`)

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("loads existing template", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate("custom")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != `\documentclass{book}` {
			t.Errorf("LoadTemplate() = %q", got)
		}
	})

	t.Run("missing template returns ErrTemplateNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("missing")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("traversal name returns ErrInvalidAssetName", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("../../etc/passwd")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "secret.tex"), []byte("secret"), 0o644); err != nil {
		t.Fatalf("failed to write outside file: %v", err)
	}

	dir := t.TempDir()
	tmplDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(tmplDir, 0o750); err != nil {
		t.Fatalf("failed to create templates dir: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.tex"), filepath.Join(tmplDir, "escape.tex")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = loader.LoadTemplate("escape")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadTemplate() error = %v, want ErrPathTraversal", err)
	}
}
