package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bands.html")

	if err := WriteFile(context.Background(), path, []byte("<p>x</p>")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<p>x</p>" {
		t.Errorf("content = %q, want %q", got, "<p>x</p>")
	}
}

func TestWriteFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "never.txt")
	if err := WriteFile(ctx, path, []byte("x")); err == nil {
		t.Error("expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be created")
	}
}
