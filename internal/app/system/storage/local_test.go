package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocal_PutAndURL(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "/files/")
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}

	err = l.Put(context.Background(), "uploads/images/a.png", strings.NewReader("png-bytes"), nil)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "uploads", "images", "a.png"))
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("content: got %q", data)
	}

	if got := l.URL("uploads/images/a.png"); got != "/files/uploads/images/a.png" {
		t.Errorf("URL = %q", got)
	}
}

func TestLocal_ContainsTraversal(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "store")
	l, err := NewLocal(dir, "/files")
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}

	// Traversal segments are anchored under the base dir, never outside it.
	if err := l.Put(context.Background(), "../escape.txt", strings.NewReader("x"), nil); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(parent, "escape.txt")); !os.IsNotExist(err) {
		t.Error("file escaped the storage root")
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Errorf("anchored file missing: %v", err)
	}
}

func TestLocal_DeleteMissingIsNoop(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "/files")
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	if err := l.Delete(context.Background(), "never/was.txt"); err != nil {
		t.Errorf("Delete of missing file: %v", err)
	}
}
