package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDirSourceListsRegularFilesOnly(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "songs", "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "songs", "a.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	source := NewDirSource(root)

	names, err := source.List(context.Background(), "songs")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "a.mp3" {
		t.Fatalf("expected [a.mp3], got %v", names)
	}

	data, err := source.Read(context.Background(), "songs/a.mp3")
	if err != nil || string(data) != "x" {
		t.Fatalf("read: %v %q", err, data)
	}
}

func TestDirSourceRejectsEscapingPaths(t *testing.T) {
	source := NewDirSource(t.TempDir())

	if _, err := source.Read(context.Background(), "../outside"); err == nil {
		t.Fatal("expected traversal to be rejected")
	}
	if _, err := source.List(context.Background(), "../outside"); err == nil {
		t.Fatal("expected traversal to be rejected")
	}
}

func TestDirSourceHonorsContextCancellation(t *testing.T) {
	source := NewDirSource(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.List(ctx, "songs"); err == nil {
		t.Fatal("expected cancelled context to abort the list")
	}
	if _, err := source.Read(ctx, "songs/a.mp3"); err == nil {
		t.Fatal("expected cancelled context to abort the read")
	}
}
