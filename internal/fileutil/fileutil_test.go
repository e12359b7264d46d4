package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "seq_001_a.jpg")
	if err := os.WriteFile(src, []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected source to be gone, got %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "pixels" {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestMoveFileRefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "b.jpg")
	for _, p := range []string{src, dst} {
		if err := os.WriteFile(p, []byte(filepath.Base(p)), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	err := MoveFile(src, dst)
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "b.jpg" {
		t.Fatalf("target overwritten: %q", got)
	}
}

func TestMoveFileRefusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "seq_001_a.jpg")
	if err := os.WriteFile(src, []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := MoveFile(src, dst); !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("expected source untouched: %v", err)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "gone.jpg"), filepath.Join(dir, "seq_001_gone.jpg"))
	if err == nil || errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected a plain rename error, got %v", err)
	}
}

func TestRenameExclusiveRefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "b.jpg")
	for _, p := range []string{src, dst} {
		if err := os.WriteFile(p, []byte(filepath.Base(p)), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := renameExclusive(src, dst); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected fs.ErrExist, got %v", err)
	}
	if err := os.Remove(dst); err != nil {
		t.Fatal(err)
	}
	if err := renameExclusive(src, dst); err != nil {
		t.Fatalf("renameExclusive: %v", err)
	}
}

func TestMoveFileSamePathIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	if err := MoveFile(path, path); err != nil {
		t.Fatalf("expected nil error for identical paths, got %v", err)
	}
}

func TestPreserveModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2021, 6, 1, 12, 30, 0, 0, time.UTC)
	if err := PreserveModTime(path, want); err != nil {
		t.Fatalf("PreserveModTime: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(want) {
		t.Fatalf("mtime = %v, want %v", info.ModTime(), want)
	}
}

func TestCreationTimeIsSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	before := time.Now().Add(-time.Minute)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	got := CreationTime(path, info)
	if got.IsZero() {
		t.Fatal("expected non-zero creation time")
	}
	if got.Before(before) {
		t.Fatalf("creation time %v earlier than test start %v", got, before)
	}
}
