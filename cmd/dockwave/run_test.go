package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

// waitReloads runs the loop until reload ran more than n times.
func waitReloads(t *testing.T, l *loop.Loop, count *int, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for *count <= n {
		if time.Now().After(deadline) {
			t.Fatalf("reloads = %d, want more than %d", *count, n)
		}
		l.RunPending()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatchConfigFollowsSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := loop.New()
	reloads := 0
	if err := watchConfig(ctx, path, l, log.New(io.Discard), func() { reloads++ }); err != nil {
		t.Fatalf("watchConfig() error = %v", err)
	}

	// In-place write.
	if err := os.WriteFile(path, []byte("[appearance]\nlog_level = \"debug\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	waitReloads(t, l, &reloads, 0)

	// Save through a rename, the way most editors do.
	seen := reloads
	tmp := filepath.Join(dir, ".config.toml.swp")
	if err := os.WriteFile(tmp, []byte("[appearance]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	waitReloads(t, l, &reloads, seen)

	// Still followed after the rename.
	seen = reloads
	if err := os.WriteFile(path, []byte("[appearance]\nlog_level = \"info\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	waitReloads(t, l, &reloads, seen)
}

func TestWatchConfigIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := loop.New()
	reloads := 0
	if err := watchConfig(ctx, path, l, log.New(io.Discard), func() { reloads++ }); err != nil {
		t.Fatalf("watchConfig() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	l.Drain(10)
	if reloads != 0 {
		t.Errorf("reloads = %d, want 0", reloads)
	}
}

func TestWatchConfigMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "config.toml")
	err := watchConfig(context.Background(), path, loop.New(), log.New(io.Discard), func() {})
	if err == nil {
		t.Error("watchConfig() error = nil, want an error for a missing directory")
	}
}
