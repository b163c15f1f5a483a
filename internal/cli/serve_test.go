package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"edleval/internal/reportserver"
)

// TestServeCommandRequiresDir verifies serve fails when no run directory is provided.
func TestServeCommandRequiresDir(t *testing.T) {
	cmd := findCommand("serve")
	if cmd == nil {
		t.Fatalf("serve command not found")
	}
	var stdout, stderr bytes.Buffer
	exitCode := cmd.Run([]string{}, &stdout, &stderr)
	if exitCode != ExitUsage {
		t.Fatalf("expected usage exit, got %d", exitCode)
	}
}

func TestServeCommandMissingDir(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"serve", "--dir", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)
	if exitCode != ExitError {
		t.Fatalf("expected error exit, got %d", exitCode)
	}
}

// TestServeCommandPassesConfig ensures serve forwards parsed config to the server layer.
func TestServeCommandPassesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "results.duckdb")
	if err := os.WriteFile(dbPath, []byte("duckdb"), 0o644); err != nil {
		t.Fatalf("write temp db: %v", err)
	}

	var gotConfig reportserver.Config
	origServe := serveReport
	serveReport = func(_ context.Context, cfg reportserver.Config) error {
		gotConfig = cfg
		return nil
	}
	t.Cleanup(func() { serveReport = origServe })

	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{
		"serve",
		"--addr", "127.0.0.1:5050",
		"--dir", tmpDir,
		"--db", dbPath,
	}, &stdout, &stderr)
	if exitCode != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", exitCode, stderr.String())
	}
	if gotConfig.Addr != "127.0.0.1:5050" {
		t.Fatalf("unexpected addr: %s", gotConfig.Addr)
	}
	if gotConfig.Dir != tmpDir {
		t.Fatalf("unexpected dir: %s", gotConfig.Dir)
	}
	if gotConfig.DBPath != dbPath {
		t.Fatalf("unexpected db path: %s", gotConfig.DBPath)
	}
}
