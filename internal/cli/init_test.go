package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edleval.yml")

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "nil_cluster_min_size: 3") {
		t.Fatalf("unexpected scaffold:\n%s", data)
	}

	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"init", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected error exit on existing file, got %d", code)
	}
}
