package publish

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunRefusesMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent")

	if code := Run([]string{missing}); code != 1 {
		t.Errorf("Run(%q) = %d, want 1", missing, code)
	}
}

func TestRunRefusesRegularFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(file, []byte("<html></html>\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if code := Run([]string{file}); code != 1 {
		t.Errorf("Run(%q) = %d, want 1", file, code)
	}
}

func TestRunRejectsBadBucketURI(t *testing.T) {
	dir := t.TempDir()

	if code := Run([]string{dir, "s3://bucket/with-key"}); code != 1 {
		t.Errorf("Run() = %d, want 1 for a non-bucket URI", code)
	}
}
