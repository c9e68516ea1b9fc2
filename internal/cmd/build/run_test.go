package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"salsite/internal/shared/config"
)

type fakeBackend struct {
	keys       []string
	syncCalls  int
	syncDir    string
	syncBucket string
}

func (f *fakeBackend) ListKeys(ctx context.Context, bucket string) ([]string, error) {
	return f.keys, nil
}

func (f *fakeBackend) SyncDir(ctx context.Context, localDir, bucket string) error {
	f.syncCalls++
	f.syncDir = localDir
	f.syncBucket = bucket
	return nil
}

func testSite(t *testing.T) config.Site {
	t.Helper()
	siteCfg := config.DefaultSite()
	siteCfg.OutputDir = filepath.Join(t.TempDir(), "website")
	return siteCfg
}

func TestExecuteWithoutSync(t *testing.T) {
	backend := &fakeBackend{keys: []string{"topicsA/csc1/foo_bar.html"}}
	siteCfg := testSite(t)

	if code := execute(context.Background(), backend, siteCfg, 0, false); code != 0 {
		t.Fatalf("execute() = %d, want 0", code)
	}

	if backend.syncCalls != 0 {
		t.Errorf("SyncDir called %d times with sync disabled, want 0", backend.syncCalls)
	}
	if _, err := os.Stat(filepath.Join(siteCfg.OutputDir, "topicsA", "csc1", "index.html")); err != nil {
		t.Errorf("missing generated index: %v", err)
	}
}

func TestExecuteWithSync(t *testing.T) {
	backend := &fakeBackend{keys: []string{"topicsA/csc1/foo_bar.html"}}
	siteCfg := testSite(t)

	if code := execute(context.Background(), backend, siteCfg, 0, true); code != 0 {
		t.Fatalf("execute() = %d, want 0", code)
	}

	if backend.syncCalls != 1 {
		t.Errorf("SyncDir called %d times with sync enabled, want 1", backend.syncCalls)
	}
	if backend.syncDir != siteCfg.OutputDir {
		t.Errorf("SyncDir dir = %q, want %q", backend.syncDir, siteCfg.OutputDir)
	}
	if backend.syncBucket != siteCfg.Bucket {
		t.Errorf("SyncDir bucket = %q, want %q", backend.syncBucket, siteCfg.Bucket)
	}
}
