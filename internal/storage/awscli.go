package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CLI shells out to the aws command-line client for both operations.
type CLI struct {
	Verbose int
	Stdout  io.Writer
}

func (c *CLI) ListKeys(ctx context.Context, bucket string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "aws", "s3", "ls", "s3://"+bucket, "--recursive")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("aws s3 ls failed for bucket %s: %w", bucket, err)
	}
	return ParseListing(string(out)), nil
}

// ParseListing extracts object keys from `aws s3 ls --recursive` output.
// Lines are whitespace-delimited with the key in the final field, possibly
// single-quoted. A bare "b" is raw-output framing noise, not a key.
func ParseListing(out string) []string {
	var keys []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		key := strings.Trim(fields[len(fields)-1], "'")
		if key == "" || key == "b" {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func (c *CLI) SyncDir(ctx context.Context, localDir, bucket string) error {
	// The trailing separator makes the CLI copy the directory contents
	// rather than the directory itself.
	src := strings.TrimSuffix(localDir, "/") + "/"
	cmd := exec.CommandContext(ctx, "aws", "s3", "sync", src, "s3://"+bucket, "--acl", "public-read")
	out, err := cmd.Output()

	if c.Verbose > 0 {
		w := c.Stdout
		if w == nil {
			w = os.Stdout
		}
		for _, line := range strings.Split(string(out), "\n") {
			fmt.Fprintln(w, line)
		}
	}

	if err != nil {
		return fmt.Errorf("aws s3 sync to bucket %s failed: %w", bucket, err)
	}
	return nil
}
