// Package storage abstracts the two bucket operations the site generator
// needs: a recursive key listing and a local-directory upload. The SDK
// backend talks to S3 directly; the CLI backend shells out to the aws
// command-line client, which is what older deployments of this tool ran on.
package storage

import "context"

type Backend interface {
	// ListKeys returns every object key in the bucket.
	ListKeys(ctx context.Context, bucket string) ([]string, error)
	// SyncDir uploads the contents of localDir to the bucket with
	// public-read access.
	SyncDir(ctx context.Context, localDir, bucket string) error
}
