package s3uri

import (
	"fmt"
	"strings"
)

// ParseBucket extracts the bucket from an S3 URI that names only a bucket
// (s3://bucket, with or without a trailing slash).
func ParseBucket(uri string) (string, error) {
	if !strings.HasPrefix(uri, "s3://") {
		return "", fmt.Errorf("invalid S3 URI %q: must start with s3://", uri)
	}
	rest := strings.TrimPrefix(uri, "s3://")
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return "", fmt.Errorf("invalid S3 URI %q: bucket name is empty", uri)
	}
	if strings.ContainsRune(rest, '/') {
		return "", fmt.Errorf("invalid S3 URI %q: expected a bare bucket", uri)
	}
	return rest, nil
}
