package s3client

import (
	"context"
	"fmt"

	"salsite/internal/shared/config"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ClientOption func(*s3.Options)

// WithPathStyle forces path-style addressing, needed for most
// S3-compatible endpoints (MinIO and friends).
func WithPathStyle(enabled bool) ClientOption {
	return func(o *s3.Options) {
		o.UsePathStyle = enabled
	}
}

func New(ctx context.Context, opts config.Options, clientOpts ...ClientOption) (*s3.Client, error) {
	awsCfg, err := config.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		for _, opt := range clientOpts {
			opt(o)
		}
	})

	return client, nil
}
