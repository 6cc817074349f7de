// Package docs resolves documentation slugs to content. The production
// implementation reads from an S3 bucket maintained by the docs pipeline;
// the engine itself only passes slugs through.
package docs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrNotFound is returned when a slug has no content.
var ErrNotFound = errors.New("document not found")

// Store resolves doc slugs to content.
type Store interface {
	Resolve(ctx context.Context, slug string) ([]byte, error)
}

// S3Store reads documents from an S3 bucket, keyed "docs/<slug>.md".
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store creates a docs store against the given bucket.
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Resolve fetches the content for a slug.
func (s *S3Store) Resolve(ctx context.Context, slug string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String("docs/" + slug + ".md"),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch document %s: %w", slug, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", slug, err)
	}

	return data, nil
}
