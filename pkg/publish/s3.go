package publish

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client the target needs.
// *s3.Client satisfies it; tests substitute a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 publishes to an S3 bucket.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	target := &publish.S3{
//	    Client: s3.NewFromConfig(cfg),
//	    Bucket: "my-site",
//	    Prefix: "preview/",
//	}
type S3 struct {
	Client S3API

	// Bucket is the destination bucket name.
	Bucket string

	// Prefix is prepended to every key, e.g. "site/".
	Prefix string

	// BaseURL, when set, is used to build the returned location
	// (BaseURL + "/" + key). Otherwise an s3:// URI is returned.
	BaseURL string
}

// Put uploads body under Prefix+key with the given content type.
func (t *S3) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	key = strings.TrimPrefix(key, "/")
	fullKey := t.Prefix + key

	_, err := t.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(t.Bucket),
		Key:         aws.String(fullKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("publish: s3 put %s: %w", fullKey, err)
	}

	if t.BaseURL != "" {
		return strings.TrimSuffix(t.BaseURL, "/") + "/" + key, nil
	}
	return fmt.Sprintf("s3://%s/%s", t.Bucket, fullKey), nil
}
