// Copyright (c) 2025 Quillhub
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	platformconfig "github.com/quillhub/blog-api/internal/platform/config"
)

// s3Provider implements BlobProvider for any S3-compatible storage
// (AWS S3, Cloudflare R2, MinIO) using the AWS S3 SDK.
type s3Provider struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

// NewS3Provider creates a new S3 provider from configuration.
func NewS3Provider(cfg *platformconfig.StorageConfig) (BlobProvider, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY are required")
	}
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET_NAME is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Non-AWS endpoints (R2, MinIO) require path-style addressing.
			o.UsePathStyle = true
		}
	})

	return &s3Provider{
		s3Client:  s3Client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores data under key with the given content type.
func (p *s3Provider) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Delete removes the object stored under key.
func (p *s3Provider) Delete(ctx context.Context, key string) error {
	_, err := p.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Head returns the stored object size in bytes.
func (p *s3Provider) Head(ctx context.Context, key string) (int64, error) {
	headOutput, err := p.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get object metadata: %w", err)
	}
	if headOutput.ContentLength == nil {
		return 0, fmt.Errorf("content length is nil")
	}
	return *headOutput.ContentLength, nil
}

// PublicURL returns the delivery URL for an object key. When a CDN base URL
// is configured it is used directly; otherwise the bucket endpoint form.
func (p *s3Provider) PublicURL(key string) string {
	if p.publicURL != "" {
		return fmt.Sprintf("%s/%s", p.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, key)
}
