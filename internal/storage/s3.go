// Package storage provides the S3-backed blob store for product and topping
// images. Images are addressed by opaque generated keys; public URIs are
// derived from the key, never stored.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vkozyar/catalog-service/internal/config"
)

// S3API is the subset of the S3 client the storage client depends on.
type S3API interface {
	manager.UploadAPIClient
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Client stores and deletes image blobs in a single S3 bucket.
type Client struct {
	api    S3API
	bucket string
	region string
}

// New creates an S3 storage client from the AWS configuration.
// A custom endpoint switches the client to path-style addressing so
// S3-compatible services (MinIO, LocalStack) work out of the box.
func New(ctx context.Context, conf config.AWSConfig) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(conf.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Options []func(*s3.Options)
	if conf.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &Client{
		api:    s3.NewFromConfig(awsCfg, s3Options...),
		bucket: conf.S3Bucket,
		region: conf.Region,
	}, nil
}

// NewWithAPI wires an explicit S3 API implementation; used by tests.
func NewWithAPI(api S3API, bucket, region string) *Client {
	return &Client{api: api, bucket: bucket, region: region}
}

// Upload stores the blob under the given key.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader) error {
	uploader := manager.NewUploader(c.api)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under the given key.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// ObjectURI derives the public URI for a stored key. Pure, no I/O.
func (c *Client) ObjectURI(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
