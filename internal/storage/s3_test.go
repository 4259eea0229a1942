package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockS3API is a mock implementation of the S3 API for testing.
type mockS3API struct {
	putObjectFunc    func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	deleteObjectFunc func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func (m *mockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putObjectFunc != nil {
		return m.putObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3API) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.deleteObjectFunc != nil {
		return m.deleteObjectFunc(ctx, params, optFns...)
	}
	return &s3.DeleteObjectOutput{}, nil
}

// The multipart paths are never hit for images under the 5 MB part size.
func (m *mockS3API) CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (m *mockS3API) UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (m *mockS3API) CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (m *mockS3API) AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func TestClient_Upload(t *testing.T) {
	t.Run("uploads under the given key", func(t *testing.T) {
		var gotKey, gotBucket string
		var gotBody []byte

		mock := &mockS3API{
			putObjectFunc: func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				gotKey = *params.Key
				gotBucket = *params.Bucket
				var err error
				gotBody, err = io.ReadAll(params.Body)
				require.NoError(t, err)
				return &s3.PutObjectOutput{}, nil
			},
		}

		client := NewWithAPI(mock, "catalog-images", "us-east-1")
		err := client.Upload(context.Background(), "abc-123", bytes.NewReader([]byte("image-bytes")))

		require.NoError(t, err)
		assert.Equal(t, "abc-123", gotKey)
		assert.Equal(t, "catalog-images", gotBucket)
		assert.Equal(t, []byte("image-bytes"), gotBody)
	})

	t.Run("surfaces upload failure", func(t *testing.T) {
		mock := &mockS3API{
			putObjectFunc: func(_ context.Context, _ *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				return nil, errors.New("bucket unavailable")
			},
		}

		client := NewWithAPI(mock, "catalog-images", "us-east-1")
		err := client.Upload(context.Background(), "abc-123", bytes.NewReader([]byte("x")))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "abc-123")
	})
}

func TestClient_Delete(t *testing.T) {
	t.Run("deletes the given key", func(t *testing.T) {
		var gotKey string
		mock := &mockS3API{
			deleteObjectFunc: func(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
				gotKey = *params.Key
				return &s3.DeleteObjectOutput{}, nil
			},
		}

		client := NewWithAPI(mock, "catalog-images", "us-east-1")
		err := client.Delete(context.Background(), "old-key")

		require.NoError(t, err)
		assert.Equal(t, "old-key", gotKey)
	})

	t.Run("surfaces delete failure", func(t *testing.T) {
		mock := &mockS3API{
			deleteObjectFunc: func(_ context.Context, _ *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
				return nil, errors.New("access denied")
			},
		}

		client := NewWithAPI(mock, "catalog-images", "us-east-1")
		err := client.Delete(context.Background(), "old-key")
		require.Error(t, err)
	})
}

func TestClient_ObjectURI(t *testing.T) {
	client := NewWithAPI(nil, "catalog-images", "eu-central-1")
	uri := client.ObjectURI("abc-123")
	assert.Equal(t, "https://catalog-images.s3.eu-central-1.amazonaws.com/abc-123", uri)
}
