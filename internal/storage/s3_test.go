package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidseo/backend/internal/config"
)

type recordingUploader struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (u *recordingUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	u.input = input
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	u.body = string(data)
	if u.err != nil {
		return nil, u.err
	}
	return &manager.UploadOutput{}, nil
}

func TestSave(t *testing.T) {
	up := &recordingUploader{}
	s := &S3Storage{uploader: up, bucket: "thumbs", baseURL: "https://cdn.example.com"}

	url, err := s.Save(context.Background(), "/thumbnails/abc.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/thumbnails/abc.png", url)
	assert.Equal(t, "thumbs", aws.ToString(up.input.Bucket))
	assert.Equal(t, "thumbnails/abc.png", aws.ToString(up.input.Key))
	assert.Equal(t, "image/png", aws.ToString(up.input.ContentType))
	assert.Equal(t, s3types.ObjectCannedACLPublicRead, up.input.ACL)
	assert.Equal(t, "png-bytes", up.body)
}

func TestSaveErrors(t *testing.T) {
	s := &S3Storage{uploader: &recordingUploader{}, bucket: "thumbs"}
	_, err := s.Save(context.Background(), "/", strings.NewReader(""))
	assert.Error(t, err)

	uploadErr := errors.New("access denied")
	s = &S3Storage{uploader: &recordingUploader{err: uploadErr}, bucket: "thumbs"}
	_, err = s.Save(context.Background(), "thumbnails/a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, uploadErr)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ObjectStoreConfig
		want string
	}{
		{"cdn", config.ObjectStoreConfig{Bucket: "b", PublicBaseURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
		{"custom endpoint", config.ObjectStoreConfig{Bucket: "b", Endpoint: "http://localhost:9000/"}, "http://localhost:9000/b"},
		{"aws", config.ObjectStoreConfig{Bucket: "b", Region: "eu-west-1"}, "https://b.s3.eu-west-1.amazonaws.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.ObjectStoreConfig{Region: "us-east-1"})
	assert.Error(t, err)
}
