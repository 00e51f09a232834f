package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/platform/config"
)

type fakeUploader struct {
	key         string
	body        string
	contentType string
	location    string
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.key = *input.Key
	f.body = string(data)
	if input.ContentType != nil {
		f.contentType = *input.ContentType
	}
	return &manager.UploadOutput{Location: f.location}, nil
}

func stageFile(t *testing.T, content string) domain.UploadedFile {
	t.Helper()
	p := filepath.Join(t.TempDir(), "avatar.PNG")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return domain.UploadedFile{Path: p, Filename: "avatar.PNG", ContentType: "image/png", Size: int64(len(content))}
}

func TestS3Storage_UploadUsesPublicBaseURL(t *testing.T) {
	up := &fakeUploader{}
	s := newS3Storage(up, "media", "https://cdn.example.com/")

	url, err := s.Upload(context.Background(), domain.AvatarFolder, stageFile(t, "png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.key, "avatars/"))
	assert.True(t, strings.HasSuffix(up.key, ".png"))
	assert.Equal(t, "png-bytes", up.body)
	assert.Equal(t, "image/png", up.contentType)
	assert.Equal(t, "https://cdn.example.com/"+up.key, url)
}

func TestS3Storage_UploadFallsBackToLocation(t *testing.T) {
	up := &fakeUploader{location: "https://media.s3.amazonaws.com/covers/x.png"}
	s := newS3Storage(up, "media", "")

	url, err := s.Upload(context.Background(), domain.CoverImageFolder, stageFile(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, up.location, url)
}

func TestS3Storage_UploadErrors(t *testing.T) {
	s := newS3Storage(&fakeUploader{err: errors.New("access denied")}, "media", "")
	_, err := s.Upload(context.Background(), domain.AvatarFolder, stageFile(t, "x"))
	assert.ErrorContains(t, err, "access denied")

	_, err = s.Upload(context.Background(), domain.AvatarFolder, domain.UploadedFile{Path: filepath.Join(t.TempDir(), "missing.png")})
	assert.Error(t, err)

	_, err = s.Upload(context.Background(), domain.AvatarFolder, domain.UploadedFile{})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	a := objectKey(domain.AvatarFolder, "../../etc/Photo.JPG")
	b := objectKey(domain.AvatarFolder, "../../etc/Photo.JPG")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "avatars/"))
	assert.True(t, strings.HasSuffix(a, ".jpg"))
	assert.NotContains(t, a, "..")

	assert.NotContains(t, objectKey(domain.CoverImageFolder, "noext"), ".")
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.ObjectStoreConfig{Region: "us-east-1"})
	assert.Error(t, err)
}
