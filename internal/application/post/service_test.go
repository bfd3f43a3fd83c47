package post

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) PresignedUploadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func TestUploadURL_KeyScopedToCaller(t *testing.T) {
	os := &mockObjectStore{}
	os.On("PresignedUploadURL", mock.Anything, mock.AnythingOfType("string"), time.Hour).
		Return("https://bucket.s3.amazonaws.com/signed", nil)

	svc := NewService(os)
	target, err := svc.UploadURL(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/signed", target.UploadURL)
	assert.True(t, strings.HasPrefix(target.Key, "posts/u1/"))
	assert.Greater(t, len(target.Key), len("posts/u1/"))
}

func TestUploadURL_KeysAreUnique(t *testing.T) {
	os := &mockObjectStore{}
	os.On("PresignedUploadURL", mock.Anything, mock.AnythingOfType("string"), time.Hour).
		Return("https://bucket.s3.amazonaws.com/signed", nil)

	svc := NewService(os)
	a, err := svc.UploadURL(context.Background(), "u1")
	require.NoError(t, err)
	b, err := svc.UploadURL(context.Background(), "u1")
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
}

func TestUploadURL_PresignFailure(t *testing.T) {
	os := &mockObjectStore{}
	os.On("PresignedUploadURL", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("presign failed"))

	svc := NewService(os)
	_, err := svc.UploadURL(context.Background(), "u1")
	require.Error(t, err)
}
