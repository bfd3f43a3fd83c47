package post

import (
	"context"
	"fmt"
	"time"

	"github.com/oncampus-api/internal/pkg/id"
)

const uploadURLTTL = time.Hour

// UploadTarget is a presigned destination for a client-side media upload.
type UploadTarget struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

type Service interface {
	UploadURL(ctx context.Context, userID string) (*UploadTarget, error)
}

type objectStore interface {
	PresignedUploadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type service struct {
	store objectStore
}

func NewService(store objectStore) Service {
	return &service{store: store}
}

// UploadURL issues a 1-hour presigned PUT URL under a caller-scoped key.
// The client uploads media directly to S3 before creating the post that
// references it.
func (s *service) UploadURL(ctx context.Context, userID string) (*UploadTarget, error) {
	key := fmt.Sprintf("posts/%s/%s", userID, id.New())
	url, err := s.store.PresignedUploadURL(ctx, key, uploadURLTTL)
	if err != nil {
		return nil, err
	}
	return &UploadTarget{UploadURL: url, Key: key}, nil
}
