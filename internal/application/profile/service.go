package profile

import (
	"context"
	"strings"

	"github.com/oncampus-api/internal/domain"
)

const (
	fieldBio       = "bio"
	fieldFirstName = "first_name"
	fieldLastName  = "last_name"
)

type Service interface {
	Update(ctx context.Context, userID string, req domain.UpdateProfileRequest) error
	Search(ctx context.Context, query string) ([]domain.Profile, error)
}

type userStore interface {
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	Search(ctx context.Context, query string) ([]domain.Profile, error)
}

type service struct {
	userRepo userStore
}

func NewService(userRepo userStore) Service {
	return &service{userRepo: userRepo}
}

// Update applies a partial profile edit to the caller's own row.
// All-nil requests are a no-op.
func (s *service) Update(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates[fieldBio] = *req.Bio
	}
	if req.FirstName != nil {
		updates[fieldFirstName] = *req.FirstName
	}
	if req.LastName != nil {
		updates[fieldLastName] = *req.LastName
	}
	if len(updates) == 0 {
		return nil
	}
	return s.userRepo.Update(ctx, userID, updates)
}

func (s *service) Search(ctx context.Context, query string) ([]domain.Profile, error) {
	return s.userRepo.Search(ctx, strings.ToLower(query))
}
