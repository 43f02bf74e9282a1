package service

import (
	"context"

	"cheznous/internal/authz"
	"cheznous/internal/models"
	"cheznous/internal/repository"
	"cheznous/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	policy   *authz.Policy
}

type UpdateProfileInput struct {
	UserID    uint
	Username  *string
	Bio       *string
	Location  *string
	AvatarURL *string
}

func NewUserService(userRepo repository.UserRepository, policy *authz.Policy) *UserService {
	return &UserService{userRepo: userRepo, policy: policy}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile lets a user edit their own profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(ctx, authz.EntityUser, authz.OpUpdate, authz.Actor{ID: in.UserID}, user); err != nil {
		return nil, err
	}

	if in.Username != nil {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = *in.Username
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
