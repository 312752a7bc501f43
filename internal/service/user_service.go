package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/sirupsen/logrus"
)

// UserRepository is the persistence contract the user service depends on.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByActiveTrue(ctx context.Context) ([]model.User, error)
	Save(ctx context.Context, u *model.User) (*model.User, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// UserService orchestrates user operations.
type UserService struct {
	users UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// GetAllUsers returns every user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.users.FindAll(ctx)
}

// GetUserByID returns a single user.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the user registered under the given email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w with email: %s", ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetActiveUsers returns all users with the active flag set.
func (s *UserService) GetActiveUsers(ctx context.Context) ([]model.User, error) {
	return s.users.FindByActiveTrue(ctx)
}

// SaveUser inserts a new user.
func (s *UserService) SaveUser(ctx context.Context, u *model.User) (*model.User, error) {
	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	logrus.WithField("user_id", saved.ID).Info("user created")
	return saved, nil
}

// UpdateUser replaces the user's name and email. Password, creation date
// and active flag are left untouched.
func (s *UserService) UpdateUser(ctx context.Context, id int64, details *model.User) (*model.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing.Name = details.Name
	existing.Email = details.Email
	return s.users.Save(ctx, existing)
}

// UpdateUserPartial applies a sparse field map to the user.
func (s *UserService) UpdateUserPartial(ctx context.Context, id int64, updates map[string]any) (*model.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing.ApplyUpdates(updates)
	return s.users.Save(ctx, existing)
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user exists: %w", err)
	}
	if !exists {
		return notFound(ErrUserNotFound, id)
	}
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}
