package services

import (
	"context"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type IdentityService struct {
	users repository.UserRepository
}

func NewIdentityService(users repository.UserRepository) *IdentityService {
	return &IdentityService{users: users}
}

// Login returns the user for the email, creating one on first sight. The
// derived display name is the local part of the address.
func (s *IdentityService) Login(ctx context.Context, email string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := domain.NewUser(email, domain.DisplayNameFromEmail(email), "", "")
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) Register(ctx context.Context, email, name, phone, address string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := domain.NewUser(email, name, phone, address)
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
