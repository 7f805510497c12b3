package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/mocks"
)

func TestIdentityService_Login(t *testing.T) {
	t.Run("returns the existing user", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		mockUsers.On("FindByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
			ID: "user-1", Email: "alice@example.com", Name: "Alice",
		}, nil)

		service := NewIdentityService(mockUsers)
		user, err := service.Login(context.Background(), "alice@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		mockUsers.AssertNotCalled(t, "Insert")
	})

	t.Run("creates on first sight with a derived name", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		mockUsers.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, nil)

		var created *domain.User
		mockUsers.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		})

		service := NewIdentityService(mockUsers)
		user, err := service.Login(context.Background(), "bob@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "bob", user.Name)
		assert.Equal(t, "bob@example.com", user.Email)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, created, user)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		mockUsers.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, errors.New("database error"))

		service := NewIdentityService(mockUsers)
		user, err := service.Login(context.Background(), "alice@example.com")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestIdentityService_Register(t *testing.T) {
	t.Run("rejects a taken email", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		mockUsers.On("FindByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
			ID: "user-1", Email: "alice@example.com",
		}, nil)

		service := NewIdentityService(mockUsers)
		user, err := service.Register(context.Background(), "alice@example.com", "Alice", "", "")

		assert.ErrorIs(t, err, ErrUserExists)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "Insert")
	})

	t.Run("creates with the supplied details", func(t *testing.T) {
		mockUsers := new(mocks.MockUserRepository)
		mockUsers.On("FindByEmail", mock.Anything, "carol@example.com").Return(nil, nil)
		mockUsers.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		service := NewIdentityService(mockUsers)
		user, err := service.Register(context.Background(), "carol@example.com", "Carol", "555-0101", "7 Oak Lane")

		assert.NoError(t, err)
		assert.Equal(t, "Carol", user.Name)
		assert.Equal(t, "555-0101", user.Phone)
		assert.Equal(t, "7 Oak Lane", user.Address)
		mockUsers.AssertExpectations(t)
	})
}
