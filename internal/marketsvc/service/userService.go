package service

import (
	"context"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
)

// UserService struct represents the user service layer
type UserService struct {
	userStore *store.UserStore
}

// NewUserService creates a new UserService instance
func NewUserService(userStore *store.UserStore) *UserService {
	return &UserService{
		userStore: userStore,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (int64, error) {
	return s.userStore.CreateUser(ctx, user)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userStore.ListUsers(ctx)
}
