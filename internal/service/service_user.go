package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every account without password hashes. An empty
// database yields an empty, non-nil slice.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}
	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}
