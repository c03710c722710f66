package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/mock"
	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("hides password hashes", func(t *testing.T) {
		repo := mock.NewMockUserRepository(newController(t))
		repo.EXPECT().ListUsers(ctx).Return([]models.User{
			{ID: "u1", Email: "a@test.com", Password: "$2a$hash", Places: []string{"p1"}},
		}, nil)

		users, err := NewUserService(repo, logger.Nop()).ListUsers(ctx)

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Empty(t, users[0].Password)
		assert.Equal(t, []string{"p1"}, users[0].Places)
	})

	t.Run("empty database", func(t *testing.T) {
		repo := mock.NewMockUserRepository(newController(t))
		repo.EXPECT().ListUsers(ctx).Return(nil, nil)

		users, err := NewUserService(repo, logger.Nop()).ListUsers(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("storage error", func(t *testing.T) {
		repo := mock.NewMockUserRepository(newController(t))
		repo.EXPECT().ListUsers(ctx).Return(nil, errStorage)

		_, err := NewUserService(repo, logger.Nop()).ListUsers(ctx)

		require.ErrorIs(t, err, errStorage)
	})
}
