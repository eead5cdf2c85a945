package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/mocks"
	"github.com/dtroode/socialfeed-server/internal/model"
	"github.com/dtroode/socialfeed-server/internal/testutil"
)

func TestUser_FindByUsername(t *testing.T) {
	users := mocks.NewUserStore(t)
	s := NewUser(users, testutil.MakeNoopLogger())
	stored := model.User{ID: uuid.New(), Email: "bob@example.com", Username: "bob", PasswordHash: "secret-hash"}

	users.On("GetByUsername", mock.Anything, "bob").Return(stored, nil)
	users.On("GetByUsername", mock.Anything, "nobody").Return(model.User{}, model.ErrNotFound)

	profile, err := s.FindByUsername(context.Background(), " bob ")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, profile.ID)
	assert.Equal(t, "bob", profile.Username)

	_, err = s.FindByUsername(context.Background(), "nobody")
	assert.Equal(t, apiErrors.KindNotFound, apiErrors.KindOf(err))

	_, err = s.FindByUsername(context.Background(), "  ")
	assert.Equal(t, apiErrors.KindValidation, apiErrors.KindOf(err))
}

func TestUser_FindByEmail(t *testing.T) {
	users := mocks.NewUserStore(t)
	s := NewUser(users, testutil.MakeNoopLogger())

	users.On("GetByEmail", mock.Anything, "bob@example.com").Return(model.User{ID: uuid.New(), Email: "bob@example.com"}, nil)
	users.On("GetByEmail", mock.Anything, "broken@example.com").Return(model.User{}, assert.AnError)

	profile, err := s.FindByEmail(context.Background(), "Bob@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", profile.Email)

	_, err = s.FindByEmail(context.Background(), "broken@example.com")
	require.ErrorIs(t, err, assert.AnError)

	_, err = s.FindByEmail(context.Background(), "")
	assert.Equal(t, apiErrors.KindValidation, apiErrors.KindOf(err))
}
