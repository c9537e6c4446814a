package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankledger/internal/apperrors"
	"bankledger/internal/core/services"
)

func TestAuthenticate_CorrectPIN(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAuthService(mockRepo, "admin123")

	mockRepo.On("FindPIN", context.Background(), int64(1)).Return("4321", nil).Once()

	ok, err := service.Authenticate(context.Background(), 1, "4321")

	require.NoError(t, err)
	assert.True(t, ok)
	mockRepo.AssertExpectations(t)
}

// A wrong PIN on an existing account and any PIN on a missing account must
// be indistinguishable to the caller.
func TestAuthenticate_UniformFalse(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAuthService(mockRepo, "admin123")

	mockRepo.On("FindPIN", context.Background(), int64(1)).Return("4321", nil).Once()
	mockRepo.On("FindPIN", context.Background(), int64(99)).Return("", apperrors.ErrNotFound).Once()

	wrongPIN, err := service.Authenticate(context.Background(), 1, "0000")
	require.NoError(t, err)

	missingAccount, err := service.Authenticate(context.Background(), 99, "0000")
	require.NoError(t, err)

	assert.False(t, wrongPIN)
	assert.False(t, missingAccount)
	assert.Equal(t, wrongPIN, missingAccount)
	mockRepo.AssertExpectations(t)
}

func TestAuthenticate_StorageErrorSurfaces(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAuthService(mockRepo, "admin123")

	mockRepo.On("FindPIN", context.Background(), int64(1)).Return("", assert.AnError).Once()

	ok, err := service.Authenticate(context.Background(), 1, "4321")

	require.Error(t, err)
	assert.False(t, ok)
}

func TestAuthorizeAdmin(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAuthService(mockRepo, "admin123")

	assert.NoError(t, service.AuthorizeAdmin("admin123"))
	assert.ErrorIs(t, service.AuthorizeAdmin("admin124"), apperrors.ErrAccessDenied)
	assert.ErrorIs(t, service.AuthorizeAdmin(""), apperrors.ErrAccessDenied)
}

// An unset admin secret rejects every request rather than matching the
// empty string.
func TestAuthorizeAdmin_FailsClosedWhenUnset(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := services.NewAuthService(mockRepo, "")

	assert.ErrorIs(t, service.AuthorizeAdmin(""), apperrors.ErrAccessDenied)
	assert.ErrorIs(t, service.AuthorizeAdmin("anything"), apperrors.ErrAccessDenied)
}
