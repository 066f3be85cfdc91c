package auth

import (
	"context"
	"errors"
	"testing"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests Register
func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectError   bool
		expectedError error
	}{
		{
			name:     "valid_registration",
			email:    "a@x.com",
			password: "secret",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u model.User) error {
						require.Equal(t, "a@x.com", u.Email)
						require.Equal(t, "secret", u.Password)
						require.False(t, u.CreatedAt.IsZero())
						return nil
					})
			},
		},
		{
			name:          "blank_email",
			email:         "   ",
			password:      "secret",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_password",
			email:         "a@x.com",
			password:      "",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:     "duplicate_email",
			email:    "a@x.com",
			password: "secret",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
					Return(auctionerrors.ErrEmailTaken)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrEmailTaken,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewAuthService(mockRepo)
			err := service.Register(ctx, tc.email, tc.password)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

// Tests Login
func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := model.User{Email: "a@x.com", Password: "secret"}

	tests := []struct {
		name        string
		email       string
		password    string
		mockSetup   func(mockRepo *repository.MockAuctionDB)
		expectError bool
	}{
		{
			name:     "valid_credentials",
			email:    stored.Email,
			password: stored.Password,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUserByEmail(ctx, stored.Email).Return(stored, nil)
			},
		},
		{
			name:     "unknown_user",
			email:    "ghost@x.com",
			password: "secret",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUserByEmail(ctx, "ghost@x.com").
					Return(model.User{}, auctionerrors.ErrUserNotFound)
			},
			expectError: true,
		},
		{
			name:     "wrong_password",
			email:    stored.Email,
			password: "not-the-password",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUserByEmail(ctx, stored.Email).Return(stored, nil)
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewAuthService(mockRepo)
			token, err := service.Login(ctx, tc.email, tc.password)

			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials),
					"login failures must map to invalid credentials, got: %v", err)
				require.Empty(t, token)
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(token)
			require.NoError(t, parseErr, "token should be a valid UUID")
			require.Equal(t, tc.email, service.ResolveEmail("Bearer "+token))
		})
	}
}

// Tests the token lifecycle: resolve, logout, re-resolve.
func TestAuthService_Sessions(t *testing.T) {
	ctx := context.Background()
	stored := model.User{Email: "a@x.com", Password: "secret"}

	newLoggedInService := func(t *testing.T) (*AuthService, string) {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockRepo := repository.NewMockAuctionDB(ctrl)
		mockRepo.EXPECT().GetUserByEmail(ctx, stored.Email).Return(stored, nil)

		service := NewAuthService(mockRepo)
		token, err := service.Login(ctx, stored.Email, stored.Password)
		require.NoError(t, err)
		return service, token
	}

	t.Run("logout_invalidates_token", func(t *testing.T) {
		service, token := newLoggedInService(t)
		require.Equal(t, stored.Email, service.ResolveEmail("Bearer "+token))

		service.Logout("Bearer " + token)
		require.Empty(t, service.ResolveEmail("Bearer "+token))
	})

	t.Run("logout_is_idempotent", func(t *testing.T) {
		service, token := newLoggedInService(t)
		service.Logout("Bearer " + token)
		service.Logout("Bearer " + token)
		service.Logout("Bearer unknown-token")
		require.Empty(t, service.ResolveEmail("Bearer "+token))
	})

	t.Run("malformed_headers_resolve_to_nothing", func(t *testing.T) {
		service, token := newLoggedInService(t)
		require.Empty(t, service.ResolveEmail(token), "raw token without prefix")
		require.Empty(t, service.ResolveEmail("bearer "+token), "prefix is case-sensitive")
		require.Empty(t, service.ResolveEmail("Bearer "))
		require.Empty(t, service.ResolveEmail(""))
	})

	t.Run("unknown_token_resolves_to_nothing", func(t *testing.T) {
		service, _ := newLoggedInService(t)
		require.Empty(t, service.ResolveEmail("Bearer "+"does-not-exist"))
	})
}
