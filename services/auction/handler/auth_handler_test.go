package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-backend/internal/auctionerrors"
	"auction-backend/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test SignupHandler
func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/signup", handler.SignupHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_new_user",
			requestBody: helpers.AuthRequest{Email: "a@x.com", Password: "secret"},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "a@x.com", "secret").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User registered successfully!",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_email",
			requestBody:    helpers.AuthRequest{Password: "secret"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_password",
			requestBody:    helpers.AuthRequest{Email: "a@x.com"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "duplicate_email",
			requestBody: helpers.AuthRequest{Email: "a@x.com", Password: "secret"},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "a@x.com", "secret").
					Return(auctionerrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email is already in use",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.AuthRequest{Email: "a@x.com", Password: "secret"},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "a@x.com", "secret").
					Return(errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", handler.LoginHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_credentials",
			requestBody: helpers.AuthRequest{Email: "a@x.com", Password: "secret"},
			mockSetup: func() {
				mockService.EXPECT().
					Login(gomock.Any(), "a@x.com", "secret").
					Return("token-123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Login successful",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "token-123", data["token"])
				require.Equal(t, "a@x.com", data["email"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "wrong_credentials",
			requestBody: helpers.AuthRequest{Email: "a@x.com", Password: "nope"},
			mockSetup: func() {
				mockService.EXPECT().
					Login(gomock.Any(), "a@x.com", "nope").
					Return("", auctionerrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid credentials",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test LogoutHandler
func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/logout", handler.LogoutHandler)

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "with_token", authHeader: "Bearer token-123"},
		{name: "without_token", authHeader: ""},
		{name: "unknown_token", authHeader: "Bearer no-such-token"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService.EXPECT().Logout(tc.authHeader)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			// logout always succeeds
			require.Equal(t, http.StatusOK, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], "Logout successful")
		})
	}
}
