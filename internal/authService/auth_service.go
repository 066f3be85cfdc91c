package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

const bearerPrefix = "Bearer "

// AuthService handles registration, login, and the in-memory session
// token map. Tokens are opaque, unbounded, and live until explicit
// logout or process restart; the map is the sole session mechanism.
type AuthService struct {
	repo repository.AuctionDB

	mu           sync.RWMutex
	activeTokens map[string]string // token -> user email
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repository.AuctionDB) *AuthService {
	return &AuthService{
		repo:         repo,
		activeTokens: make(map[string]string),
	}
}

// Register creates a new user account, failing on a duplicate email.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("auth: %w - email and password are required", auctionerrors.ErrInvalidInput)
	}

	user := models.User{
		Email:     email,
		Password:  password, // plaintext on purpose, see models.User
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("auth: failed to register %s: %w", email, err)
	}

	utils.Info("user registered", map[string]any{"email": email})
	return nil
}

// Login validates credentials and issues a fresh opaque token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("auth: %w", auctionerrors.ErrInvalidCredentials)
	}
	if user.Password != password {
		return "", fmt.Errorf("auth: %w", auctionerrors.ErrInvalidCredentials)
	}

	token := utils.GenerateID()
	s.mu.Lock()
	s.activeTokens[token] = user.Email
	s.mu.Unlock()

	utils.Info("user logged in", map[string]any{"email": email})
	return token, nil
}

// Logout removes the token from the session map. Unknown or malformed
// tokens are ignored, making logout idempotent.
func (s *AuthService) Logout(bearerToken string) {
	token, ok := stripBearer(bearerToken)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.activeTokens, token)
	s.mu.Unlock()
}

// ResolveEmail maps an Authorization header value to the logged-in
// user's email. It returns "" if the header is malformed or the token
// is not in the session map.
func (s *AuthService) ResolveEmail(bearerToken string) string {
	token, ok := stripBearer(bearerToken)
	if !ok {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTokens[token]
}

func stripBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) || len(header) <= len(bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}
