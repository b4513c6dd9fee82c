package service

import (
	"errors"
	"testing"
	"time"

	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
	"novelhub/internal/config"
)

func setupAuthService(t *testing.T) AuthService {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:        "test-secret-key-with-enough-length!",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		SimulatedLatency: 0,
	}
	return NewAuthService(repository.NewUserRepository(), repository.NewRefreshTokenRepository(), cfg)
}

func TestRegister_GrantsSignupBonus(t *testing.T) {
	svc := setupAuthService(t)

	user, err := svc.Register("newreader", "password123", "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.RoleReader {
		t.Errorf("Expected reader role, got %s", user.Role)
	}
	if user.Points != 50 {
		t.Errorf("Expected signup bonus of 50 points, got %d", user.Points)
	}
	if user.Password == "password123" {
		t.Error("Expected password to be hashed")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.Register("reader", "password123", "a@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register("reader", "password456", "b@example.com"); !errors.Is(err, ErrNameInUse) {
		t.Errorf("Expected ErrNameInUse, got %v", err)
	}
	// Username matching is case-insensitive
	if _, err := svc.Register("READER", "password456", "c@example.com"); !errors.Is(err, ErrNameInUse) {
		t.Errorf("Expected ErrNameInUse for different casing, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.Register("readerA", "password123", "same@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register("readerB", "password456", "same@example.com"); !errors.Is(err, ErrEmailInUse) {
		t.Errorf("Expected ErrEmailInUse, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.Register("reader", "password123", "a@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accessToken, refreshToken, user, err := svc.Login("reader", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Error("Expected both tokens to be issued")
	}
	if user.LastLogin == nil {
		t.Error("Expected LastLogin to be set")
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected claims for %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != string(models.RoleReader) {
		t.Errorf("Expected reader role claim, got %s", claims.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.Register("reader", "password123", "a@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, _, err := svc.Login("reader", "wrongpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRefreshAccessToken_RotatesTokens(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.Register("reader", "password123", "a@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, refreshToken, _, err := svc.Login("reader", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newAccess, newRefresh, err := svc.RefreshAccessToken(refreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Error("Expected fresh tokens")
	}
	if newRefresh == refreshToken {
		t.Error("Expected refresh token to rotate")
	}

	// The old refresh token is consumed
	if _, _, err := svc.RefreshAccessToken(refreshToken); err == nil {
		t.Error("Expected consumed refresh token to be rejected")
	}
}

func TestRevokeToken(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.Register("reader", "password123", "a@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, refreshToken, _, err := svc.Login("reader", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.RevokeToken(refreshToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.RefreshAccessToken(refreshToken); err == nil {
		t.Error("Expected revoked token to be rejected")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := setupAuthService(t)

	if _, err := svc.ValidateToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
