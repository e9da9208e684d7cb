package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Swastik2002/TrustMed/config"
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/delivery/http/middleware"
	"github.com/Swastik2002/TrustMed/internal/usecase"
	"github.com/Swastik2002/TrustMed/pkg/jwt"
	"github.com/Swastik2002/TrustMed/pkg/validator"

	"github.com/google/uuid"
)

// stubAuthUsecase tracks revoked token IDs so the logout-then-refresh flow
// can be exercised without Redis.
type stubAuthUsecase struct {
	jwtService *jwt.JWTService
	revoked    map[string]bool

	logoutUserID         uuid.UUID
	logoutAccessTokenID  string
	logoutRefreshTokenID string
}

func (s *stubAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: uuid.New(), Name: req.Name, Email: req.Email, Role: req.Role}, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{TokenType: "Bearer"}, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	s.logoutUserID = userID
	s.logoutAccessTokenID = accessTokenID
	s.logoutRefreshTokenID = refreshTokenID
	s.revoked[accessTokenID] = true
	if refreshTokenID != "" {
		s.revoked[refreshTokenID] = true
	}
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, usecase.ErrInvalidToken
	}
	if s.revoked[claims.TokenID] {
		return nil, usecase.ErrTokenRevoked
	}
	return &dto.TokenResponse{TokenType: "Bearer"}, nil
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

func newAuthTestFixture(t *testing.T) (*AuthHandler, *stubAuthUsecase, *jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	stub := &stubAuthUsecase{jwtService: jwtService, revoked: make(map[string]bool)}
	return NewAuthHandler(stub, validator.NewValidator(), jwtService), stub, jwtService
}

func authenticatedRequest(t *testing.T, method, target, body string, userID uuid.UUID, accessTokenID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, accessTokenID)
	return req.WithContext(ctx)
}

func TestLogout(t *testing.T) {
	userID := uuid.New()

	t.Run("revokes the refresh token from the body", func(t *testing.T) {
		h, stub, jwtService := newAuthTestFixture(t)

		_, accessTokenID, err := jwtService.GenerateAccessToken(userID, "doc@clinic.test", 2)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		refreshToken, refreshTokenID, err := jwtService.GenerateRefreshToken(userID, "doc@clinic.test", 2)
		if err != nil {
			t.Fatalf("GenerateRefreshToken: %v", err)
		}

		req := authenticatedRequest(t, http.MethodPost, "/api/v1/auth/logout",
			`{"refresh_token":"`+refreshToken+`"}`, userID, accessTokenID)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.logoutUserID != userID {
			t.Fatalf("logout userID = %s, want %s", stub.logoutUserID, userID)
		}
		if stub.logoutAccessTokenID != accessTokenID {
			t.Fatalf("access token ID = %q, want %q", stub.logoutAccessTokenID, accessTokenID)
		}
		if stub.logoutRefreshTokenID != refreshTokenID {
			t.Fatalf("refresh token ID = %q, want %q", stub.logoutRefreshTokenID, refreshTokenID)
		}

		// The revoked refresh token must no longer mint new tokens.
		refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token",
			strings.NewReader(`{"refresh_token":"`+refreshToken+`"}`))
		refreshRec := httptest.NewRecorder()
		h.RefreshToken(refreshRec, refreshReq)

		if refreshRec.Code != http.StatusUnauthorized {
			t.Fatalf("refresh after logout status = %d, want 401", refreshRec.Code)
		}
	})

	t.Run("missing body still revokes the access token", func(t *testing.T) {
		h, stub, jwtService := newAuthTestFixture(t)

		_, accessTokenID, err := jwtService.GenerateAccessToken(userID, "doc@clinic.test", 2)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}

		req := authenticatedRequest(t, http.MethodPost, "/api/v1/auth/logout", "", userID, accessTokenID)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.logoutAccessTokenID != accessTokenID {
			t.Fatalf("access token ID = %q, want %q", stub.logoutAccessTokenID, accessTokenID)
		}
		if stub.logoutRefreshTokenID != "" {
			t.Fatalf("refresh token ID = %q, want empty", stub.logoutRefreshTokenID)
		}
	})

	t.Run("garbage refresh token is ignored", func(t *testing.T) {
		h, stub, jwtService := newAuthTestFixture(t)

		_, accessTokenID, err := jwtService.GenerateAccessToken(userID, "doc@clinic.test", 2)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}

		req := authenticatedRequest(t, http.MethodPost, "/api/v1/auth/logout",
			`{"refresh_token":"not-a-jwt"}`, userID, accessTokenID)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.logoutRefreshTokenID != "" {
			t.Fatalf("refresh token ID = %q, want empty", stub.logoutRefreshTokenID)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _, _ := newAuthTestFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

var _ usecase.AuthUsecase = (*stubAuthUsecase)(nil)
