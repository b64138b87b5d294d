// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"time"

	"gari-service/internal/domain/auth"
	xerrors "gari-service/internal/pkg/errors"
	"gari-service/internal/pkg/jwt"
	"gari-service/internal/pkg/session"
	"gari-service/internal/repository/postgres"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo       *postgres.UserRepository
	jwtManager     *jwt.Manager
	sessionManager *session.Manager
	rateLimiter    *session.RateLimiter
	logger         *zap.Logger
}

func NewAuthService(
	userRepo *postgres.UserRepository,
	jwtManager *jwt.Manager,
	sessionManager *session.Manager,
	rateLimiter *session.RateLimiter,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		jwtManager:     jwtManager,
		sessionManager: sessionManager,
		rateLimiter:    rateLimiter,
		logger:         logger,
	}
}

// Register creates a new seller account and logs it in.
func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest, ip, userAgent string) (*auth.LoginResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, xerrors.ErrDuplicateEntry
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &auth.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
	}
	if req.Phone != "" {
		u.Phone = &req.Phone
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", u.ID))

	return s.issueSession(ctx, u, ip, userAgent)
}

// Login verifies credentials and issues a token-backed session.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, ip, userAgent string) (*auth.LoginResponse, error) {
	allowed, remaining, err := s.rateLimiter.CheckLoginAttempt(ctx, ip, req.Email)
	if err != nil {
		s.logger.Warn("login rate limit check failed", zap.Error(err))
	} else if !allowed {
		s.logger.Warn("login rate limited",
			zap.String("email", req.Email),
			zap.Int64("remaining", remaining),
		)
		return nil, xerrors.ErrRateLimited
	}

	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, ip, req.Email); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}
	if err := s.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		s.logger.Warn("failed to stamp last login", zap.Error(err))
	}

	return s.issueSession(ctx, u, ip, userAgent)
}

func (s *AuthService) issueSession(ctx context.Context, u *auth.User, ip, userAgent string) (*auth.LoginResponse, error) {
	token, jti, err := s.jwtManager.Generator.Generate(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	sess := &session.SessionData{
		JTI:            jti,
		UserID:         u.ID,
		Email:          u.Email,
		IPAddress:      ip,
		UserAgent:      userAgent,
		LoginAt:        now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.jwtManager.Generator.Ttl),
	}
	if err := s.sessionManager.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &auth.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtManager.Generator.Ttl.Seconds()),
		User:      u,
	}, nil
}

// ValidateToken verifies a JWT and confirms its session is still active.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtManager.Verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	if _, err := s.sessionManager.GetSession(ctx, claims.UserID, claims.ID); err != nil {
		return nil, xerrors.ErrSessionExpired
	}

	return claims, nil
}

// Logout revokes the caller's current session.
func (s *AuthService) Logout(ctx context.Context, userID int64, jti string) error {
	return s.sessionManager.RevokeSession(ctx, userID, jti)
}

// LogoutAll revokes every session of the caller across devices.
func (s *AuthService) LogoutAll(ctx context.Context, userID int64) error {
	return s.sessionManager.RevokeAllSessions(ctx, userID)
}

// GetMe retrieves the caller's profile.
func (s *AuthService) GetMe(ctx context.Context, userID int64) (*auth.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
