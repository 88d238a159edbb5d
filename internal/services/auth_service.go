package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/flamtime/SomeNerts/internal/auth"
	"github.com/flamtime/SomeNerts/internal/errors"
	"github.com/flamtime/SomeNerts/internal/logger"
	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
	"github.com/flamtime/SomeNerts/pkg/config"
)

// authServiceImpl implements AuthService
type authServiceImpl struct {
	repos      *repository.Repositories
	jwtService *auth.JWTService
	logger     logger.Logger
	hash       func(string) (string, error)
}

// NewAuthService creates a new auth service implementation
func NewAuthService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) AuthService {
	if log == nil {
		log = logger.NewNop()
	}
	return &authServiceImpl{
		repos:      repos,
		jwtService: auth.NewJWTService(cfg.JWTSecret),
		logger:     log,
		hash:       auth.HashPassword,
	}
}

// Login authenticates the owner and returns a token pair
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*repository.LoginResponse, error) {
	user, err := s.repos.User.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !stderrors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Failed to load user", err)
			return nil, errors.DatabaseError("failed to load user", err).WithOperation("Login")
		}
		return nil, errors.Unauthorized("invalid credentials", nil).WithOperation("Login")
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn("Failed login attempt", "email", user.Email)
		return nil, errors.Unauthorized("invalid credentials", nil).WithOperation("Login")
	}

	return s.issueTokens(user, "Login")
}

// Setup creates the owner account. It only succeeds while no account
// exists.
func (s *authServiceImpl) Setup(ctx context.Context, req *repository.SetupRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, errors.ValidationError("a valid email and a password of at least 8 characters are required", err).
			WithDetails(err.Error()).WithOperation("Setup")
	}

	count, err := s.repos.User.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count users", err)
		return nil, errors.DatabaseError("failed to count users", err).WithOperation("Setup")
	}
	if count > 0 {
		return nil, errors.Conflict("owner account already exists", nil).WithOperation("Setup")
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, errors.InternalError("failed to hash password", err).WithOperation("Setup")
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         string(models.RoleOwner),
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create owner", err, "email", req.Email)
		return nil, errors.DatabaseError("failed to create owner", err).WithOperation("Setup")
	}

	s.logger.Info("Owner account created", "user_id", user.ID, "email", user.Email)

	// Clear password hash from response
	user.PasswordHash = ""
	return user, nil
}

// ValidateToken validates an access token and returns the owner it was
// issued to. Tokens of accounts that were removed or are not the owner are
// rejected.
func (s *authServiceImpl) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errors.Unauthorized("invalid token", err).WithOperation("ValidateToken")
	}

	// Get user from database to ensure they still exist
	user, err := s.repos.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if !stderrors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Failed to load user", err, "user_id", claims.UserID)
		}
		return nil, errors.Unauthorized("user not found", err).WithOperation("ValidateToken")
	}
	if !user.IsOwner() {
		return nil, errors.Unauthorized("account is not the owner", nil).WithOperation("ValidateToken")
	}

	user.PasswordHash = ""
	return user, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*repository.LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("invalid refresh token", err).WithOperation("RefreshToken")
	}

	user, err := s.repos.User.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Unauthorized("user not found", err).WithOperation("RefreshToken")
	}

	return s.issueTokens(user, "RefreshToken")
}

func (s *authServiceImpl) issueTokens(user *models.User, op string) (*repository.LoginResponse, error) {
	claims := auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, expiresAt, err := s.jwtService.GenerateToken(claims)
	if err != nil {
		return nil, errors.InternalError("failed to generate token", err).WithOperation(op)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(claims)
	if err != nil {
		return nil, errors.InternalError("failed to generate refresh token", err).WithOperation(op)
	}

	return &repository.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User: models.User{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		ExpiresAt: expiresAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
