package identity

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/littlelemon/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// TokenIssuer mints access tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(input auth.GenerateTokenInput) (*auth.Token, error)
}

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for obtaining a token
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the read model for a user
type UserResponse struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Groups   []string `json:"groups"`
}

// LoginResponse carries the issued token together with the user
type LoginResponse struct {
	Token *auth.Token  `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthService handles registration and login
type AuthService struct {
	users  identity.UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewAuthService(users identity.UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account. Usernames are unique.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "username already taken")
	}

	user, err := identity.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Uint("id", user.ID),
		zap.String("username", user.Username))

	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a token carrying the user's
// group memberships
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.VerifyPassword(req.Password) {
		return nil, shared.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Groups:   user.GroupNames(),
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))

	return &LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Groups:   u.GroupNames(),
	}
}
