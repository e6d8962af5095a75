package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ichthyo-signup/internal/auth"
	"ichthyo-signup/internal/logging"
	"ichthyo-signup/internal/repository"
)

// ErrEmailAlreadyExists is returned when the email is already registered.
var ErrEmailAlreadyExists = errors.New("email already exists")

// SignupOutput is returned for a newly created account.
type SignupOutput struct {
	UserID      string
	AccessToken string
}

// SignupService validates signup requests and creates accounts.
type SignupService struct {
	users  repository.UsersRepository
	jwt    *auth.JWTManager
	logger *zap.Logger
	cost   int
}

// NewSignupService constructs a new SignupService.
func NewSignupService(users repository.UsersRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *SignupService {
	return &SignupService{
		users:  users,
		jwt:    jwtManager,
		logger: logging.OrNop(logger),
		cost:   bcrypt.DefaultCost,
	}
}

// Signup creates an account and returns an access token for it.
func (s *SignupService) Signup(ctx context.Context, in SignupInput) (SignupOutput, error) {
	normalized, err := normalizeSignup(in)
	if err != nil {
		return SignupOutput{}, err
	}

	if _, err := s.users.FindByEmail(ctx, normalized.Email); err == nil {
		return SignupOutput{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return SignupOutput{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(normalized.Password), s.cost)
	if err != nil {
		return SignupOutput{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, normalized.Name, normalized.Email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return SignupOutput{}, ErrEmailAlreadyExists
		}
		return SignupOutput{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateToken(user.ID.String(), user.Email, user.Name)
	if err != nil {
		return SignupOutput{}, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID.String()))
	return SignupOutput{UserID: user.ID.String(), AccessToken: token}, nil
}
