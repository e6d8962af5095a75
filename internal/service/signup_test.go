package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ichthyo-signup/internal/auth"
	"ichthyo-signup/internal/entity"
	"ichthyo-signup/internal/repository"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	create      func(ctx context.Context, name, email, passwordHash string) (*entity.User, error)
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUsersRepository) Create(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, name, email, passwordHash)
	}
	return nil, errors.New("create not implemented")
}

func newTestService(repo repository.UsersRepository) *SignupService {
	svc := NewSignupService(repo, auth.NewJWTManager("test-secret", 0), nil)
	svc.cost = bcrypt.MinCost
	return svc
}

func TestSignupService_Signup(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	valid := SignupInput{Name: "Ada", Email: "Ada@Example.com", Password: "engine"}

	tests := map[string]struct {
		in          SignupInput
		repo        *mockUsersRepository
		expectError error
		validation  bool
	}{
		"validation failure": {
			in:         SignupInput{Name: "Ada", Email: "nope", Password: "engine"},
			repo:       &mockUsersRepository{},
			validation: true,
		},
		"email already registered": {
			in: valid,
			repo: &mockUsersRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
					return &entity.User{ID: id, Email: email}, nil
				},
			},
			expectError: ErrEmailAlreadyExists,
		},
		"duplicate on insert": {
			in: valid,
			repo: &mockUsersRepository{
				create: func(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
					return nil, repository.ErrEmailDuplicate
				},
			},
			expectError: ErrEmailAlreadyExists,
		},
		"success": {
			in: valid,
			repo: &mockUsersRepository{
				create: func(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
					if email != "ada@example.com" {
						return nil, errors.New("email was not normalized")
					}
					if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("engine")); err != nil {
						return nil, errors.New("password was not hashed")
					}
					return &entity.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(tt.repo)
			out, err := svc.Signup(context.Background(), tt.in)

			if tt.validation {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}
				if out.AccessToken != "" {
					t.Fatalf("expected empty token on error, got %q", out.AccessToken)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.UserID != id.String() {
				t.Fatalf("unexpected user id %q", out.UserID)
			}
			claims, err := auth.NewJWTManager("test-secret", 0).ParseToken(out.AccessToken)
			if err != nil {
				t.Fatalf("token did not verify: %v", err)
			}
			if claims.Subject != id.String() || claims.Email != "ada@example.com" {
				t.Fatalf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestSignupService_LookupFailure(t *testing.T) {
	repo := &mockUsersRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	_, err := newTestService(repo).Signup(context.Background(), SignupInput{Name: "Ada", Email: "ada@example.com", Password: "engine"})
	if err == nil || errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
