package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var _ port.AuthUseCase = (*AuthUseCase)(nil)

// AuthUseCase implements port.AuthUseCase on top of a UserRepository.
// Tokens are the user id itself, so anyone holding an id is authenticated.
type AuthUseCase struct {
	users port.UserRepository
	cost  int
	now   func() time.Time
	newID func() string
}

// NewAuthUseCase hashes passwords with the default bcrypt cost.
func NewAuthUseCase(users port.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		users: users,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Register creates a user with a normalized email and a hashed password.
// A taken email returns port.ErrEmailTaken.
func (u *AuthUseCase) Register(ctx context.Context, email, password, fullName string) (*port.AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", port.ErrInvalidRequest)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           u.newID(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		CreatedAt:    u.now().UTC(),
	}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &port.AuthResult{User: user, Token: user.ID}, nil
}

// Login checks password against the stored hash. Unknown emails and wrong
// passwords both return port.ErrInvalidCredentials.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, port.ErrInvalidCredentials
	}
	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, port.ErrNotFound) {
		return nil, port.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, port.ErrInvalidCredentials
	}
	return &port.AuthResult{User: *user, Token: user.ID}, nil
}

// Me resolves token to its user. Unknown tokens return port.ErrUnauthorized.
func (u *AuthUseCase) Me(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, port.ErrUnauthorized
	}
	user, err := u.users.FindByID(ctx, token)
	if errors.Is(err, port.ErrNotFound) {
		return nil, port.ErrUnauthorized
	}
	return user, err
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Name != "" {
		return "", fmt.Errorf("%w: invalid email", port.ErrInvalidRequest)
	}
	return strings.ToLower(addr.Address), nil
}
