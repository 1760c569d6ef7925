package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// DemoUser is the account created by Seed.
type DemoUser struct {
	Email    string
	Password string
	FullName string
}

// DefaultDemoUser is used by the seed command when no flags are given.
var DefaultDemoUser = DemoUser{
	Email:    "demo@adpilot.local",
	Password: "demo-password",
	FullName: "Demo User",
}

// Seed registers u in users unless the email is already taken. It returns
// the id of the new or existing user.
func Seed(ctx context.Context, users port.UserRepository, u DemoUser) (string, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if existing, err := users.FindByEmail(ctx, email); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, port.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     u.FullName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}
