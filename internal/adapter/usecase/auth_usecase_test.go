package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func newTestAuth(repo port.UserRepository) *AuthUseCase {
	uc := NewAuthUseCase(repo)
	uc.cost = bcrypt.MinCost
	return uc
}

func TestAuthRegisterLoginMe(t *testing.T) {
	ctx := context.Background()
	uc := newTestAuth(memory.NewUserRepository())

	reg, err := uc.Register(ctx, " Jane@Example.com ", "s3cret", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", reg.User.Email)
	assert.Equal(t, reg.User.ID, reg.Token)
	assert.NotEqual(t, []byte("s3cret"), reg.User.PasswordHash)

	_, err = uc.Register(ctx, "jane@example.com", "other", "Jane Again")
	assert.ErrorIs(t, err, port.ErrEmailTaken)

	login, err := uc.Login(ctx, "JANE@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, reg.Token, login.Token)

	_, err = uc.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, port.ErrInvalidCredentials)
	_, err = uc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, port.ErrInvalidCredentials)

	me, err := uc.Me(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", me.FullName)

	_, err = uc.Me(ctx, "")
	assert.ErrorIs(t, err, port.ErrUnauthorized)
	_, err = uc.Me(ctx, "user-404")
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestAuthRegisterValidation(t *testing.T) {
	uc := newTestAuth(mocks.NewMockUserRepository(t))

	_, err := uc.Register(context.Background(), "not-an-email", "pw", "X")
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
	_, err = uc.Register(context.Background(), "x@example.com", "", "X")
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestAuthRepositoryFailure(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	uc := newTestAuth(repo)
	boom := errors.New("connection reset")

	repo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(nil, boom)
	_, err := uc.Login(context.Background(), "a@example.com", "pw")
	assert.ErrorIs(t, err, boom)

	repo.EXPECT().FindByID(mock.Anything, "u1").Return(nil, boom)
	_, err = uc.Me(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)
}
