package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"adpilot/internal/core/port"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

func TestMalformedIDsAreNotFound(t *testing.T) {
	// A nil pool panics if a query is attempted.
	runs := NewRunRepository(nil)
	users := NewUserRepository(nil)
	ctx := context.Background()

	for _, id := range []string{"", "r1", "missing", "1 OR 1=1", "00000000-0000-0000-0000"} {
		_, err := runs.GetRun(ctx, id)
		assert.ErrorIs(t, err, port.ErrNotFound, id)

		_, err = users.FindByID(ctx, id)
		assert.ErrorIs(t, err, port.ErrNotFound, id)
	}
}
