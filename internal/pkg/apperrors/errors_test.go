package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrorKeepsSentinel(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewUserError(ErrInvalidFileType, "Invalid file type."))

	assert.ErrorIs(t, err, ErrInvalidFileType)
	msg, ok := UserMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Invalid file type.", msg)
}

func TestUserMessageAbsentForPlainErrors(t *testing.T) {
	_, ok := UserMessage(fmt.Errorf("insert: %w", ErrDatabase))
	assert.False(t, ok)

	_, ok = UserMessage(NewCustomError(ErrDatabase, "no status"))
	assert.False(t, ok)
}

func TestIsMatchesAnyOfList(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrEmailAlreadyExists)

	assert.True(t, Is(err, ErrIdentifierExists, ErrEmailAlreadyExists))
	assert.False(t, Is(err, ErrIdentifierExists))
	assert.False(t, Is(errors.New("other"), ErrDatabase, ErrAccountNotFound))
}
