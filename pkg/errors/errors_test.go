package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgball2608/socialhub/pkg/errors"
)

func TestNotFound(t *testing.T) {
	err := errors.NotFound("post", 42)

	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "post", errors.KindOf(err))
	assert.Equal(t, "post 42 not found", err.Error())

	wrapped := fmt.Errorf("load profile: %w", err)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, "post", errors.KindOf(wrapped))
}

func TestInvalid(t *testing.T) {
	err := errors.Invalid("content is empty")

	assert.True(t, errors.IsInvalidInput(err))
	assert.False(t, errors.IsNotFound(err))
	assert.Equal(t, "invalid_input", errors.GetCode(err))
	assert.Equal(t, "content is empty", errors.GetMessage(err))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "noop"))

	err := errors.WrapWithCode(errors.ErrRateLimited, "rate_limited", "slow down")
	assert.True(t, errors.IsRateLimited(err))
	assert.Equal(t, "slow down: rate limited", err.Error())
	assert.Equal(t, "", errors.KindOf(err))
}
