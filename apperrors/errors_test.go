package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("Category", 7)

	assert.EqualError(t, err, "Category not found")
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("lookup failed: %w", err)), "wrapped errors must still match")
	assert.False(t, IsNotFound(errors.New("db down")))
	assert.False(t, IsNotFound(nil))
}
