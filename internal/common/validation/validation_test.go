package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "catsgram-backend/internal/common/errors"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t\n"))
	assert.False(t, IsBlank(" hi "))

	s := "   "
	assert.True(t, IsBlankPtr(nil))
	assert.True(t, IsBlankPtr(&s))
	v := "x"
	assert.False(t, IsBlankPtr(&v))
}

func TestParseIntParam(t *testing.T) {
	v, err := ParseIntParam("size", "", DefaultSize)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = ParseIntParam("from", "3", DefaultFrom)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = ParseIntParam("size", "ten", DefaultSize)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeParameterNotValid))
	assert.Contains(t, err.Error(), "parameter size")
}

func TestParseID(t *testing.T) {
	id, err := ParseID("postId", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("postId", "abc")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeParameterNotValid))
}

func TestValidateSizeAndFrom(t *testing.T) {
	assert.NoError(t, ValidateSize(1))
	assert.True(t, apperrors.Is(ValidateSize(0), apperrors.ErrCodeParameterNotValid))
	assert.True(t, apperrors.Is(ValidateSize(-5), apperrors.ErrCodeParameterNotValid))

	assert.NoError(t, ValidateFrom(0))
	assert.True(t, apperrors.Is(ValidateFrom(-1), apperrors.ErrCodeParameterNotValid))
}

func TestValidateSizeAndFromNameReceivedValue(t *testing.T) {
	err := ValidateSize(-5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter size")
	assert.Contains(t, err.Error(), "received: -5")

	err = ValidateFrom(-3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter from")
	assert.Contains(t, err.Error(), "received: -3")
}
