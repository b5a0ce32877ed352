package maptel

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumber(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		reason string
	}{
		{"single digit", "0", ""},
		{"typical", "48123456789", ""},
		{"leading zeros", "0048", ""},
		{"max length", strings.Repeat("7", MaxNumberLength), ""},
		{"empty", "", "empty"},
		{"too long", strings.Repeat("7", MaxNumberLength+1), "too long"},
		{"letter", "12a4", "non-digit character"},
		{"plus", "+1", "non-digit character"},
		{"dash", "555-1234", "non-digit character"},
		{"nul byte", "12\x00", "non-digit character"},
		{"fullwidth digit", "１", "non-digit character"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNumber(tc.input)
			assert.Equal(t, tc.reason == "", IsValidNumber(tc.input))

			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))

			var numErr *NumberError
			require.True(t, errors.As(err, &numErr))
			assert.Equal(t, "validate", numErr.Op)
			assert.Equal(t, tc.input, numErr.Number)
			assert.Equal(t, tc.reason, numErr.Reason)
		})
	}
}

// TestValidateNumber_TooLongBeforeDigits reports length first for long garbage.
func TestValidateNumber_TooLongBeforeDigits(t *testing.T) {
	var numErr *NumberError
	require.ErrorAs(t, ValidateNumber(strings.Repeat("x", 30)), &numErr)
	assert.Equal(t, "too long", numErr.Reason)
}
