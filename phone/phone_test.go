package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_BrazilianNumbers(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"digits only", "11987654321", "+5511987654321"},
		{"formatted", "(11) 98765-4321", "+5511987654321"},
		{"with country code", "+55 11 98765-4321", "+5511987654321"},
		{"padded", "  11987654321 ", "+5511987654321"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input, "BR")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_MissingIsDistinctFromMalformed(t *testing.T) {
	_, err := Normalize("", "BR")
	assert.ErrorIs(t, err, ErrMissingNumber)
	assert.NotErrorIs(t, err, ErrInvalidNumber)

	for _, input := range []string{"abc", "123", "+999"} {
		_, err := Normalize(input, "BR")
		assert.ErrorIs(t, err, ErrInvalidNumber, input)
		assert.NotErrorIs(t, err, ErrMissingNumber, input)
	}
}
