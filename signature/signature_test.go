package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "app-secret"

var body = []byte(`{"object":"page","entry":[{"id":"1","messaging":[{"sender":{"id":"42"},"message":{"text":"oi"}}]}]}`)

func TestVerify_ValidSignature(t *testing.T) {
	for _, method := range []string{"sha1", "sha256"} {
		t.Run(method, func(t *testing.T) {
			header, err := Sign(body, method, secret)
			require.NoError(t, err)
			assert.NoError(t, Verify(body, header, secret))
		})
	}
}

func TestVerify_BodyMutationFails(t *testing.T) {
	header, err := Sign(body, "sha1", secret)
	require.NoError(t, err)

	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		if err := Verify(mutated, header, secret); err != ErrSignatureMismatch {
			t.Fatalf("byte %d: expected mismatch, got %v", i, err)
		}
	}
}

func TestVerify_SignatureMutationFails(t *testing.T) {
	header, err := Sign(body, "sha1", secret)
	require.NoError(t, err)

	prefix := len("sha1=")
	for i := prefix; i < len(header); i++ {
		mutated := []byte(header)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		assert.ErrorIs(t, Verify(body, string(mutated), secret), ErrSignatureMismatch, "position %d", i)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	header, err := Sign(body, "sha1", "other-secret")
	require.NoError(t, err)
	assert.ErrorIs(t, Verify(body, header, secret), ErrSignatureMismatch)
}

func TestVerify_HeaderErrors(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   error
	}{
		{"missing", "", ErrMissingSignature},
		{"no separator", "sha1", ErrMalformedSignature},
		{"empty digest", "sha1=", ErrMalformedSignature},
		{"not hex", "sha1=zzzz", ErrMalformedSignature},
		{"unknown method", "md5=abcd", ErrUnsupportedMethod},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Verify(body, tc.header, secret), tc.want)
		})
	}
}

func TestSign_UnsupportedMethod(t *testing.T) {
	_, err := Sign(body, "md5", secret)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}
