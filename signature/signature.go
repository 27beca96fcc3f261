// Package signature verifies webhook deliveries signed with a pre-shared
// secret. The header value has the form "method=hexdigest", where method is
// the HMAC hash name (Messenger sends "sha1" in X-Hub-Signature and "sha256"
// in X-Hub-Signature-256).
package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

var (
	ErrMissingSignature   = errors.New("signature header is missing")
	ErrMalformedSignature = errors.New("signature header is malformed")
	ErrUnsupportedMethod  = errors.New("signature method is not supported")
	ErrSignatureMismatch  = errors.New("signature does not match body")
)

var methods = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
}

// Verify checks header against the HMAC of body. body must be the exact
// bytes received on the wire.
func Verify(body []byte, header, secret string) error {
	header = strings.TrimSpace(header)
	if header == "" {
		return ErrMissingSignature
	}

	method, digest, ok := strings.Cut(header, "=")
	if !ok || method == "" || digest == "" {
		return ErrMalformedSignature
	}

	newHash, ok := methods[strings.ToLower(method)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	provided, err := hex.DecodeString(digest)
	if err != nil {
		return ErrMalformedSignature
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(provided, mac.Sum(nil)) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign returns the header value for body.
func Sign(body []byte, method, secret string) (string, error) {
	newHash, ok := methods[strings.ToLower(method)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return strings.ToLower(method) + "=" + hex.EncodeToString(mac.Sum(nil)), nil
}
