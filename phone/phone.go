// Package phone normalizes user supplied phone numbers to E.164.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrMissingNumber = errors.New("phone number is missing")
	ErrInvalidNumber = errors.New("phone number is invalid")
)

// Normalize parses raw assuming region (ISO 3166 alpha-2, e.g. "BR") when no
// country code is present and returns it formatted as E.164.
func Normalize(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingNumber
	}

	number, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if !phonenumbers.IsValidNumber(number) {
		return "", fmt.Errorf("%w: %s", ErrInvalidNumber, raw)
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
