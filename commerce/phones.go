package commerce

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

func (c *Client) phonesURL(userID string) string {
	return c.config.PhoneURL + "/usuarios/" + url.PathEscape(userID) + "/telefones"
}

// ListPhones returns the numbers registered for a user. The registry answers
// 404 for an unknown user, which means none.
func (c *Client) ListPhones(ctx context.Context, userID string) ([]Phone, error) {
	var phones []Phone
	err := c.doJSON(ctx, http.MethodGet, c.phonesURL(userID), nil, &phones)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return phones, nil
}

func (c *Client) RegisterPhone(ctx context.Context, userID, number string) error {
	return c.doJSON(ctx, http.MethodPost, c.phonesURL(userID), Phone{Number: number}, nil, http.StatusCreated)
}
