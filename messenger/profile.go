package messenger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// GetUserProfile reads the public name of a page-scoped user id.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	query := url.Values{}
	query.Set("fields", "first_name,last_name")

	body, err := c.sendRequest(ctx, http.MethodGet, c.endpoint("/"+url.PathEscape(userID), query), nil)
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}
