package commerce

import (
	"context"
	"net/http"
)

func (c *Client) SendSMS(ctx context.Context, sms SMS) error {
	return c.doJSON(ctx, http.MethodPost, c.config.SMSURL+"/sms", sms, nil,
		http.StatusOK, http.StatusCreated, http.StatusAccepted)
}
