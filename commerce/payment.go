package commerce

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// CreatePayment asks the payment processor to charge the selected product.
// The processor calls request.Callback once the payment settles.
func (c *Client) CreatePayment(ctx context.Context, request PaymentRequest) (*Payment, error) {
	var payment Payment
	err := c.doJSON(ctx, http.MethodPost, c.config.PaymentURL+"/payments", request, &payment,
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("payment_id", payment.ID).
		Str("provider", request.Provider).
		Str("user_id", request.UserID).
		Float64("amount", request.Amount).
		Msg("Payment created")

	return &payment, nil
}
