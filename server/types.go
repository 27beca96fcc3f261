package server

// FinishRequest is the JSON body the payment processor may post to /finish.
type FinishRequest struct {
	UserID string `json:"user_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
