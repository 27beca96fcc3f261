// Package conversation holds the short-lived per-user state gathered across a
// purchase flow and the store abstraction that keeps it.
package conversation

import "context"

// State is the accumulated flow data for one sender id. A zero field means
// the value is not known yet in the current flow.
type State struct {
	ProductID          string  `json:"productId,omitempty"`
	ProductName        string  `json:"productName,omitempty"`
	ProductInstallment string  `json:"productInstallment,omitempty"`
	ProductPrice       float64 `json:"productPrice,omitempty"`
	Phone              string  `json:"phone,omitempty"`
	Username           string  `json:"username,omitempty"`
}

// HasProduct reports whether a product has been selected.
func (s State) HasProduct() bool {
	return s.ProductID != ""
}

// IsEmpty reports whether no field has been set.
func (s State) IsEmpty() bool {
	return s == State{}
}

// Store keeps one State per user with a bounded lifetime.
//
// Load never fails: an unknown, expired or unreadable entry yields an empty
// State. Save overwrites the whole entry and restarts its lifetime.
type Store interface {
	Load(ctx context.Context, userID string) State
	Save(ctx context.Context, userID string, state State) error
}
