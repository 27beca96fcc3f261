package commerce

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// SearchProducts returns the catalog matches for a free-text name.
func (c *Client) SearchProducts(ctx context.Context, name string) ([]Product, error) {
	query := url.Values{}
	query.Set("name", name)

	var products []Product
	if err := c.doJSON(ctx, http.MethodGet, c.config.ProductURL+"/products/?"+query.Encode(), nil, &products); err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", name).
		Int("matches", len(products)).
		Msg("Catalog search completed")

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	var product Product
	if err := c.doJSON(ctx, http.MethodGet, c.config.ProductURL+"/products/"+url.PathEscape(productID), nil, &product); err != nil {
		return nil, err
	}
	if product.ProductID == "" {
		product.ProductID = productID
	}
	return &product, nil
}

// GetProductImage fetches and decodes the base64 image of a product.
func (c *Client) GetProductImage(ctx context.Context, productID string) ([]byte, error) {
	var image productImage
	if err := c.doJSON(ctx, http.MethodGet, c.config.ProductURL+"/products/"+url.PathEscape(productID)+"/images", nil, &image); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(image.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode product image: %w", err)
	}
	return data, nil
}

// RegisterNotification asks the catalog to call back once the product is
// found.
func (c *Client) RegisterNotification(ctx context.Context, notification Notification) error {
	err := c.doJSON(ctx, http.MethodPost, c.config.ProductURL+"/notifications", notification, nil,
		http.StatusOK, http.StatusCreated, http.StatusAccepted)
	if err != nil {
		return err
	}

	log.Info().
		Str("product", notification.Product).
		Str("sender_id", notification.SenderID).
		Msg("Product notification registered")

	return nil
}
