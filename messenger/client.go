// Package messenger sends messages through the Messenger Send API and reads
// user profiles from the Graph API.
package messenger

import (
	"net/http"
	"strings"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(pageAccessToken, graphAPIURL string, httpClient *http.Client) Client {
	return Client{
		config: Config{
			PageAccessToken: pageAccessToken,
			GraphAPIURL:     strings.TrimRight(graphAPIURL, "/"),
		},
		httpClient: httpClient,
	}
}
