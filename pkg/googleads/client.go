package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const apiVersion = "v17"

// Config holds the application-level Google Ads API credentials. Per-user
// credentials travel in UserAuth on each call.
type Config struct {
	DeveloperToken string
	ClientID       string
	ClientSecret   string
	ManagerID      string // login-customer-id header, empty when not under an MCC
}

// Client is the Google Ads REST API client.
type Client struct {
	cfg        Config
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Google Ads API client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		apiURL: fmt.Sprintf("https://googleads.googleapis.com/%s", apiVersion),
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetHTTPClient overrides the transport, disabling the OAuth token exchange.
// Intended for tests against a local fake.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// authClient returns an HTTP client that exchanges the user's refresh token
// for access tokens on demand.
func (c *Client) authClient(ctx context.Context, refreshToken string) *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}

	conf := &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	return oauth2.NewClient(ctx, conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}))
}

// post issues an authenticated POST and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, auth UserAuth, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.apiURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.ManagerID != "" {
		req.Header.Set("login-customer-id", c.cfg.ManagerID)
	}

	resp, err := c.authClient(ctx, auth.RefreshToken).Do(req)
	if err != nil {
		return fmt.Errorf("failed to call google ads API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rawBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("google ads API error %d: %s", resp.StatusCode, string(rawBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode google ads response: %w", err)
	}

	return nil
}

// mutate issues a generic <resource>:mutate call and returns the first result
// per operation.
func (c *Client) mutate(ctx context.Context, auth UserAuth, resource string, operations []map[string]interface{}) ([]MutateResult, error) {
	path := fmt.Sprintf("customers/%s/%s:mutate", auth.CustomerID, resource)

	var resp mutateResponse
	if err := c.post(ctx, auth, path, mutateRequest{Operations: operations}, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}
