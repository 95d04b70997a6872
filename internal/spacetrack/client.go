package spacetrack

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client performs the combined login-and-query call against Space-Track.
// There is no session state: credentials ride along with every query.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient builds a Client with the given credentials. connectTimeout
// bounds dialing and the TLS handshake; readTimeout bounds the whole
// request including reading the body.
func NewClient(username, password string, connectTimeout, readTimeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:  BaseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: connectTimeout,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs exactly one POST to the authenticated-query endpoint with
// the identity, password and query form fields and decodes the JSON array
// response. The query field carries the full URL of the gp-class query for
// the given catalog IDs.
func (c *Client) Fetch(ctx context.Context, noradIDs []int) ([]Record, error) {
	form := url.Values{}
	form.Set("identity", c.username)
	form.Set("password", c.password)
	form.Set("query", c.baseURL+BuildQuery(noradIDs))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	records, err := DecodeRecords(resp.Body)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func statusError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil || len(body) == 0 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
