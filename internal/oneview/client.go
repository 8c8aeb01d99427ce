// Package oneview is a minimal client for the OneView REST API covering
// the resources the reconciler modules manage: the appliance time/locale
// configuration, ID pools, and IPv4 range resources. One session, one
// request at a time, no retries.
package oneview

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oneview-community/ovapply/internal/appliance"
)

const loginSessionsPath = "/rest/login-sessions"

// Client holds one authenticated session against one appliance.
type Client struct {
	endpoint   string
	apiVersion int
	sessionID  string
	domain     string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient builds a client from the appliance connection configuration.
// No request is issued until Login or the first resource call.
func NewClient(cfg *appliance.Config) *Client {
	transport := http.DefaultTransport
	if !cfg.SSLVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // explicit operator opt-out
		}
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		apiVersion: cfg.APIVersion,
		sessionID:  cfg.SessionID,
		domain:     cfg.AuthLoginDomain,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
	}
}

// SessionID returns the current session token.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Login opens a session unless a session token was supplied up front.
func (c *Client) Login(ctx context.Context) error {
	if c.sessionID != "" {
		return nil
	}

	body := map[string]string{
		"userName":        c.username,
		"password":        c.password,
		"authLoginDomain": c.domain,
	}

	var response struct {
		SessionID string `json:"sessionID"`
	}
	if err := c.do(ctx, http.MethodPost, loginSessionsPath, nil, body, &response); err != nil {
		return fmt.Errorf("login to %s: %w", c.endpoint, err)
	}

	c.sessionID = response.SessionID
	return nil
}

// Logout closes the session. Safe to call without a session.
func (c *Client) Logout(ctx context.Context) error {
	if c.sessionID == "" {
		return nil
	}
	err := c.do(ctx, http.MethodDelete, loginSessionsPath, nil, nil, nil)
	c.sessionID = ""
	return err
}

// TimeLocale returns the client for the appliance time and locale
// configuration resource.
func (c *Client) TimeLocale() *TimeLocaleClient {
	return &TimeLocaleClient{c: c}
}

// IDPools returns the client for ID pool resources.
func (c *Client) IDPools() *IDPoolsClient {
	return &IDPoolsClient{c: c}
}

// IPv4Ranges returns the client for IPv4 range resources.
func (c *Client) IPv4Ranges() *IPv4RangesClient {
	return &IPv4RangesClient{c: c}
}

// IPv4Subnets returns the client for IPv4 subnet resources.
func (c *Client) IPv4Subnets() *IPv4SubnetsClient {
	return &IPv4SubnetsClient{c: c}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.endpoint + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Version", strconv.Itoa(c.apiVersion))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set("Auth", c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(statusCode int, raw []byte) error {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
		if len(raw) > 0 && apiErr.Details == "" {
			apiErr.Details = string(raw)
		}
	}
	return apiErr
}
