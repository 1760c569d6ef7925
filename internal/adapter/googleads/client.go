// Package googleads implements the advertising ports on top of the Google Ads
// REST interface. Every exported method maps to one logical operation and
// sends its requests synchronously. Failures are returned to the caller
// untouched; nothing is retried or rolled back here.
package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
	"adpilot/internal/httpclient"
)

var (
	_ port.AdsService       = (*Client)(nil)
	_ port.ExclusionService = (*Client)(nil)
)

// Options are the request level settings of a Client.
type Options struct {
	Endpoint        string
	APIVersion      string
	DeveloperToken  string
	LoginCustomerID string
}

// Client talks to the Google Ads REST API.
type Client struct {
	http   *http.Client
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// New builds a Client authenticated with the OAuth refresh token from cfg.
// Token refreshes go through the same retrying transport as API calls.
func New(ctx context.Context, cfg configs.GoogleAds, logger *slog.Logger) *Client {
	base := httpclient.New(httpclient.Options{
		Timeout:  cfg.Timeout,
		RetryMax: cfg.RetryMax,
		Logger:   logger,
	})
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	authed := oauth2.NewClient(ctx, oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
	authed.Timeout = cfg.Timeout

	return NewClient(authed, Options{
		Endpoint:        cfg.Endpoint,
		APIVersion:      cfg.APIVersion,
		DeveloperToken:  cfg.DeveloperToken,
		LoginCustomerID: cfg.LoginCustomerID,
	}, logger)
}

// NewClient wraps an already authenticated HTTP client.
func NewClient(hc *http.Client, opts Options, logger *slog.Logger) *Client {
	if opts.APIVersion == "" {
		opts.APIVersion = "v18"
	}
	opts.Endpoint = strings.TrimRight(opts.Endpoint, "/")
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{http: hc, opts: opts, logger: logger, now: time.Now}
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Details    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("google ads: %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("google ads: %d: %s", e.StatusCode, e.Message)
}

// normalizeCustomerID strips the dashes of the "123-456-7890" display form.
func normalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

func (c *Client) url(path string) string {
	return c.opts.Endpoint + "/" + c.opts.APIVersion + "/" + path
}

// post sends body as JSON and decodes a successful answer into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.opts.DeveloperToken)
	if c.opts.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", normalizeCustomerID(c.opts.LoginCustomerID))
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	c.logger.Debug("google ads call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func decodeAPIError(code int, raw []byte) error {
	var envelope struct {
		Error struct {
			Message string          `json:"message"`
			Status  string          `json:"status"`
			Details json.RawMessage `json:"details"`
		} `json:"error"`
	}
	apiErr := &APIError{StatusCode: code}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		apiErr.Status = envelope.Error.Status
		apiErr.Details = envelope.Error.Details
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(code)
	}
	return apiErr
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// mutate sends ops to the mutate method of service and returns the resource
// names in operation order.
func mutate[T any](ctx context.Context, c *Client, customerID string, service string, ops []operation[T]) ([]string, error) {
	path := fmt.Sprintf("customers/%s/%s:mutate", normalizeCustomerID(customerID), service)
	var resp mutateResponse
	if err := c.post(ctx, path, mutateRequest[T]{Operations: ops}, &resp); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		names = append(names, r.ResourceName)
	}
	return names, nil
}

// mutateOne is mutate for a single operation that must yield a resource.
func mutateOne[T any](ctx context.Context, c *Client, customerID string, service string, op operation[T]) (string, error) {
	names, err := mutate(ctx, c, customerID, service, []operation[T]{op})
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s: empty mutate response", service)
	}
	return names[0], nil
}

// search runs a GAQL query through searchStream and decodes every result row
// into a T.
func search[T any](ctx context.Context, c *Client, customerID, query string) ([]T, error) {
	path := fmt.Sprintf("customers/%s/googleAds:searchStream", normalizeCustomerID(customerID))
	var batches []struct {
		Results []T `json:"results"`
	}
	if err := c.post(ctx, path, map[string]string{"query": query}, &batches); err != nil {
		return nil, err
	}
	var rows []T
	for _, b := range batches {
		rows = append(rows, b.Results...)
	}
	return rows, nil
}

// suggestGeoTargets resolves location names in locale to geo target constant
// resource names.
func (c *Client) suggestGeoTargets(ctx context.Context, locale string, names []string) ([]string, error) {
	req := struct {
		Locale        string `json:"locale,omitempty"`
		LocationNames struct {
			Names []string `json:"names"`
		} `json:"locationNames"`
	}{Locale: locale}
	req.LocationNames.Names = names

	var resp struct {
		Suggestions []struct {
			GeoTargetConstant struct {
				ResourceName string `json:"resourceName"`
			} `json:"geoTargetConstant"`
		} `json:"geoTargetConstantSuggestions"`
	}
	if err := c.post(ctx, "geoTargetConstants:suggest", req, &resp); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		if s.GeoTargetConstant.ResourceName != "" {
			out = append(out, s.GeoTargetConstant.ResourceName)
		}
	}
	return out, nil
}

// quote renders s as a GAQL string literal.
func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
