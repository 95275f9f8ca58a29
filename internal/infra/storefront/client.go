// Package storefront is the HTTP client of the remote QuickMart REST API.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quickmart/config"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/errors"

	"go.uber.org/fx"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client talks to the storefront API. Bearer tokens come from the request context,
// see service.ContextWithAccessToken.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// Params defines the dependencies of the storefront client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the client from configuration
func New(params Params) (*Client, error) {
	return NewClient(params.Config.Storefront.BaseURL, params.Config.Storefront.Timeout, params.Logger)
}

// NewClient builds a client for baseURL. A missing trailing slash is added so
// relative endpoint paths resolve under it.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse storefront base url")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("storefront base url %q must be absolute", baseURL)
	}

	return &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(http.DefaultTransport, logger),
		},
		logger: logger,
	}, nil
}

// do sends one request. body is JSON-encoded when non-nil; the response is
// decoded into out when out is non-nil and the response has a body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error()).WrapMessage(method + " " + path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.WithStack(domainerrors.NewUpstreamError(resp.StatusCode, method, path, errorMessage(raw)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s", method, path)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := decodePayload(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}

	return nil
}

// decodePayload accepts both a bare payload and one wrapped in {"data": ...}.
func decodePayload(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if data, ok := envelope["data"]; ok {
				return json.Unmarshal(data, out)
			}
		}
	}

	return json.Unmarshal(trimmed, out)
}

// errorMessage pulls a human readable message out of an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if body.Message != "" {
		return body.Message
	}

	if len(body.Error) > 0 {
		var text string
		if err := json.Unmarshal(body.Error, &text); err == nil {
			return text
		}

		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body.Error, &nested); err == nil {
			return nested.Message
		}
	}

	return ""
}

// escape builds "prefix/<id>/suffix" with id path-escaped.
func escape(prefix, id string, suffix ...string) string {
	parts := append([]string{prefix, url.PathEscape(id)}, suffix...)

	return strings.Join(parts, "/")
}
