package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// Params configures the transport.
type Params struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger

	// HTTPClient overrides the default client; a cookie jar is
	// installed if the override carries none.
	HTTPClient *http.Client
}

// Client issues authenticated JSON requests against the storefront
// backend. The session credential is an opaque cookie held by the jar;
// the client never inspects it.
type Client struct {
	base  *url.URL
	httpc *http.Client
	logg  *logger.Logger
}

func New(params Params) (*Client, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	base, err := url.Parse(params.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https, got %q", params.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base url missing host: %q", params.BaseURL)
	}

	httpc := params.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: params.Timeout}
	}
	if httpc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		httpc.Jar = jar
	}

	return &Client{
		base:  base,
		httpc: httpc,
		logg:  params.Logger,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.base.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	logCtx := c.logg.WithFields(ctx, map[string]any{
		"method":     method,
		"path":       target.Path,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logg.Warn(c.logg.WithField(logCtx, "error", err.Error()), "request failed before a response")
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "reading response")
	}

	logCtx = c.logg.WithFields(logCtx, map[string]any{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode >= http.StatusBadRequest {
		c.logg.Warn(logCtx, "request rejected")
		return decodeError(resp.StatusCode, payload)
	}
	c.logg.Debug(logCtx, "request completed")

	if out == nil || resp.StatusCode == http.StatusNoContent || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeServer, err, "malformed response body")
	}
	return nil
}
