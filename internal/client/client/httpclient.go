package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/dmitrijs2005/noclaf/internal/logging"
	"github.com/google/uuid"
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 4 << 20

// errorBodySnippet caps the body kept in a StatusError.
const errorBodySnippet = 512

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend rooted at baseURL. timeout
// bounds each request; zero leaves the transport default.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, passwordDigest string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, common.PathAuthUser, "", loginRequest{Email: email, Password: passwordDigest})
}

func (c *HTTPClient) GetUser(ctx context.Context, token string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, common.PathGetUser, token, nil)
}

func (c *HTTPClient) LoadPosts(ctx context.Context, token string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, common.PathLoadPosts, token, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID, "method", method, "endpoint", path)

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.AuthorizationScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		mapped := c.mapError(err)
		log.Warn(ctx, "request failed", "error", mapped, "elapsed", time.Since(start))
		return nil, mapped
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		mapped := c.mapError(err)
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", mapped)
		return nil, mapped
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(data)
		if len(snippet) > errorBodySnippet {
			snippet = snippet[:errorBodySnippet]
		}
		return nil, &common.StatusError{StatusCode: resp.StatusCode, Body: snippet}
	}

	return data, nil
}

// mapError classifies a network-layer failure.
func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &common.TransportError{Kind: common.ErrTimeout, Err: err}
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.As(err, &opErr) && opErr.Op == "dial":
		return &common.TransportError{Kind: common.ErrNoConnectivity, Err: err}
	default:
		return &common.TransportError{Kind: common.ErrTransport, Err: err}
	}
}
