// Package api is the HTTP client for the encryption service.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

// Endpoint paths.
const (
	PathSettings  = "/api/settings"
	PathEncrypt   = "/api/encrypt"
	PathCompare   = "/api/compare"
	PathDecrypt   = "/api/decrypt"
	PathDownload  = "/api/download_decrypted/"
	maxErrorBytes = 64 << 10
)

// Client talks to one encryption service instance.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DownloadURL builds the per-member download URL of a decrypt session.
// The member name is path-escaped as a single segment, so "sub/b.txt"
// becomes "sub%2Fb.txt".
func (c *Client) DownloadURL(sessionID, name string) string {
	return c.baseURL + PathDownload + url.PathEscape(sessionID) + "/" + url.PathEscape(name)
}

// Settings fetches the server's tuned worker count and chunk size.
func (c *Client) Settings(ctx context.Context) (*Settings, error) {
	resp, cancel, err := c.do(ctx, "settings", http.MethodGet, c.baseURL+PathSettings, nil, "")
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	var s Settings
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode settings")
	}
	return &s, nil
}

// Encrypt runs a single encryption job under the requested policy.
func (c *Client) Encrypt(ctx context.Context, req EncryptRequest) (*EncryptResult, error) {
	body, ctype := multipartBody([]formField{
		{"password", req.Password},
		{"mode", req.Mode},
		{"policy", req.Policy},
	}, "files", req.Files)

	resp, cancel, err := c.do(ctx, "encrypt", http.MethodPost, c.baseURL+PathEncrypt, body, ctype)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	arc, err := readArchive(resp, EncryptFallbackName)
	if err != nil {
		return nil, err
	}
	return &EncryptResult{
		Archive: *arc,
		Elapsed: ParseSeconds(resp.Header.Get("X-Time-Elapsed")),
	}, nil
}

// Compare runs both scheduling policies on the same input.
func (c *Client) Compare(ctx context.Context, req CompareRequest) (*CompareResult, error) {
	body, ctype := multipartBody([]formField{
		{"password", req.Password},
		{"mode", req.Mode},
	}, "files", req.Files)

	resp, cancel, err := c.do(ctx, "compare", http.MethodPost, c.baseURL+PathCompare, body, ctype)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	arc, err := readArchive(resp, CompareFallbackName)
	if err != nil {
		return nil, err
	}
	return &CompareResult{
		Archive: *arc,
		FIFO:    ParseSeconds(resp.Header.Get("X-Time-FIFO")),
		AI:      ParseSeconds(resp.Header.Get("X-Time-AI")),
	}, nil
}

// Decrypt uploads one encrypted package and returns its decrypt session.
func (c *Client) Decrypt(ctx context.Context, req DecryptRequest) (*DecryptResult, error) {
	body, ctype := multipartBody([]formField{
		{"password", req.Password},
	}, "file", []Upload{req.File})

	resp, cancel, err := c.do(ctx, "decrypt", http.MethodPost, c.baseURL+PathDecrypt, body, ctype)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	var res DecryptResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "decode decrypt result")
	}
	if res.SessionID == "" && len(res.Files) > 0 {
		return nil, errors.ErrSessionMissing
	}
	return &res, nil
}

// Download fetches one decrypted member of a session.
func (c *Client) Download(ctx context.Context, sessionID, name string) (*Archive, error) {
	resp, cancel, err := c.do(ctx, "download", http.MethodGet, c.DownloadURL(sessionID, name), nil, "")
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	fallback := baseName(name)
	if fallback == "" {
		fallback = DownloadFallbackName
	}
	return readArchive(resp, fallback)
}

// do issues a request and returns a 2xx response. Non-success responses are
// converted to *errors.ServerError and their bodies closed. The caller must
// call cancel once done with the body.
func (c *Client) do(ctx context.Context, op, method, target string, body io.ReadCloser, ctype string) (*http.Response, context.CancelFunc, error) {
	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		cancel()
		if body != nil {
			body.Close()
		}
		return nil, nil, errors.NewTransportError(op, target, err)
	}
	if ctype != "" {
		req.Header.Set("Content-Type", ctype)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		var fe *errors.FileError
		if errors.As(err, &fe) {
			return nil, nil, fe
		}
		log.Warn("request failed", log.String("op", op), log.Err(err))
		return nil, nil, errors.NewTransportError(op, target, unwrapURLError(err))
	}

	log.Debug("request complete",
		log.String("op", op),
		log.Int("status", resp.StatusCode),
		log.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer cancel()
		defer resp.Body.Close()
		return nil, nil, decodeError(resp)
	}
	return resp, cancel, nil
}

// decodeError converts a failed response into a ServerError. The JSON
// "error" field is used when present; otherwise the message is generic.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		return errors.NewServerError(resp.StatusCode, "")
	}
	return errors.NewServerError(resp.StatusCode, strings.TrimSpace(eb.Error))
}

func readArchive(resp *http.Response, fallback string) (*Archive, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("read", resp.Request.URL.String(), err)
	}
	return &Archive{
		Filename: ParseContentDisposition(resp.Header.Get("Content-Disposition"), fallback),
		Data:     data,
	}, nil
}

// unwrapURLError drops the *url.Error wrapper so the message is the
// underlying cause; the URL is already carried by TransportError.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}
