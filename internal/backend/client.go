package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"library-admin/internal/shared"
	"library-admin/pkg/logger"
)

// ============================================================
// BACKEND CLIENT
// ============================================================
// Client nói chuyện với library REST backend - backend là source
// of truth duy nhất, gateway không có database riêng.
//
// Mọi lỗi đi ra khỏi package này đã được normalize:
// - Transport lỗi (DNS, refused, timeout) => *shared.NetworkError
// - Backend trả non-2xx                   => *shared.BackendError
// Caller không bao giờ phải đụng vào *url.Error hay status code thô.

type Client struct {
	baseURL    string
	httpClient *http.Client

	// onUnauthorized được gọi khi backend trả 401 cho một request
	// đã mang token. Container wire hook này vào session manager
	// để destroy session ngay tại chỗ.
	onUnauthorized func(ctx context.Context)
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// OnUnauthorized đăng ký hook 401. Gọi một lần lúc wiring.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

// ============================================================
// TOKEN CONTEXT
// ============================================================
// Bearer token đi theo request context, không nằm trong Client:
// một Client dùng chung cho mọi session, token là per-request.

type tokenContextKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}

// ============================================================
// REQUEST CORE
// ============================================================

const maxErrorBodySize = 4096

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Backend request failed", err)
		return &shared.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(method, path, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// errorFromResponse map non-2xx về *shared.BackendError, giữ nguyên
// message backend gửi để UI hiển thị verbatim.
//
// Backend có hai dạng error envelope:
//
//	{"success": false, "error": {"code": "...", "message": "..."}}
//	{"message": "..."}
func (c *Client) errorFromResponse(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var envelope struct {
		Message string `json:"message"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(raw, &envelope)

	backendErr := &shared.BackendError{StatusCode: resp.StatusCode}
	switch {
	case envelope.Error != nil && envelope.Error.Message != "":
		backendErr.Code = envelope.Error.Code
		backendErr.Message = envelope.Error.Message
	case envelope.Message != "":
		backendErr.Message = envelope.Message
	}

	logger.Debug(fmt.Sprintf("Backend error: %s %s => %d %s", method, path, resp.StatusCode, backendErr.Message))

	return backendErr
}
