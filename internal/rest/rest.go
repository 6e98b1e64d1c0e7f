// Package rest is the HTTP transport shared by the prerecorded and analyze
// clients.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	deepgram "github.com/moxierobots/deepgram-go"
)

const maxErrorBody = 64 << 10

type Client struct {
	options deepgram.ClientOptions
	logger  *zap.Logger
}

// New returns a transport over options, which must already have defaults
// applied.
func New(options deepgram.ClientOptions) *Client {
	return &Client{
		options: options,
		logger:  options.Logger,
	}
}

// Endpoint builds https://<host>/<version>/<path>?<query>.
func (c *Client) Endpoint(path string, query url.Values) string {
	u := c.options.BaseURL("https") + "/" + deepgram.DefaultAPIVersion + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// PostJSON sends body encoded as JSON and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusInvalidArgument, "failed to encode request body", err)
	}
	return c.Post(ctx, endpoint, bytes.NewReader(payload), "application/json", out)
}

// Post sends body with the given content type (omitted when empty) and
// decodes the response into out. The body is streamed, not buffered.
func (c *Client) Post(ctx context.Context, endpoint string, body io.Reader, contentType string, out any) error {
	header, err := c.options.AuthHeader()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusInvalidArgument, "failed to build request", err)
	}
	req.Header = header
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.options.HTTPClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return deepgram.NewErrorWithCause(deepgram.ErrorStatusNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	requestID := resp.Header.Get("dg-request-id")
	c.logger.Debug("request complete",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeError(resp.StatusCode, requestID, errBody)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &deepgram.Error{
			Status:    deepgram.ErrorStatusAPIError,
			Message:   "failed to decode response",
			RequestID: requestID,
			Cause:     err,
		}
	}
	return nil
}

// decodeError reads either error body shape the API returns:
// {"err_code","err_msg","request_id"} or {"category","message","request_id"}.
func decodeError(status int, requestID string, body []byte) *deepgram.Error {
	msg := strings.TrimSpace(string(body))
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		for _, key := range []string{"err_msg", "message", "reason"} {
			if v := parsed.Get(key); v.Exists() && v.String() != "" {
				msg = v.String()
				break
			}
		}
		if id := parsed.Get("request_id").String(); id != "" {
			requestID = id
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	e := deepgram.MapAPIError(msg, status)
	e.RequestID = requestID
	return e
}
