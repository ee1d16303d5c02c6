package raworc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// HeaderRequestID correlates a single HTTP attempt across logs.
const HeaderRequestID = "X-Request-Id"

// response is a fully read HTTP response.
type response struct {
	status    int
	body      []byte
	readErr   error
	requestID string
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// endpoint joins path onto the base URL, keeping the base path prefix.
func (c *Client) endpoint(path string, query url.Values) string {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return endpoint
}

// do sends a single HTTP attempt. Non-2xx responses are returned, not
// mapped; only transport and encoding failures produce an error.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload any,
) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, raworcerrs.NewSerializationError(
				raworcerrs.ErrCodeEncodeFailed,
				"encoding request body",
				err,
			)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, raworcerrs.NewConfigError("api_url", "building request for "+path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError(err, req.URL.Host)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, readErr := io.ReadAll(httpResp.Body)

	c.logger.DebugContext(ctx, "raworc request",
		"method", method,
		"path", path,
		"status", httpResp.StatusCode,
		"request_id", requestID,
	)

	return &response{
		status:    httpResp.StatusCode,
		body:      data,
		readErr:   readErr,
		requestID: requestID,
	}, nil
}

func networkError(err error, host string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return raworcerrs.NewNetworkError(
			raworcerrs.ErrCodeNetworkTimeout,
			"request timed out",
			err,
		).WithHost(host)
	}

	return raworcerrs.NewNetworkError(
		raworcerrs.ErrCodeConnectionFailed,
		"request failed",
		err,
	).WithHost(host)
}

// send performs one request under the re-auth wrapper and maps non-2xx
// statuses into typed errors.
func send(
	ctx context.Context,
	c *Client,
	method, path string,
	query url.Values,
	payload any,
) (*response, error) {
	return withReauth(ctx, c, func(ctx context.Context) (*response, error) {
		res, err := c.do(ctx, method, path, query, payload)
		if err != nil {
			return nil, err
		}
		if !res.ok() {
			return nil, mapStatus(res)
		}

		return res, nil
	})
}

func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return sendJSON[T](ctx, c, http.MethodGet, path, query, nil)
}

func postJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPost, path, nil, payload)
}

func putJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPut, path, nil, payload)
}

func sendJSON[T any](
	ctx context.Context,
	c *Client,
	method, path string,
	query url.Values,
	payload any,
) (T, error) {
	res, err := send(ctx, c, method, path, query, payload)
	if err != nil {
		var zero T

		return zero, err
	}

	return decodeJSON[T](res)
}

// exec sends a request whose success body is discarded.
func exec(ctx context.Context, c *Client, method, path string, payload any) error {
	_, err := send(ctx, c, method, path, nil, payload)

	return err
}

func deleteReq(ctx context.Context, c *Client, path string) error {
	return exec(ctx, c, http.MethodDelete, path, nil)
}

// getText returns the raw body of a text endpoint. A body read failure on a
// 2xx response yields "" rather than an error.
func getText(ctx context.Context, c *Client, path string) (string, error) {
	res, err := send(ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}
	if res.readErr != nil {
		c.logger.WarnContext(ctx, "discarding unreadable response body",
			"path", path,
			"request_id", res.requestID,
			"error", res.readErr,
		)

		return "", nil
	}

	return string(res.body), nil
}
