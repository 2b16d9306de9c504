package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 * 1024 * 1024

// Response is the result of a GET request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the request completed with 200.
func (r Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Text returns the body as a string.
func (r Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body into v.
func (r Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// Getter performs a single HTTP GET. Implementations do not retry.
type Getter interface {
	Get(ctx context.Context, url string, header http.Header) (Response, error)
}

// GetterFunc adapts a function to the Getter interface.
type GetterFunc func(ctx context.Context, url string, header http.Header) (Response, error)

// Get implements Getter.
func (f GetterFunc) Get(ctx context.Context, url string, header http.Header) (Response, error) {
	return f(ctx, url, header)
}

// HTTPGetter implements Getter on top of an http.Client.
type HTTPGetter struct {
	Client       *http.Client
	MaxBodyBytes int64
}

// NewHTTPGetter returns a Getter using the supplied client, or a client
// without a timeout when nil. Latency is bounded by the request context.
func NewHTTPGetter(client *http.Client) *HTTPGetter {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPGetter{Client: client, MaxBodyBytes: maxBodyBytes}
}

// Get issues the request and reads the (capped) body. Non-2xx statuses are
// not errors; callers inspect Response.StatusCode.
func (g *HTTPGetter) Get(ctx context.Context, url string, header http.Header) (Response, error) {
	if g == nil || g.Client == nil {
		return Response{}, ErrProviderUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	limit := g.MaxBodyBytes
	if limit <= 0 {
		limit = maxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, fmt.Errorf("read body of %s: %w", url, err)
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
