package videos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGetter_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "unit-test", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"title":"Hello"}`))
	}))
	defer server.Close()

	getter := NewHTTPGetter(nil)
	header := http.Header{}
	header.Set("User-Agent", "unit-test")

	resp, err := getter.Get(context.Background(), server.URL, header)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.False(t, resp.OK())
	var payload struct {
		Title string `json:"title"`
	}
	require.NoError(t, resp.JSON(&payload))
	assert.Equal(t, "Hello", payload.Title)
}

func TestHTTPGetter_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	getter := NewHTTPGetter(server.Client())
	getter.MaxBodyBytes = 16

	resp, err := getter.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Body, 16)
}

func TestHTTPGetter_Errors(t *testing.T) {
	var nilGetter *HTTPGetter
	_, err := nilGetter.Get(context.Background(), "http://example.com", nil)
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewHTTPGetter(nil).Get(ctx, "http://127.0.0.1:1/", nil)
	assert.Error(t, err)

	_, err = NewHTTPGetter(nil).Get(context.Background(), "://bad", nil)
	assert.Error(t, err)
}

func TestResponseJSON_Invalid(t *testing.T) {
	var v map[string]any
	assert.Error(t, Response{Body: []byte("{")}.JSON(&v))
}

func TestResolver_AgainstHTTPServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("v"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(sampleWatchPage))
	})
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.True(t, strings.HasSuffix(r.URL.Query().Get("url"), "/watch?v=abc123"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"From oEmbed","author_name":"oEmbed Channel","thumbnail_url":"https://i.ytimg.com/vi/abc123/hqdefault.jpg"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resolver := NewResolver(NewHTTPGetter(server.Client()), "")
	resolver.WatchURL = server.URL + "/watch"
	resolver.OEmbedEndpoint = server.URL + "/oembed"

	md, err := resolver.Lookup(context.Background(), "https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)

	assert.Equal(t, "From oEmbed", md.Title)
	assert.Equal(t, "oEmbed Channel", md.Author)
	assert.Equal(t, "A video about tea & biscuits", md.Description)
	assert.Equal(t, 212, md.Duration)
	assert.Equal(t, int64(48213), md.Views)
}
