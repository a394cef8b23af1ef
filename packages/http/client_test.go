package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandev/coman/packages/collection"
)

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "abc", r.Header.Get("X-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Do(context.Background(), &Request{
		Method:  collection.Get,
		URL:     server.URL,
		Headers: []collection.Header{{Key: "X-Token", Value: "abc"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.Success())
	assert.Equal(t, `{"ok":true}`, resp.BodyString())
	assert.Equal(t, "application/json", resp.Header("content-type"))
}

func TestClientPostBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"name":"x"}`, string(body))
		w.WriteHeader(201)
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Do(context.Background(), &Request{
		Method: collection.Post,
		URL:    server.URL,
		Body:   `{"name":"x"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClientDoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.Write([]byte("landed"))
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Do(context.Background(), &Request{
		Method: collection.Get,
		URL:    server.URL + "/old",
	})
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, SeverityRedirect, resp.Severity())
	assert.Equal(t, "/new", resp.Header("Location"))
}

func TestClientFollowRedirectsOption(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.Write([]byte("landed"))
	}))
	defer server.Close()

	client := NewClient(WithFollowRedirects(true))
	resp, err := client.Do(context.Background(), &Request{
		Method: collection.Get,
		URL:    server.URL + "/old",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "landed", resp.BodyString())
}

func TestClientRedirectLoop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/again", http.StatusFound)
	}))
	defer server.Close()

	client := NewClient(WithFollowRedirects(true))
	_, err := client.Do(context.Background(), &Request{
		Method: collection.Get,
		URL:    server.URL,
	})
	require.Error(t, err)
	var httpErr *Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, KindRedirect, httpErr.Kind)
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(WithTimeout(20 * time.Millisecond))
	_, err := client.Do(context.Background(), &Request{
		Method: collection.Get,
		URL:    server.URL,
	})
	require.Error(t, err)
	var httpErr *Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, KindTimeout, httpErr.Kind)
}

func TestClientConnectionRefused(t *testing.T) {
	client := NewClient()
	_, err := client.Do(context.Background(), &Request{
		Method: collection.Get,
		URL:    "http://127.0.0.1:1", // nothing listens here
	})
	require.Error(t, err)
	var httpErr *Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, KindConnection, httpErr.Kind)
}

func TestClientStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"one\n", "two\n", "three\n"} {
			w.Write([]byte(chunk))
			flusher.Flush()
		}
	}))
	defer server.Close()

	var sink bytes.Buffer
	client := NewClient()
	resp, err := client.DoStream(context.Background(), &Request{
		Method: collection.Get,
		URL:    server.URL,
	}, &sink)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, "one\ntwo\nthree\n", sink.String())
}

// pngMagic is the 8-byte PNG signature padded with a minimal chunk so
// the sniffer has enough to work with.
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestClientMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "file.png", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, pngMagic, data)
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.DoMultipart(context.Background(), &Request{
		Method: collection.Post,
		URL:    server.URL,
	}, pngMagic)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClientMultipartUnknownContentType(t *testing.T) {
	client := NewClient()
	_, err := client.DoMultipart(context.Background(), &Request{
		Method: collection.Post,
		URL:    "http://unused.test",
	}, []byte{0x00, 0x01, 0x02, 0x03})
	require.Error(t, err)
	var httpErr *Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, KindUnknownContentType, httpErr.Kind)
}

func TestClientDefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "coman", r.Header.Get("User-Agent"))
		assert.Equal(t, "override", r.Header.Get("X-Mode"))
	}))
	defer server.Close()

	client := NewClient(WithDefaultHeaders([]collection.Header{
		{Key: "User-Agent", Value: "coman"},
		{Key: "X-Mode", Value: "default"},
	}))
	_, err := client.Do(context.Background(), &Request{
		Method:  collection.Get,
		URL:     server.URL,
		Headers: []collection.Header{{Key: "X-Mode", Value: "override"}},
	})
	require.NoError(t, err)
}

func TestSeverityBuckets(t *testing.T) {
	cases := map[int]Severity{
		200: SeveritySuccess,
		204: SeveritySuccess,
		301: SeverityRedirect,
		404: SeverityClient,
		500: SeverityServer,
		503: SeverityServer,
	}
	for code, want := range cases {
		resp := &Response{StatusCode: code}
		assert.Equal(t, want, resp.Severity(), "status %d", code)
	}
}
