package runner

import (
	"bytes"
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandev/coman/packages/collection"
	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/template"
)

func TestExecuteFillsPlaceholders(t *testing.T) {
	var gotBody string
	var gotHeader string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotHeader = r.Header.Get("Authorization")
	}))
	defer server.Close()

	body := `{"id":":?"}`
	prompter := &template.QueuedPrompter{Answers: []string{"Bearer t", "42"}}
	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL,
		[]collection.Header{{Key: "Authorization", Value: ":?"}}, &body,
		Options{Prompter: prompter})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"42"}`, gotBody)
	assert.Equal(t, "Bearer t", gotHeader)
}

func TestExecuteStdinTextBeatsStoredBody(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
	}))
	defer server.Close()

	stored := `{"stored":true}`
	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL, nil, &stored,
		Options{Stdin: []byte(`{"piped":true}`), Prompter: &template.QueuedPrompter{}})
	require.NoError(t, err)
	assert.Equal(t, `{"piped":true}`, gotBody)
}

func TestExecuteEmptyStdinKeepsStoredBody(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
	}))
	defer server.Close()

	// Piped-but-empty stdin arrives as a non-nil empty slice and must
	// not wipe the stored body.
	stored := `{"stored":true}`
	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL, nil, &stored,
		Options{Stdin: []byte{}, Prompter: &template.QueuedPrompter{}})
	require.NoError(t, err)
	assert.Equal(t, `{"stored":true}`, gotBody)
}

func TestExecuteStdinStillFillsURLAndHeaders(t *testing.T) {
	var gotHeader, gotPath string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotHeader = r.Header.Get("Authorization")
		gotPath = r.URL.Path
	}))
	defer server.Close()

	prompter := &template.QueuedPrompter{Answers: []string{"42", "tok123"}}
	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL+"/users/:?",
		[]collection.Header{{Key: "Authorization", Value: "Bearer :?"}}, nil,
		Options{Stdin: []byte(`{"piped":true}`), Prompter: prompter})
	require.NoError(t, err)
	assert.Equal(t, "/users/42", gotPath)
	assert.Equal(t, "tok123", gotHeader)
}

func TestExecuteBinaryStdinGoesMultipart(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	var gotFilename string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotFilename = header.Filename
	}))
	defer server.Close()

	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL, nil, nil,
		Options{Stdin: png})
	require.NoError(t, err)
	assert.Equal(t, "file.png", gotFilename)
}

func TestExecuteStreamSkipsTemplating(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte("chunked"))
	}))
	defer server.Close()

	body := "raw :? stays"
	var sink bytes.Buffer
	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL, nil, &body,
		Options{Stream: true, Sink: &sink})
	require.NoError(t, err)
	// Placeholders pass through untouched when streaming.
	assert.Equal(t, "raw :? stays", gotBody)
	assert.Equal(t, "chunked", sink.String())
}

func TestExecuteTimeoutOption(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := Execute(context.Background(), http.NewClient(), collection.Get, server.URL, nil, nil,
		Options{Timeout: 20 * time.Millisecond})
	require.Error(t, err)
	var httpErr *http.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.KindTimeout, httpErr.Kind)
}

func TestExecuteOnRequestHook(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	defer server.Close()

	var hookBody string
	body := "v=:?"
	_, err := Execute(context.Background(), http.NewClient(), collection.Post, server.URL, nil, &body,
		Options{
			Prompter:  &template.QueuedPrompter{Answers: []string{"7"}},
			OnRequest: func(_ []collection.Header, b string) { hookBody = b },
		})
	require.NoError(t, err)
	assert.Equal(t, "v=7", hookBody)
}
