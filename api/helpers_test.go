package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testAPIKey = "sk_test_4f1c2a"

// recordingDoer counts requests and fails them; it stands in for the transport
// in tests that must never reach the network
type recordingDoer struct {
	mu       sync.Mutex
	requests []*http.Request
	err      error
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, req)
	if d.err != nil {
		return nil, d.err
	}
	return nil, errors.New("unexpected request")
}

func (d *recordingDoer) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

// capturedRequest is what a stub server saw
type capturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// newStubClient starts a server that records the request and answers with
// status and body
func newStubClient(t *testing.T, status int, body string, opts ...Option) (*Client, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		captured.Method = r.Method
		captured.Path = r.URL.EscapedPath()
		captured.Header = r.Header.Clone()
		captured.Body = data

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(testAPIKey, append([]Option{WithBaseURL(server.URL)}, opts...)...)
	require.NoError(t, err)
	return client, captured
}

// newOfflineClient returns a client whose transport records and rejects every call
func newOfflineClient(t *testing.T, opts ...Option) (*Client, *recordingDoer) {
	t.Helper()

	doer := &recordingDoer{}
	client, err := NewClient(testAPIKey, append([]Option{WithHTTPClient(doer)}, opts...)...)
	require.NoError(t, err)
	return client, doer
}
