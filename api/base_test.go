package api

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/chinmay1088/walletgate/chains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		client, err := NewClient(key)
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	}
}

func TestNewClientBaseURL(t *testing.T) {
	client, err := NewClient(testAPIKey)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	client, err = NewClient(testAPIKey, WithBaseURL("https://auth.example.com/v2/"))
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com/v2", client.BaseURL())

	_, err = NewClient(testAPIKey, WithBaseURL("not a url"))
	assert.Error(t, err)
}

func TestHeaders(t *testing.T) {
	client, captured := newStubClient(t, http.StatusOK, `{"data":[]}`)

	_, err := client.Chains(context.Background())
	require.NoError(t, err)

	auth := captured.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(auth, "Basic "), auth)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, string(decoded))
	assert.NotContains(t, auth, testAPIKey)

	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "walletgate-go/"+Version, captured.Header.Get("User-Agent"))
}

func TestWithUserAgent(t *testing.T) {
	client, captured := newStubClient(t, http.StatusOK, `{"data":[]}`, WithUserAgent("gatekeeper/1.2"))

	_, err := client.Chains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gatekeeper/1.2", captured.Header.Get("User-Agent"))
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status  int
		success bool
	}{
		{200, true},
		{201, true},
		{202, true},
		{299, true},
		{300, false},
		{400, false},
		{401, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.success, isSuccess(tt.status))

			body := `{"chainSlug":"ethereum","chainID":1}`
			if !tt.success {
				body = `{"code":"denied","msg":"nope"}`
			}
			client, _ := newStubClient(t, tt.status, body)

			info, err := client.ChainInfo(context.Background(), chains.Ethereum)
			if tt.success {
				require.NoError(t, err)
				assert.Equal(t, int64(1), info.ChainID)
				return
			}

			require.Error(t, err)
			assert.Nil(t, info)
			errResp, ok := AsErrorResponse(err)
			require.True(t, ok, "expected ErrorResponse, got %T", err)
			assert.Equal(t, tt.status, errResp.StatusCode)
			assert.Equal(t, "denied", errResp.Code)
			assert.Equal(t, "nope", errResp.Message)
			assert.False(t, IsValidationError(err))
		})
	}
}

func TestRedirectIsFailure(t *testing.T) {
	for _, status := range []int{
		http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect,
	} {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			var followed atomic.Int32
			mux := http.NewServeMux()
			mux.HandleFunc("/elsewhere", func(w http.ResponseWriter, r *http.Request) {
				followed.Add(1)
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"chainSlug":"ethereum","chainID":1}`)
			})
			mux.HandleFunc("/chains/ethereum", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/elsewhere")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = io.WriteString(w, `{"code":"moved","msg":"use /elsewhere"}`)
			})
			server := httptest.NewServer(mux)
			t.Cleanup(server.Close)

			client, err := NewClient(testAPIKey, WithBaseURL(server.URL))
			require.NoError(t, err)

			info, err := client.ChainInfo(context.Background(), chains.Ethereum)
			require.Error(t, err)
			assert.Nil(t, info)

			errResp, ok := AsErrorResponse(err)
			require.True(t, ok, "expected ErrorResponse, got %T", err)
			assert.Equal(t, status, errResp.StatusCode)
			assert.Equal(t, "moved", errResp.Code)
			assert.Zero(t, followed.Load())
		})
	}
}

func TestNoContentIsSuccess(t *testing.T) {
	client, _ := newStubClient(t, http.StatusNoContent, "")

	info, err := client.ChainInfo(context.Background(), chains.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, ChainInfo{}, *info)
}

func TestDecodeResponse(t *testing.T) {
	t.Run("empty error body uses status text", func(t *testing.T) {
		err := decodeResponse(http.StatusBadGateway, nil, nil)
		errResp, ok := AsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, errResp.StatusCode)
		assert.Equal(t, "Bad Gateway", errResp.Message)
	})

	t.Run("malformed error body", func(t *testing.T) {
		err := decodeResponse(http.StatusBadGateway, []byte("<html>"), nil)
		require.Error(t, err)
		_, ok := AsErrorResponse(err)
		assert.False(t, ok)
	})

	t.Run("malformed success body", func(t *testing.T) {
		var out NonceResponse
		err := decodeResponse(http.StatusOK, []byte("{"), &out)
		require.Error(t, err)
		_, ok := AsErrorResponse(err)
		assert.False(t, ok)
	})
}

func TestTransportErrorPropagates(t *testing.T) {
	unreachable := errors.New("dial tcp: connection refused")
	doer := &recordingDoer{err: unreachable}
	client, err := NewClient(testAPIKey, WithHTTPClient(doer))
	require.NoError(t, err)

	_, err = client.Chains(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, unreachable)
	assert.Equal(t, 1, doer.calls())
}

func TestContextIsAttached(t *testing.T) {
	doer := &recordingDoer{err: errors.New("offline")}
	client, err := NewClient(testAPIKey, WithHTTPClient(doer))
	require.NoError(t, err)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "trace-1")
	_, _ = client.ChainInfo(ctx, chains.Solana)

	require.Equal(t, 1, doer.calls())
	assert.Equal(t, "trace-1", doer.requests[0].Context().Value(key{}))
	assert.Equal(t, DefaultBaseURL+"/chains/solana", doer.requests[0].URL.String())
}

func TestLoggingNeverIncludesKey(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	client, _ := newStubClient(t, http.StatusForbidden, `{"code":"forbidden","msg":"bad key"}`,
		WithLogger(zap.New(core)))

	_, err := client.Chains(context.Background())
	require.Error(t, err)

	require.NotEmpty(t, logs.All())
	encoded := base64.StdEncoding.EncodeToString([]byte(testAPIKey))
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, testAPIKey)
		for _, field := range entry.Context {
			assert.NotContains(t, field.String, testAPIKey)
			assert.NotContains(t, field.String, encoded)
		}
	}
	assert.Equal(t, 1, logs.FilterMessage("request rejected").Len())
}
