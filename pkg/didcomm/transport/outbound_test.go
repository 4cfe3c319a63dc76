package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanSend(t *testing.T) {
	transport := NewHttpOutboundTransport()

	assert.True(t, transport.CanSend("http://localhost:3000"))
	assert.True(t, transport.CanSend("https://mediator.example.com/didcomm"))
	assert.False(t, transport.CanSend("ws://localhost:3000"))
	assert.False(t, transport.CanSend("did:example:mediator"))
}

func TestSendPostsPayload(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	payload := []byte(`{"protected":"header"}`)
	status, body, err := NewHttpOutboundTransport().Send(context.Background(), payload, server.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/didcomm-encrypted+json", gotContentType)
	assert.Equal(t, payload, gotBody)
	assert.JSONEq(t, `{"status":"queued"}`, string(body))
}

func TestSendReturnsErrorStatusWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"e.p.msg"}`))
	}))
	defer server.Close()

	status, body, err := NewHttpOutboundTransport().Send(context.Background(), []byte("payload"), server.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"code":"e.p.msg"}`, string(body))
}

func TestSendConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, _, err := NewHttpOutboundTransport().Send(context.Background(), []byte("payload"), server.URL)
	assert.Error(t, err)
}

func TestSendHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHttpOutboundTransport().Send(ctx, []byte("payload"), server.URL)
	assert.Error(t, err)
}
