package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OutboundTransport defines how to send encrypted DIDComm payloads to endpoints
type OutboundTransport interface {
	CanSend(endpoint string) bool
	// Send posts the payload and returns the response status and body
	Send(ctx context.Context, payload []byte, endpoint string) (int, []byte, error)
}

// HttpOutboundTransport sends payloads over HTTP(S)
type HttpOutboundTransport struct {
	client *http.Client
}

// NewHttpOutboundTransport creates a transport using the default HTTP client
func NewHttpOutboundTransport() *HttpOutboundTransport {
	return &HttpOutboundTransport{client: http.DefaultClient}
}

// NewHttpOutboundTransportWithClient creates a transport using client
func NewHttpOutboundTransportWithClient(client *http.Client) *HttpOutboundTransport {
	return &HttpOutboundTransport{client: client}
}

func (t *HttpOutboundTransport) CanSend(endpoint string) bool {
	return strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://")
}

func (t *HttpOutboundTransport) Send(ctx context.Context, payload []byte, endpoint string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/didcomm-encrypted+json")
	req.Header.Set("User-Agent", "peerroute/1.0")

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	// Read response (best effort)
	responseBody, _ := io.ReadAll(resp.Body)

	return resp.StatusCode, responseBody, nil
}
