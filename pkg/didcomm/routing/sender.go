// Package routing implements store-and-forward delivery of DIDComm
// messages: it resolves a recipient's transport endpoint, directly or
// through an intermediary relay, and wraps encrypted payloads accordingly.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/logger"
	"github.com/TelegramSam/didcomm-website-demo/pkg/didcomm/messages"
	"github.com/TelegramSam/didcomm-website-demo/pkg/didcomm/transport"
	dids "github.com/TelegramSam/didcomm-website-demo/pkg/dids"
)

// MessageSender is the routing engine. It owns no key material and performs
// no cryptography: documents come from the DID store, ciphertext from the
// Packer collaborator, bytes-on-the-wire from the outbound transports.
type MessageSender struct {
	didStore   *dids.DidStore
	packer     Packer
	transports []transport.OutboundTransport
	log        logger.Logger
}

// NewMessageSender creates a sender delivering over HTTP(S)
func NewMessageSender(didStore *dids.DidStore, packer Packer) *MessageSender {
	return &MessageSender{
		didStore:   didStore,
		packer:     packer,
		transports: []transport.OutboundTransport{transport.NewHttpOutboundTransport()},
		log:        logger.GetDefaultLogger(),
	}
}

// RegisterOutboundTransport adds an outbound transport
func (ms *MessageSender) RegisterOutboundTransport(t transport.OutboundTransport) {
	if t == nil {
		return
	}
	ms.transports = append(ms.transports, t)
}

// SetLogger overrides the sender's logger
func (ms *MessageSender) SetLogger(log logger.Logger) {
	if log != nil {
		ms.log = log
	}
}

// deliveryRoute is the resolved path for one delivery attempt
type deliveryRoute struct {
	endpoint    string
	mediatorDid string
	routingKeys []string
}

// Deliver resolves the recipient's endpoint, packs message for them and
// posts the result. When the recipient's service endpoint is itself a DID
// the payload is wrapped in a forward envelope packed for that mediator and
// only the outer ciphertext ever travels. On a 2xx response the JSON body is
// returned; the engine performs no retries, and cancelling ctx does not
// undo a request already sent.
func (ms *MessageSender) Deliver(ctx context.Context, message *messages.PlaintextMessage, recipientDid string) (map[string]interface{}, error) {
	route, err := ms.resolveRoute(recipientDid)
	if err != nil {
		return nil, err
	}

	plaintext, err := message.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %w", err)
	}

	payload, err := ms.packer.Pack(ctx, plaintext, recipientDid)
	if err != nil {
		return nil, fmt.Errorf("failed to pack message for %s: %w", recipientDid, err)
	}

	if route.mediatorDid != "" {
		ms.log.Debugf("wrapping message %s for mediator %s", message.Id, route.mediatorDid)
		forward := messages.NewForward(route.mediatorDid, recipientDid, payload)
		forwardBytes, err := forward.ToJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize forward envelope: %w", err)
		}
		payload, err = ms.packer.Pack(ctx, forwardBytes, route.mediatorDid)
		if err != nil {
			return nil, fmt.Errorf("failed to pack forward envelope for %s: %w", route.mediatorDid, err)
		}
	}

	return ms.send(ctx, payload, route.endpoint)
}

// resolveRoute finds the delivery endpoint for recipientDid, following one
// level of mediator indirection when the service endpoint is itself a DID.
func (ms *MessageSender) resolveRoute(recipientDid string) (*deliveryRoute, error) {
	doc, err := ms.didStore.Resolve(recipientDid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, &UnresolvableRecipientError{Did: recipientDid}
	}

	service := doc.FindDIDCommService()
	if service == nil || service.ServiceEndpoint == nil || service.ServiceEndpoint.Uri == "" {
		return nil, &NoServiceEndpointError{Did: recipientDid}
	}

	route := &deliveryRoute{
		endpoint:    service.ServiceEndpoint.Uri,
		routingKeys: service.ServiceEndpoint.RoutingKeys,
	}

	if !dids.IsValidDid(route.endpoint) {
		return route, nil
	}

	// Relay indirection: the endpoint is a DID naming a mediator
	mediatorDid := route.endpoint
	mediatorDoc, err := ms.didStore.Resolve(mediatorDid)
	if err != nil {
		return nil, err
	}
	if mediatorDoc == nil {
		return nil, &UnresolvableMediatorError{Did: mediatorDid}
	}

	mediatorService := mediatorDoc.FindDIDCommService()
	if mediatorService == nil || mediatorService.ServiceEndpoint == nil || mediatorService.ServiceEndpoint.Uri == "" {
		return nil, &UnresolvableMediatorError{Did: mediatorDid}
	}

	route.endpoint = mediatorService.ServiceEndpoint.Uri
	route.mediatorDid = mediatorDid
	if len(route.routingKeys) == 0 {
		for _, ref := range mediatorDoc.KeyAgreement {
			route.routingKeys = append(route.routingKeys, ref.GetId())
		}
	}

	ms.log.Debugf("routing via mediator %s at %s", mediatorDid, route.endpoint)
	return route, nil
}

// send posts the payload through the first transport that accepts the
// endpoint and decodes the response.
func (ms *MessageSender) send(ctx context.Context, payload []byte, endpoint string) (map[string]interface{}, error) {
	for _, t := range ms.transports {
		if !t.CanSend(endpoint) {
			continue
		}

		ms.log.Infof("sending %d byte payload to %s", len(payload), endpoint)
		status, body, err := t.Send(ctx, payload, endpoint)
		if err != nil {
			return nil, fmt.Errorf("transport failure for %s: %w", endpoint, err)
		}

		if status < 200 || status >= 300 {
			if report := decodeProblemReport(body); report != nil {
				return nil, report
			}
			return nil, &TransportError{Status: status}
		}

		var ack map[string]interface{}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &ack); err != nil {
				return nil, fmt.Errorf("failed to parse delivery response: %w", err)
			}
		}
		return ack, nil
	}

	return nil, fmt.Errorf("no outbound transport can send to endpoint: %s", endpoint)
}

// decodeProblemReport decodes an error body into a ProblemReportError when
// its type marks it as a DIDComm problem report, otherwise nil.
func decodeProblemReport(body []byte) *ProblemReportError {
	var report struct {
		Type string `json:"type"`
		Body struct {
			Code    string `json:"code"`
			Comment string `json:"comment"`
		} `json:"body"`
		Code    string `json:"code"`
		Comment string `json:"comment"`
	}
	if err := json.Unmarshal(body, &report); err != nil {
		return nil
	}
	if !strings.Contains(report.Type, "problem-report") {
		return nil
	}

	code, comment := report.Body.Code, report.Body.Comment
	if code == "" {
		code = report.Code
	}
	if comment == "" {
		comment = report.Comment
	}
	return &ProblemReportError{Code: code, Comment: comment}
}
