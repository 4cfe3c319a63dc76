package messages

import (
	"github.com/google/uuid"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/utils"
)

// Forward message as defined in DIDComm v2 routing
// https://didcomm.org/routing/2.0/forward
// A mediator receiving it re-delivers the attached ciphertext to body.next.

const ForwardMessageType = "https://didcomm.org/routing/2.0/forward"

// MediaTypeEncrypted is the media type of an encrypted DIDComm payload
const MediaTypeEncrypted = "application/didcomm-encrypted+json"

// NewForward builds a forward envelope addressed to mediatorDid carrying
// ciphertext for next as a single base64url attachment
func NewForward(mediatorDid string, next string, ciphertext []byte) *PlaintextMessage {
	m := NewPlaintextMessage(ForwardMessageType)
	m.To = []string{mediatorDid}
	m.Body = map[string]interface{}{"next": next}
	m.Attachments = []*Attachment{
		{
			Id:        uuid.New().String(),
			MediaType: MediaTypeEncrypted,
			Data:      AttachmentData{Base64: utils.EncodeBase64URLString(ciphertext)},
		},
	}
	return m
}
