package messages

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PlaintextMessage is a DIDComm v2 plaintext message before encryption
type PlaintextMessage struct {
	Id          string                 `json:"id"`
	Type        string                 `json:"type"`
	From        string                 `json:"from,omitempty"`
	To          []string               `json:"to,omitempty"`
	Thid        string                 `json:"thid,omitempty"`
	CreatedTime int64                  `json:"created_time,omitempty"`
	ExpiresTime int64                  `json:"expires_time,omitempty"`
	Body        map[string]interface{} `json:"body"`
	Attachments []*Attachment          `json:"attachments,omitempty"`
}

// Attachment carries out-of-band data inside a message
type Attachment struct {
	Id        string         `json:"id,omitempty"`
	MediaType string         `json:"media_type,omitempty"`
	Data      AttachmentData `json:"data"`
}

// AttachmentData is the payload of an attachment, base64url or inline JSON
type AttachmentData struct {
	Base64 string      `json:"base64,omitempty"`
	Json   interface{} `json:"json,omitempty"`
}

// NewPlaintextMessage creates a message of the given type with a fresh id
// and an empty body
func NewPlaintextMessage(messageType string) *PlaintextMessage {
	return &PlaintextMessage{
		Id:   uuid.New().String(),
		Type: messageType,
		Body: map[string]interface{}{},
	}
}

// ToJSON serializes the message
func (m *PlaintextMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// FromJSON deserializes into the message
func (m *PlaintextMessage) FromJSON(data []byte) error {
	return json.Unmarshal(data, m)
}
