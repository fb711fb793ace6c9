package ws

import "encoding/json"

// MessageType constants for the live feed protocol.
const (
	// Server -> Client
	TypeQuestionEvent = "question_event"
	TypeError         = "error"

	// Both directions
	TypePing = "ping"
	TypePong = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage marshals payload into a typed message.
func NewMessage(msgType string, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Payload: raw}, nil
}

// ErrorPayload is sent to a client whose message could not be handled.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
