package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Kind discriminates the four wire message variants.
type Kind int

const (
	KindInvalid Kind = iota
	KindRequest
	KindResponse
	KindNotification
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	case KindNotification:
		return "notification"
	case KindError:
		return "error"
	}
	return "invalid"
}

var ErrNotJsonRPC = errors.New("not a jsonrpc message")

// Message is one parsed line of the wire format. Exactly one variant is
// active; Kind() reports which. Params and Result stay raw so handlers can
// decode them into their own shapes.
type Message struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// ParseMessage decodes a single line into a Message. Request ids arrive as
// string or number; numeric ids are normalized to int64 so they echo back
// without float formatting.
func ParseMessage(line []byte) (*Message, error) {
	var msg Message
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	if err := dec.Decode(&msg); err != nil {
		return nil, err
	}
	msg.ID = normalizeID(msg.ID)
	if msg.Kind() == KindInvalid {
		return nil, ErrNotJsonRPC
	}
	return &msg, nil
}

func (m *Message) Kind() Kind {
	switch {
	case m.Method != "" && m.ID != nil:
		return KindRequest
	case m.Method != "":
		return KindNotification
	case m.Error != nil:
		return KindError
	case m.ID != nil:
		return KindResponse
	}
	return KindInvalid
}

func normalizeID(id interface{}) interface{} {
	n, ok := id.(json.Number)
	if !ok {
		return id
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
