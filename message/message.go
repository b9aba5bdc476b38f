// Package message classifies JSON-RPC 2.0 payloads crossing the bridge.
//
// Payloads are never rewritten: a Message keeps its compacted raw bytes and only
// exposes enough structure (kind, id, method) for routing, logging and error
// reporting. Anything that is valid JSON but does not look like a JSON-RPC
// envelope is carried as KindOpaque.
package message

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
)

// Kind identifies the shape of a JSON-RPC payload.
type Kind int

const (
	KindOpaque Kind = iota
	KindRequest
	KindNotification
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindResponse:
		return "response"
	}
	return "opaque"
}

// Message represents a validated JSON payload.
type Message struct {
	Kind   Kind
	ID     jsonrpc.RequestId
	Method string
	raw    []byte
}

type header struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Method  *string         `json:"method"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
}

// Parse validates data as JSON and classifies it.
func Parse(data []byte) (*Message, error) {
	compacted := &bytes.Buffer{}
	if err := json.Compact(compacted, bytes.TrimSpace(data)); err != nil {
		return nil, &ParseError{Err: err}
	}
	raw := compacted.Bytes()
	ret := &Message{raw: raw}
	if len(raw) == 0 || raw[0] != '{' {
		return ret, nil
	}
	h := &header{}
	if err := json.Unmarshal(raw, h); err != nil {
		//valid JSON object with unexpected field types, e.g. "method": 1
		return ret, nil
	}
	ret.ID = decodeID(h.Id)
	if h.Jsonrpc != jsonrpc.Version {
		return ret, nil
	}
	switch {
	case h.Method != nil && len(h.Id) > 0:
		ret.Kind = KindRequest
		ret.Method = *h.Method
	case h.Method != nil:
		ret.Kind = KindNotification
		ret.Method = *h.Method
	case len(h.Result) > 0 || len(h.Error) > 0:
		ret.Kind = KindResponse
	}
	return ret, nil
}

// Bytes returns the compacted payload.
func (m *Message) Bytes() []byte {
	return m.raw
}

func (m *Message) String() string {
	if m.Method != "" {
		return fmt.Sprintf("%v %v(id=%v)", m.Kind, m.Method, m.ID)
	}
	return fmt.Sprintf("%v(id=%v)", m.Kind, m.ID)
}

// MarshalJSON returns the raw payload so a Message can be embedded verbatim.
func (m *Message) MarshalJSON() ([]byte, error) {
	return m.raw, nil
}

// RecoverID extracts the "id" of a JSON object payload, returning nil when the
// payload is not parsable or carries no id.
func RecoverID(data []byte) jsonrpc.RequestId {
	h := struct {
		Id json.RawMessage `json:"id"`
	}{}
	if err := json.Unmarshal(data, &h); err != nil {
		return nil
	}
	return decodeID(h.Id)
}

func decodeID(raw json.RawMessage) jsonrpc.RequestId {
	if len(raw) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var id interface{}
	if err := decoder.Decode(&id); err != nil {
		return nil
	}
	switch actual := id.(type) {
	case json.Number:
		if i, err := actual.Int64(); err == nil {
			return int(i)
		}
		return actual
	case string:
		return actual
	}
	return nil
}
