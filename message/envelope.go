package message

import (
	"encoding/json"

	"github.com/viant/jsonrpc"
)

// ErrorEnvelope is a JSON-RPC error response synthesized by the bridge.
// Unlike jsonrpc.Response, Id is always serialized, as null when unknown.
type ErrorEnvelope struct {
	Jsonrpc string            `json:"jsonrpc"`
	Id      jsonrpc.RequestId `json:"id"`
	Error   *jsonrpc.Error    `json:"error"`
}

// NewErrorEnvelope builds an internal-error response for id carrying cause's message.
func NewErrorEnvelope(id jsonrpc.RequestId, cause error) *ErrorEnvelope {
	return &ErrorEnvelope{
		Jsonrpc: jsonrpc.Version,
		Id:      id,
		Error:   jsonrpc.NewInternalError(cause.Error(), nil),
	}
}

// Bytes returns the compact JSON encoding of the envelope.
func (e *ErrorEnvelope) Bytes() []byte {
	data, err := json.Marshal(e)
	if err != nil { //unreachable for the field types above
		return []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"internal error"}}`)
	}
	return data
}
