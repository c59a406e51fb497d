// Package rpc defines the gophtalk.ChatService RPC surface shared by the
// server and the client: message types, the service descriptor, and the
// client stub.
//
// The service runs over gRPC with a JSON codec instead of generated
// protobuf code. The original service's sibling variant speaks plain JSON,
// and typed request/response structs on both ends give the same
// schema-on-the-wire property without a codegen step. The codec registers
// itself under the "json" content subtype; the client stub forces that
// subtype on every call.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the registered codec name, carried as the gRPC content subtype
// (content-type application/grpc+json).
const Name = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
