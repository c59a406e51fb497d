// Package protocol implements the wire protocol shared by the gophtalk
// server and client: the envelope codec, the length-prefixed framer, and
// the operation registry.
//
// An envelope is a flat byte concatenation, not a self-describing format:
// byte 0 is the protocol version, bytes 1-2 are the operation code, and
// the remainder is the operation-specific payload. Nothing is escaped, so
// payload grammars must avoid their own delimiters (see payload.go).
package protocol

import (
	"fmt"

	"github.com/dmitrijs2005/gophtalk/internal/common"
)

// Version is the protocol version tag carried on every envelope. A peer
// receiving any other version must abort the exchange.
const Version byte = '1'

// Envelope is the version+operation+payload unit exchanged between client
// and server.
type Envelope struct {
	Version byte
	Op      Operation
	Payload []byte
}

// Marshal encodes the envelope into a contiguous byte buffer. It is total:
// any in-range version and two-character operation encodes successfully.
func (e *Envelope) Marshal() []byte {
	buf := make([]byte, 0, 3+len(e.Payload))
	buf = append(buf, e.Version)
	buf = append(buf, e.Op...)
	buf = append(buf, e.Payload...)
	return buf
}

// UnmarshalEnvelope decodes data produced by Marshal. It fails with
// common.ErrMalformedEnvelope if data is shorter than the three fixed
// header bytes.
func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	if len(data) < 3 {
		return nil, fmt.Errorf("%w: %d bytes", common.ErrMalformedEnvelope, len(data))
	}
	return &Envelope{
		Version: data[0],
		Op:      Operation(data[1:3]),
		Payload: data[3:],
	}, nil
}
