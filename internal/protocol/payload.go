package protocol

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtalk/internal/common"
)

// Payload grammar: request fields are joined by FieldSeparator, and lists
// of message records are joined by RecordSeparator with the sender and the
// body of each record separated by the first space. Neither separator is
// escaped anywhere, so usernames and queries must not contain newlines and
// message bodies must not contain the record separator sequence.
const (
	FieldSeparator  = "\n"
	RecordSeparator = "\n\t\n"
)

// MessageRecord is one message as it appears on the wire.
type MessageRecord struct {
	Sender string
	Body   string
}

// JoinFields builds a request payload from its fields in operation order.
func JoinFields(fields ...string) []byte {
	return []byte(strings.Join(fields, FieldSeparator))
}

// SplitFields splits a request payload into exactly n fields. The last
// field absorbs any remaining separators (message bodies may contain
// newlines). Fewer than n fields is a malformed payload.
func SplitFields(payload []byte, n int) ([]string, error) {
	fields := strings.SplitN(string(payload), FieldSeparator, n)
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d fields, got %d", common.ErrMalformedEnvelope, n, len(fields))
	}
	return fields, nil
}

// JoinMessages encodes message records as a response payload.
func JoinMessages(msgs []MessageRecord) []byte {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, m.Sender+" "+m.Body)
	}
	return []byte(strings.Join(parts, RecordSeparator))
}

// SplitMessages decodes a response payload produced by JoinMessages. An
// empty payload is an empty list.
func SplitMessages(payload []byte) []MessageRecord {
	if len(payload) == 0 {
		return nil
	}
	parts := strings.Split(string(payload), RecordSeparator)
	msgs := make([]MessageRecord, 0, len(parts))
	for _, p := range parts {
		sender, body, _ := strings.Cut(p, " ")
		msgs = append(msgs, MessageRecord{Sender: sender, Body: body})
	}
	return msgs
}
