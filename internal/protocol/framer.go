package protocol

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophtalk/internal/common"
)

// HeaderSize is the fixed width of the frame length header: the envelope
// length as ASCII decimal, left-justified and space-padded on the right.
const HeaderSize = 64

// WriteFrame marshals the envelope and writes one frame: the padded length
// header followed by the envelope bytes. Header and body go out as two
// separate writes, so the peer must treat the connection as a byte stream
// rather than expecting two discrete packets.
func WriteFrame(w io.Writer, env *Envelope) error {
	body := env.Marshal()

	header := make([]byte, HeaderSize)
	n := copy(header, strconv.Itoa(len(body)))
	for i := n; i < HeaderSize; i++ {
		header[i] = ' '
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing frame header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing frame body: %w", err)
	}
	return nil
}

// ReadFrame reads one frame from r and decodes its envelope.
//
// It returns io.EOF when the peer closed the connection cleanly: either no
// bytes arrive at a frame boundary or the header is entirely blank. A
// stream that closes mid-frame (partial header or partial envelope) yields
// common.ErrShortRead, which is fatal for the connection.
func ReadFrame(r io.Reader) (*Envelope, error) {
	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, header)
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: frame header: %v", common.ErrShortRead, err)
	}

	text := strings.TrimRight(string(header), " ")
	if text == "" {
		// Blank header is the defined end-of-stream signal.
		return nil, io.EOF
	}

	size, err := strconv.Atoi(text)
	if err != nil || size < 0 {
		return nil, fmt.Errorf("invalid frame header %q", text)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: frame body: %v", common.ErrShortRead, err)
	}

	return UnmarshalEnvelope(body)
}
