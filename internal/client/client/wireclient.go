package client

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtalk/internal/common"
	"github.com/dmitrijs2005/gophtalk/internal/protocol"
)

// WireClient speaks the length-prefixed wire protocol over a single TCP
// connection. The server answers requests one at a time, so a mutex
// serializes exchanges instead of multiplexing them.
type WireClient struct {
	address string
	mu      sync.Mutex
	conn    net.Conn
}

func NewWireClient(address string) (*WireClient, error) {
	conn, err := net.DialTimeout("tcp", address, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &WireClient{address: address, conn: conn}, nil
}

func (c *WireClient) Close() error {
	return c.conn.Close()
}

// exchange performs one request/response round trip. The context deadline,
// when set, bounds both the write and the read.
func (c *WireClient) exchange(ctx context.Context, op protocol.Operation, fields ...string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	req := &protocol.Envelope{Version: protocol.Version, Op: op, Payload: protocol.JoinFields(fields...)}
	if err := protocol.WriteFrame(c.conn, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := protocol.ReadFrame(c.conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// A mismatched version aborts the exchange; the payload of such a
	// response is not interpreted.
	if resp.Version != protocol.Version {
		return nil, fmt.Errorf("%w: got %q, want %q",
			common.ErrVersionMismatch, string(resp.Version), string(protocol.Version))
	}

	switch resp.Op {
	case protocol.OpSuccess:
		return resp.Payload, nil
	case protocol.OpFailure:
		return nil, fmt.Errorf("%w: %s", ErrRejected, string(resp.Payload))
	default:
		return nil, fmt.Errorf("unexpected response operation %q", string(resp.Op))
	}
}

func toMessages(records []protocol.MessageRecord) []Message {
	msgs := make([]Message, 0, len(records))
	for _, r := range records {
		msgs = append(msgs, Message{Sender: r.Sender, Body: r.Body})
	}
	return msgs
}

func (c *WireClient) Login(ctx context.Context, username, credential string) (string, error) {
	payload, err := c.exchange(ctx, protocol.OpLogin, username, credential)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func (c *WireClient) SendMessage(ctx context.Context, sender, recipient, body string) error {
	_, err := c.exchange(ctx, protocol.OpSendMessage, sender, recipient, body)
	return err
}

func (c *WireClient) ReadUnread(ctx context.Context, username string, count int) ([]Message, error) {
	payload, err := c.exchange(ctx, protocol.OpReadUnread, username, strconv.Itoa(count))
	if err != nil {
		return nil, err
	}
	return toMessages(protocol.SplitMessages(payload)), nil
}

func (c *WireClient) ReadAll(ctx context.Context, username string) ([]Message, error) {
	payload, err := c.exchange(ctx, protocol.OpReadAll, username)
	if err != nil {
		return nil, err
	}
	return toMessages(protocol.SplitMessages(payload)), nil
}

func (c *WireClient) GetUnread(ctx context.Context, username string) ([]Message, error) {
	payload, err := c.exchange(ctx, protocol.OpCountUnread, username)
	if err != nil {
		return nil, err
	}
	return toMessages(protocol.SplitMessages(payload)), nil
}

func (c *WireClient) ListAccounts(ctx context.Context, username, query string) ([]string, error) {
	payload, err := c.exchange(ctx, protocol.OpListAccounts, username, query)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	return strings.Split(string(payload), protocol.FieldSeparator), nil
}

func (c *WireClient) DeleteMessage(ctx context.Context, username string, index int) error {
	_, err := c.exchange(ctx, protocol.OpDeleteMessage, username, strconv.Itoa(index))
	return err
}

func (c *WireClient) DeleteAccount(ctx context.Context, username string) error {
	_, err := c.exchange(ctx, protocol.OpDeleteAccount, username)
	return err
}
