// Package client provides transport implementations for talking to the
// gophtalk server. Both the framed wire protocol and the gRPC surface are
// available behind one interface, selected by configuration.
package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtalk/internal/client/config"
)

// Message is one delivered piece of text as seen by the client.
type Message struct {
	Sender string
	Body   string
}

// Client is the transport-independent surface the CLI works against.
// Login returns the server's acknowledgement text; precondition failures
// reported by the server come back wrapped in ErrRejected.
type Client interface {
	Close() error
	Login(ctx context.Context, username, credential string) (string, error)
	SendMessage(ctx context.Context, sender, recipient, body string) error
	ReadUnread(ctx context.Context, username string, count int) ([]Message, error)
	ReadAll(ctx context.Context, username string) ([]Message, error)
	GetUnread(ctx context.Context, username string) ([]Message, error)
	ListAccounts(ctx context.Context, username, query string) ([]string, error)
	DeleteMessage(ctx context.Context, username string, index int) error
	DeleteAccount(ctx context.Context, username string) error
}

// New builds the transport named in the config.
func New(cfg *config.Config) (Client, error) {
	switch cfg.Transport {
	case "wire":
		return NewWireClient(cfg.ServerEndpointAddr)
	case "grpc":
		return NewGRPCClient(cfg.ServerEndpointAddr)
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}
