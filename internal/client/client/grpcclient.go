package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtalk/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const callTimeout = 10 * time.Second

// GRPCClient talks to the server over the gophtalk.ChatService RPC
// surface.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.ChatServiceClient
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewChatServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func fromRPCMessages(in []*rpc.Message) []Message {
	msgs := make([]Message, 0, len(in))
	for _, m := range in {
		msgs = append(msgs, Message{Sender: m.Sender, Body: m.Body})
	}
	return msgs
}

func (s *GRPCClient) Login(ctx context.Context, username, credential string) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: credential})
	if err != nil {
		return "", s.mapError(err)
	}
	if !resp.Success {
		return "", fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	return resp.Message, nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, sender, recipient, body string) error {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.SendMessage(ctx, &rpc.SendMessageRequest{Sender: sender, Recipient: recipient, Body: body})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	return nil
}

func (s *GRPCClient) ReadUnread(ctx context.Context, username string, count int) ([]Message, error) {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.ReadUnreadMessages(ctx, &rpc.ReadUnreadMessagesRequest{Username: username, Count: int32(count)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromRPCMessages(resp.Messages), nil
}

func (s *GRPCClient) ReadAll(ctx context.Context, username string) ([]Message, error) {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.ReadMessages(ctx, &rpc.ReadMessagesRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromRPCMessages(resp.Messages), nil
}

func (s *GRPCClient) GetUnread(ctx context.Context, username string) ([]Message, error) {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.GetUnreadMessages(ctx, &rpc.GetUnreadMessagesRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromRPCMessages(resp.UnreadMessages), nil
}

func (s *GRPCClient) ListAccounts(ctx context.Context, username, query string) ([]string, error) {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	// The RPC surface keys the search on the query alone; the requesting
	// username is a wire protocol artifact.
	_ = username

	resp, err := s.client.ListAccounts(ctx, &rpc.ListAccountsRequest{Query: query})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Accounts, nil
}

func (s *GRPCClient) DeleteMessage(ctx context.Context, username string, index int) error {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.DeleteMessage(ctx, &rpc.DeleteMessageRequest{Username: username, Index: int32(index)})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	return nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context, username string) error {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.DeleteAccount(ctx, &rpc.DeleteAccountRequest{Username: username})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	}
	return nil
}
