package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophtalk/internal/common"
	"github.com/dmitrijs2005/gophtalk/internal/rpc"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toRPCMessages(msgs []store.Message) []*rpc.Message {
	out := make([]*rpc.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &rpc.Message{Sender: m.Sender, Body: m.Body})
	}
	return out
}

// statusFromErr maps store errors onto gRPC codes. Missing accounts are
// NotFound; anything else is reported as Internal without detail.
func (s *GRPCServer) statusFromErr(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrUnknownAccount) {
		return status.Error(codes.NotFound, err.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {

	created, err := s.store.Login(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrIncorrectCredential) {
			return &rpc.LoginResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, s.statusFromErr(ctx, err)
	}

	s.logger.Info(ctx, "Logged in", "username", req.Username, "created", created)

	msg := "Login successful."
	if created {
		msg = "Account created and login successful."
	}
	return &rpc.LoginResponse{Success: true, Message: msg}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *rpc.SendMessageRequest) (*rpc.SendMessageResponse, error) {

	err := s.store.SendMessage(ctx, req.Sender, req.Recipient, req.Body)

	if err != nil {
		if errors.Is(err, common.ErrInvalidRecipient) {
			return &rpc.SendMessageResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, s.statusFromErr(ctx, err)
	}

	return &rpc.SendMessageResponse{Success: true, Message: "Message sent successfully."}, nil
}

func (s *GRPCServer) ReadUnreadMessages(ctx context.Context, req *rpc.ReadUnreadMessagesRequest) (*rpc.ReadUnreadMessagesResponse, error) {

	msgs, err := s.store.ReadUnread(ctx, req.Username, int(req.Count))

	if err != nil {
		return nil, s.statusFromErr(ctx, err)
	}

	return &rpc.ReadUnreadMessagesResponse{Messages: toRPCMessages(msgs)}, nil
}

func (s *GRPCServer) ReadMessages(ctx context.Context, req *rpc.ReadMessagesRequest) (*rpc.ReadMessagesResponse, error) {

	msgs, err := s.store.ReadAll(ctx, req.Username)

	if err != nil {
		return nil, s.statusFromErr(ctx, err)
	}

	return &rpc.ReadMessagesResponse{Messages: toRPCMessages(msgs)}, nil
}

func (s *GRPCServer) GetUnreadMessages(ctx context.Context, req *rpc.GetUnreadMessagesRequest) (*rpc.GetUnreadMessagesResponse, error) {

	msgs, err := s.store.CountUnread(ctx, req.Username)

	if err != nil {
		return nil, s.statusFromErr(ctx, err)
	}

	return &rpc.GetUnreadMessagesResponse{UnreadMessages: toRPCMessages(msgs)}, nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, req *rpc.ListAccountsRequest) (*rpc.ListAccountsResponse, error) {

	names := s.store.ListAccounts(ctx, req.Query)

	return &rpc.ListAccountsResponse{Accounts: names}, nil
}

func (s *GRPCServer) DeleteMessage(ctx context.Context, req *rpc.DeleteMessageRequest) (*rpc.DeleteMessageResponse, error) {

	err := s.store.DeleteMessage(ctx, req.Username, int(req.Index))

	if err != nil {
		if errors.Is(err, common.ErrIndexOutOfRange) {
			return &rpc.DeleteMessageResponse{Success: false, Message: err.Error()}, nil
		}
		return nil, s.statusFromErr(ctx, err)
	}

	return &rpc.DeleteMessageResponse{Success: true, Message: "Message deleted successfully."}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *rpc.DeleteAccountRequest) (*rpc.DeleteAccountResponse, error) {

	err := s.store.DeleteAccount(ctx, req.Username)

	if err != nil {
		return nil, s.statusFromErr(ctx, err)
	}

	s.logger.Info(ctx, "Account deleted", "username", req.Username)
	return &rpc.DeleteAccountResponse{Success: true, Message: "Account deleted successfully."}, nil
}
