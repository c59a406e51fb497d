package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// ChatServiceClient is the client API for the gophtalk.ChatService service.
type ChatServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	ReadUnreadMessages(ctx context.Context, in *ReadUnreadMessagesRequest, opts ...grpc.CallOption) (*ReadUnreadMessagesResponse, error)
	ReadMessages(ctx context.Context, in *ReadMessagesRequest, opts ...grpc.CallOption) (*ReadMessagesResponse, error)
	GetUnreadMessages(ctx context.Context, in *GetUnreadMessagesRequest, opts ...grpc.CallOption) (*GetUnreadMessagesResponse, error)
	ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error)
	DeleteMessage(ctx context.Context, in *DeleteMessageRequest, opts ...grpc.CallOption) (*DeleteMessageResponse, error)
	DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewChatServiceClient wraps a client connection in the ChatService stub.
// Every call pins the JSON content subtype so the connection needs no
// default call options of its own.
func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc: cc}
}

func (c *chatServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *chatServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.invoke(ctx, ChatService_Login_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	out := new(SendMessageResponse)
	if err := c.invoke(ctx, ChatService_SendMessage_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) ReadUnreadMessages(ctx context.Context, in *ReadUnreadMessagesRequest, opts ...grpc.CallOption) (*ReadUnreadMessagesResponse, error) {
	out := new(ReadUnreadMessagesResponse)
	if err := c.invoke(ctx, ChatService_ReadUnreadMessages_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) ReadMessages(ctx context.Context, in *ReadMessagesRequest, opts ...grpc.CallOption) (*ReadMessagesResponse, error) {
	out := new(ReadMessagesResponse)
	if err := c.invoke(ctx, ChatService_ReadMessages_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) GetUnreadMessages(ctx context.Context, in *GetUnreadMessagesRequest, opts ...grpc.CallOption) (*GetUnreadMessagesResponse, error) {
	out := new(GetUnreadMessagesResponse)
	if err := c.invoke(ctx, ChatService_GetUnreadMessages_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	out := new(ListAccountsResponse)
	if err := c.invoke(ctx, ChatService_ListAccounts_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) DeleteMessage(ctx context.Context, in *DeleteMessageRequest, opts ...grpc.CallOption) (*DeleteMessageResponse, error) {
	out := new(DeleteMessageResponse)
	if err := c.invoke(ctx, ChatService_DeleteMessage_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error) {
	out := new(DeleteAccountResponse)
	if err := c.invoke(ctx, ChatService_DeleteAccount_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
