package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ChatService_Login_FullMethodName              = "/gophtalk.ChatService/Login"
	ChatService_SendMessage_FullMethodName        = "/gophtalk.ChatService/SendMessage"
	ChatService_ReadUnreadMessages_FullMethodName = "/gophtalk.ChatService/ReadUnreadMessages"
	ChatService_ReadMessages_FullMethodName       = "/gophtalk.ChatService/ReadMessages"
	ChatService_GetUnreadMessages_FullMethodName  = "/gophtalk.ChatService/GetUnreadMessages"
	ChatService_ListAccounts_FullMethodName       = "/gophtalk.ChatService/ListAccounts"
	ChatService_DeleteMessage_FullMethodName      = "/gophtalk.ChatService/DeleteMessage"
	ChatService_DeleteAccount_FullMethodName      = "/gophtalk.ChatService/DeleteAccount"
)

// ChatServiceServer is the server API for the gophtalk.ChatService service.
type ChatServiceServer interface {
	Login(ctx context.Context, in *LoginRequest) (*LoginResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest) (*SendMessageResponse, error)
	ReadUnreadMessages(ctx context.Context, in *ReadUnreadMessagesRequest) (*ReadUnreadMessagesResponse, error)
	ReadMessages(ctx context.Context, in *ReadMessagesRequest) (*ReadMessagesResponse, error)
	GetUnreadMessages(ctx context.Context, in *GetUnreadMessagesRequest) (*GetUnreadMessagesResponse, error)
	ListAccounts(ctx context.Context, in *ListAccountsRequest) (*ListAccountsResponse, error)
	DeleteMessage(ctx context.Context, in *DeleteMessageRequest) (*DeleteMessageResponse, error)
	DeleteAccount(ctx context.Context, in *DeleteAccountRequest) (*DeleteAccountResponse, error)
}

// RegisterChatServiceServer registers srv under the gophtalk.ChatService
// descriptor.
func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func _ChatService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_Login_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_SendMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_SendMessage_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_ReadUnreadMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReadUnreadMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).ReadUnreadMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_ReadUnreadMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).ReadUnreadMessages(ctx, req.(*ReadUnreadMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_ReadMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReadMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).ReadMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_ReadMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).ReadMessages(ctx, req.(*ReadMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_GetUnreadMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUnreadMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetUnreadMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_GetUnreadMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).GetUnreadMessages(ctx, req.(*GetUnreadMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_ListAccounts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).ListAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_ListAccounts_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).ListAccounts(ctx, req.(*ListAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_DeleteMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).DeleteMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_DeleteMessage_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).DeleteMessage(ctx, req.(*DeleteMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_DeleteAccount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).DeleteAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatService_DeleteAccount_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).DeleteAccount(ctx, req.(*DeleteAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ChatService_ServiceDesc is the grpc.ServiceDesc for the
// gophtalk.ChatService service. It is maintained by hand because the
// service travels as JSON rather than generated protobuf messages.
var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gophtalk.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: _ChatService_Login_Handler},
		{MethodName: "SendMessage", Handler: _ChatService_SendMessage_Handler},
		{MethodName: "ReadUnreadMessages", Handler: _ChatService_ReadUnreadMessages_Handler},
		{MethodName: "ReadMessages", Handler: _ChatService_ReadMessages_Handler},
		{MethodName: "GetUnreadMessages", Handler: _ChatService_GetUnreadMessages_Handler},
		{MethodName: "ListAccounts", Handler: _ChatService_ListAccounts_Handler},
		{MethodName: "DeleteMessage", Handler: _ChatService_DeleteMessage_Handler},
		{MethodName: "DeleteAccount", Handler: _ChatService_DeleteAccount_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophtalk.ChatService",
}
