package rpc

// Message is one delivered piece of text as carried over the RPC surface.
type Message struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SendMessageRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}

type SendMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ReadUnreadMessagesRequest struct {
	Username string `json:"username"`
	Count    int32  `json:"count"`
}

type ReadUnreadMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type ReadMessagesRequest struct {
	Username string `json:"username"`
}

type ReadMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type GetUnreadMessagesRequest struct {
	Username string `json:"username"`
}

type GetUnreadMessagesResponse struct {
	UnreadMessages []*Message `json:"unread_messages"`
}

type ListAccountsRequest struct {
	Query string `json:"query"`
}

type ListAccountsResponse struct {
	Accounts []string `json:"accounts"`
}

type DeleteMessageRequest struct {
	Username string `json:"username"`
	Index    int32  `json:"index"`
}

type DeleteMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DeleteAccountRequest struct {
	Username string `json:"username"`
}

type DeleteAccountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
