package wire

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophtalk/internal/common"
	"github.com/dmitrijs2005/gophtalk/internal/logging"
	"github.com/dmitrijs2005/gophtalk/internal/protocol"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
)

// session dispatches decoded envelopes to store operations for one
// connection. The only state it carries across requests is the peer's
// authenticated username, a cache of a fact the store owns.
type session struct {
	store    *store.Store
	logger   logging.Logger
	username string
}

func newSession(st *store.Store, logger logging.Logger) *session {
	return &session{store: st, logger: logger}
}

func success(payload []byte) *protocol.Envelope {
	return &protocol.Envelope{Version: protocol.Version, Op: protocol.OpSuccess, Payload: payload}
}

func failure(msg string) *protocol.Envelope {
	return &protocol.Envelope{Version: protocol.Version, Op: protocol.OpFailure, Payload: []byte(msg)}
}

// failureFromErr turns a store error into a Failure response. Precondition
// violations travel to the peer verbatim; anything unexpected is logged
// and reported as a generic internal error.
func (h *session) failureFromErr(ctx context.Context, err error) *protocol.Envelope {
	for _, known := range []error{
		common.ErrIncorrectCredential,
		common.ErrInvalidRecipient,
		common.ErrUnknownAccount,
		common.ErrIndexOutOfRange,
		common.ErrMalformedEnvelope,
	} {
		if errors.Is(err, known) {
			return failure(err.Error())
		}
	}
	h.logger.Error(ctx, "Operation failed", "error", err.Error())
	return failure(common.ErrorInternal.Error())
}

func toRecords(msgs []store.Message) []protocol.MessageRecord {
	records := make([]protocol.MessageRecord, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, protocol.MessageRecord{Sender: m.Sender, Body: m.Body})
	}
	return records
}

// handle executes one request and always produces a response envelope;
// transport-level failures are the caller's concern.
func (h *session) handle(ctx context.Context, env *protocol.Envelope) *protocol.Envelope {
	h.logger.Debug(ctx, "Dispatching request", "op", env.Op.Name())

	switch env.Op {
	case protocol.OpLogin:
		return h.login(ctx, env.Payload)
	case protocol.OpSendMessage:
		return h.sendMessage(ctx, env.Payload)
	case protocol.OpReadUnread:
		return h.readUnread(ctx, env.Payload)
	case protocol.OpReadAll:
		return h.readAll(ctx, env.Payload)
	case protocol.OpCountUnread:
		return h.countUnread(ctx, env.Payload)
	case protocol.OpListAccounts:
		return h.listAccounts(ctx, env.Payload)
	case protocol.OpDeleteMessage:
		return h.deleteMessage(ctx, env.Payload)
	case protocol.OpDeleteAccount:
		return h.deleteAccount(ctx, env.Payload)
	default:
		h.logger.Warn(ctx, "Unknown operation", "op", string(env.Op))
		return failure("unknown operation " + string(env.Op))
	}
}

func (h *session) login(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 2)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	username, credential := fields[0], fields[1]

	created, err := h.store.Login(ctx, username, credential)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}

	h.username = username
	h.logger.Info(ctx, "Logged in", "username", username, "created", created)

	if created {
		return success([]byte("Account created and login successful."))
	}
	return success([]byte("Login successful."))
}

func (h *session) sendMessage(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 3)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	sender, recipient, body := fields[0], fields[1], fields[2]

	if err := h.store.SendMessage(ctx, sender, recipient, body); err != nil {
		return h.failureFromErr(ctx, err)
	}
	return success([]byte("Message sent successfully."))
}

func (h *session) readUnread(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 2)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return failure("invalid message count " + strconv.Quote(fields[1]))
	}

	msgs, err := h.store.ReadUnread(ctx, fields[0], count)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	return success(protocol.JoinMessages(toRecords(msgs)))
}

func (h *session) readAll(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 1)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}

	msgs, err := h.store.ReadAll(ctx, fields[0])
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	return success(protocol.JoinMessages(toRecords(msgs)))
}

func (h *session) countUnread(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 1)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}

	msgs, err := h.store.CountUnread(ctx, fields[0])
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	return success(protocol.JoinMessages(toRecords(msgs)))
}

func (h *session) listAccounts(ctx context.Context, payload []byte) *protocol.Envelope {
	// First field is the requesting username; the original protocol sends
	// it but the operation ignores it.
	fields, err := protocol.SplitFields(payload, 2)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}

	names := h.store.ListAccounts(ctx, fields[1])
	return success([]byte(strings.Join(names, protocol.FieldSeparator)))
}

func (h *session) deleteMessage(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 2)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return failure("invalid message index " + strconv.Quote(fields[1]))
	}

	if err := h.store.DeleteMessage(ctx, fields[0], index); err != nil {
		return h.failureFromErr(ctx, err)
	}
	return success([]byte("Message deleted successfully."))
}

func (h *session) deleteAccount(ctx context.Context, payload []byte) *protocol.Envelope {
	fields, err := protocol.SplitFields(payload, 1)
	if err != nil {
		return h.failureFromErr(ctx, err)
	}

	if err := h.store.DeleteAccount(ctx, fields[0]); err != nil {
		return h.failureFromErr(ctx, err)
	}

	if h.username == fields[0] {
		h.username = ""
	}
	h.logger.Info(ctx, "Account deleted", "username", fields[0])
	return success([]byte("Account deleted successfully."))
}
