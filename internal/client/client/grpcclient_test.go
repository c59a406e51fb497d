package client

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtalk/internal/logging"
	grpcserver "github.com/dmitrijs2005/gophtalk/internal/server/grpc"
	"github.com/dmitrijs2005/gophtalk/internal/server/snapshot"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startGRPCServer(t *testing.T) string {
	t.Helper()

	snap := snapshot.NewFile(filepath.Join(t.TempDir(), "accounts.json"))
	st := store.New(snap, logging.NopLogger{})

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listen.Addr().String()
	require.NoError(t, listen.Close())

	srv := grpcserver.NewGRPCServer(addr, st, logging.NopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = srv.Run(ctx) }()
	t.Cleanup(cancel)

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	return addr
}

func TestGRPCClient_FullFlow(t *testing.T) {
	addr := startGRPCServer(t)

	c, err := NewGRPCClient(addr)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()

	msg, err := c.Login(ctx, "alice", "credential-a")
	require.NoError(t, err)
	assert.Contains(t, msg, "created")

	_, err = c.Login(ctx, "bob", "credential-b")
	require.NoError(t, err)

	require.NoError(t, c.SendMessage(ctx, "alice", "bob", "hello over grpc"))

	unread, err := c.GetUnread(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, unread, 1)

	msgs, err := c.ReadUnread(ctx, "bob", 5)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, Message{Sender: "alice", Body: "hello over grpc"}, msgs[0])

	accounts, err := c.ListAccounts(ctx, "alice", "bo")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, accounts)
}

func TestGRPCClient_RejectedAndNotFound(t *testing.T) {
	addr := startGRPCServer(t)

	c, err := NewGRPCClient(addr)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()

	_, err = c.Login(ctx, "alice", "right")
	require.NoError(t, err)

	_, err = c.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrRejected)

	_, err = c.ReadAll(ctx, "ghost")
	assert.ErrorIs(t, err, ErrRejected)
}
