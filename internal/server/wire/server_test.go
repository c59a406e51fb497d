package wire

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtalk/internal/logging"
	"github.com/dmitrijs2005/gophtalk/internal/protocol"
	"github.com/dmitrijs2005/gophtalk/internal/server/snapshot"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs a wire server on an ephemeral port and returns its
// address plus a cancel that stops it.
func startServer(t *testing.T) (string, context.CancelFunc) {
	t.Helper()

	snap := snapshot.NewFile(filepath.Join(t.TempDir(), "accounts.json"))
	st := store.New(snap, logging.NopLogger{})

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listen.Addr().String()
	require.NoError(t, listen.Close())

	srv := NewServer(addr, st, logging.NopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = srv.Run(ctx) }()

	// Wait for the listener to come up.
	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	return addr, cancel
}

func exchange(t *testing.T, conn net.Conn, op protocol.Operation, fields ...string) *protocol.Envelope {
	t.Helper()
	req := &protocol.Envelope{Version: protocol.Version, Op: op, Payload: protocol.JoinFields(fields...)}
	require.NoError(t, protocol.WriteFrame(conn, req))
	resp, err := protocol.ReadFrame(conn)
	require.NoError(t, err)
	return resp
}

func TestServer_EndToEnd(t *testing.T) {
	addr, cancel := startServer(t)
	defer cancel()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	resp := exchange(t, conn, protocol.OpLogin, "alice", "secret")
	assert.Equal(t, protocol.OpSuccess, resp.Op)

	resp = exchange(t, conn, protocol.OpLogin, "bob", "hunter2")
	assert.Equal(t, protocol.OpSuccess, resp.Op)

	resp = exchange(t, conn, protocol.OpSendMessage, "alice", "bob", "hello bob")
	assert.Equal(t, protocol.OpSuccess, resp.Op)

	resp = exchange(t, conn, protocol.OpReadUnread, "bob", "5")
	require.Equal(t, protocol.OpSuccess, resp.Op)
	msgs := protocol.SplitMessages(resp.Payload)
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice", msgs[0].Sender)
	assert.Equal(t, "hello bob", msgs[0].Body)
}

func TestServer_TwoConnectionsShareOneStore(t *testing.T) {
	addr, cancel := startServer(t)
	defer cancel()

	c1, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c1.Close()
	c2, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c2.Close()

	resp := exchange(t, c1, protocol.OpLogin, "alice", "p")
	require.Equal(t, protocol.OpSuccess, resp.Op)

	// The second connection sees alice immediately.
	resp = exchange(t, c2, protocol.OpListAccounts, "x", "alice")
	require.Equal(t, protocol.OpSuccess, resp.Op)
	assert.Equal(t, "alice", string(resp.Payload))
}

func TestServer_VersionMismatchClosesConnection(t *testing.T) {
	addr, cancel := startServer(t)
	defer cancel()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	req := &protocol.Envelope{Version: '9', Op: protocol.OpLogin, Payload: protocol.JoinFields("a", "b")}
	require.NoError(t, protocol.WriteFrame(conn, req))

	// The server aborts the exchange without a response frame.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = protocol.ReadFrame(conn)
	assert.Error(t, err)
}

func TestServer_CleanDisconnect(t *testing.T) {
	addr, cancel := startServer(t)
	defer cancel()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)

	resp := exchange(t, conn, protocol.OpLogin, "alice", "p")
	require.Equal(t, protocol.OpSuccess, resp.Op)
	require.NoError(t, conn.Close())

	// The server keeps serving other connections afterwards.
	c2, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c2.Close()
	resp = exchange(t, c2, protocol.OpLogin, "alice", "p")
	assert.Equal(t, protocol.OpSuccess, resp.Op)
}
