// Package wire implements the binary transport: a TCP listener that
// speaks the length-prefixed envelope protocol, one goroutine per
// connection, all connections sharing one account store.
package wire

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/dmitrijs2005/gophtalk/internal/logging"
	"github.com/dmitrijs2005/gophtalk/internal/protocol"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
	"github.com/google/uuid"
)

type Server struct {
	address string
	store   *store.Store
	logger  logging.Logger

	mu    sync.Mutex
	conns map[string]net.Conn
	wg    sync.WaitGroup
}

func NewServer(address string, st *store.Store, logger logging.Logger) *Server {
	return &Server{
		address: address,
		store:   st,
		logger:  logger.With("module", "wire_server"),
		conns:   make(map[string]net.Conn),
	}
}

// Run listens on the configured address and serves connections until ctx
// is cancelled. There is no admission control: every accepted connection
// gets its own goroutine.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping wire server...")
		listen.Close()
		s.closeConns()
	}()

	s.logger.Info(ctx, "Starting wire server", "address", s.address)

	for {
		conn, err := listen.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			s.wg.Wait()
			return err
		}

		id := uuid.NewString()
		s.track(id, conn)

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(id)
			defer conn.Close()
			s.handleConn(ctx, conn, id)
		}()
	}

	s.wg.Wait()
	return nil
}

func (s *Server) track(id string, conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[id] = conn
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// closeConns unblocks handlers stuck in ReadFrame during shutdown.
func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.conns {
		conn.Close()
	}
}

// handleConn runs the per-connection loop: read one framed request,
// dispatch it, write one framed response. Framing errors and version
// mismatches terminate the connection; store failures become Failure
// responses and the loop continues.
func (s *Server) handleConn(ctx context.Context, conn net.Conn, id string) {

	logger := s.logger.With("conn_id", id, "remote", conn.RemoteAddr().String())
	logger.Info(ctx, "Connection accepted")

	sess := newSession(s.store, logger)

	for {
		env, err := protocol.ReadFrame(conn)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info(ctx, "Peer disconnected")
			} else {
				logger.Warn(ctx, "Closing connection", "error", err.Error())
			}
			return
		}

		if env.Version != protocol.Version {
			logger.Warn(ctx, "Protocol version mismatch, closing connection",
				"got", string(env.Version), "want", string(protocol.Version))
			return
		}

		resp := sess.handle(ctx, env)
		if err := protocol.WriteFrame(conn, resp); err != nil {
			logger.Warn(ctx, "Writing response failed", "error", err.Error())
			return
		}
	}
}
