// Package mock runs an in-process query service for tests.
package mock

import (
	"context"
	"net"
	"sync"

	"github.com/eatonphil/sqlclient/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

// Addr is a placeholder host:port for connections to a Server.
const Addr = "bufnet:9100"

// Handler answers one program. A non-nil error fails the call with that
// error's gRPC status.
type Handler func(sql string) (*service.ExecutionBatchResponse, error)

type Server struct {
	service.UnimplementedQueryServer

	lis *bufconn.Listener
	srv *grpc.Server

	mu       sync.Mutex
	handler  Handler
	requests []string
}

// NewServer starts serving handler on an in-memory listener.
func NewServer(handler Handler) *Server {
	s := &Server{
		lis:     bufconn.Listen(1 << 20),
		srv:     grpc.NewServer(),
		handler: handler,
	}
	service.RegisterQueryServer(s.srv, s)
	go s.srv.Serve(s.lis)
	return s
}

func (s *Server) ExecuteSQLProgram(_ context.Context, req *service.ExecutionRequest) (*service.ExecutionBatchResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req.GetSql())
	handler := s.handler
	s.mu.Unlock()

	return handler(req.GetSql())
}

// SetHandler replaces the handler for subsequent calls.
func (s *Server) SetHandler(handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// Requests returns the programs received so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// DialOption routes a client connection to this server.
func (s *Server) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return s.lis.DialContext(ctx)
	})
}

// Stop closes the server and all its connections.
func (s *Server) Stop() {
	s.srv.Stop()
}
