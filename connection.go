package sqlclient

import (
	"context"
	"net"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient/service"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Connection is the single channel a client holds to the query service.
type Connection struct {
	addr   string
	conn   *grpc.ClientConn
	client service.QueryClient
}

// Connect opens an insecure channel to addr. A positive dialTimeout makes
// the dial blocking so an unreachable server is reported here; otherwise
// the channel connects lazily and failures show up as RPC errors on the
// first call. Extra dial options are appended after the defaults.
func Connect(ctx context.Context, addr string, dialTimeout time.Duration, opts ...grpc.DialOption) (*Connection, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if dialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		dialOpts = append(dialOpts, grpc.WithBlock(), grpc.WithReturnConnectionError())
	}
	dialOpts = append(dialOpts, opts...)

	log := logrus.WithField("addr", addr)
	log.Debug("dialing query service")

	conn, err := grpc.DialContext(ctx, addr, dialOpts...)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: errors.Wrap(err, "dial")}
	}
	log.Debug("connected")

	return &Connection{
		addr:   addr,
		conn:   conn,
		client: service.NewQueryClient(conn),
	}, nil
}

func (c *Connection) Addr() string {
	return c.addr
}

// Client returns the typed stub for the query service.
func (c *Connection) Client() service.QueryClient {
	return c.client
}

func (c *Connection) Close() error {
	return c.conn.Close()
}
