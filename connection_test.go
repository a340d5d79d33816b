package sqlclient

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient/mock"
	"github.com/eatonphil/sqlclient/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestConnect_MalformedAddress(t *testing.T) {
	for _, addr := range []string{"", "localhost", "127.0.0.1:9100:1"} {
		_, err := Connect(context.Background(), addr, 0)
		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr, addr)
		assert.Equal(t, addr, connErr.Addr)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	refuse := grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})

	_, err := Connect(context.Background(), "10.0.0.1:9100", 200*time.Millisecond, refuse)
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "10.0.0.1:9100", connErr.Addr)
}

func TestConnect_Execute(t *testing.T) {
	srv := mock.NewServer(func(sql string) (*service.ExecutionBatchResponse, error) {
		return mock.Batch(10, mock.Plain("", "pong", -1)), nil
	})
	defer srv.Stop()

	conn, err := Connect(context.Background(), mock.Addr, time.Second, srv.DialOption())
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, mock.Addr, conn.Addr())

	batch, err := conn.Client().ExecuteSQLProgram(context.Background(), &service.ExecutionRequest{Sql: "PING;"})
	require.NoError(t, err)
	require.Len(t, batch.Responses, 1)
	assert.Equal(t, "pong", batch.Responses[0].GetResult().GetResult().(*service.ExecutionResult_Plain).Plain.Msg)
	assert.Equal(t, []string{"PING;"}, srv.Requests())
}

func TestConnect_LazyDialFailsAtCallTime(t *testing.T) {
	srv := mock.NewServer(func(sql string) (*service.ExecutionBatchResponse, error) {
		return mock.Batch(0), nil
	})
	dialer := srv.DialOption()
	srv.Stop()

	conn, err := Connect(context.Background(), mock.Addr, 0, dialer)
	require.NoError(t, err)
	defer conn.Close()

	_, err = NewSession(conn.Client()).Execute(context.Background(), "SHOW DATABASES;")
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
}
