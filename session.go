package sqlclient

import (
	"context"
	"time"

	"github.com/eatonphil/sqlclient/service"
	"github.com/sirupsen/logrus"
)

// Session executes SQL programs against the query service and tracks the
// database the server reports as selected.
type Session struct {
	client    service.QueryClient
	currentDB string
}

func NewSession(client service.QueryClient) *Session {
	return &Session{client: client}
}

// CurrentDatabase is the database selected after the last successful call,
// or "" before any.
func (s *Session) CurrentDatabase() string {
	return s.currentDB
}

// Execute sends sql as one program and returns the server's batch as is.
// Transport failures are returned as *RPCError and leave the session
// untouched. Server side statement errors are part of the batch.
func (s *Session) Execute(ctx context.Context, sql string) (*service.ExecutionBatchResponse, error) {
	start := time.Now()
	batch, err := s.client.ExecuteSQLProgram(ctx, &service.ExecutionRequest{Sql: sql})
	if err != nil {
		rpcErr := newRPCError(err)
		logrus.WithField("code", rpcErr.Code).Debug("execute failed")
		return nil, rpcErr
	}

	responses := batch.GetResponses()
	if n := len(responses); n > 0 {
		s.currentDB = responses[n-1].GetCurrentDb()
	}

	logrus.WithFields(logrus.Fields{
		"sql_bytes":  len(sql),
		"responses":  len(responses),
		"server_us":  batch.GetStats().GetElapse(),
		"round_trip": time.Since(start),
	}).Debug("executed program")
	return batch, nil
}

// ExecuteSilent executes sql and only classifies the outcome: nil for
// exactly one successful response, ErrMultipleResponses or ErrNoResponse
// for any other count, and *ExecutionError when the one response is an
// error.
func (s *Session) ExecuteSilent(ctx context.Context, sql string) error {
	batch, err := s.Execute(ctx, sql)
	if err != nil {
		return err
	}

	responses := batch.GetResponses()
	switch {
	case len(responses) == 0:
		return ErrNoResponse
	case len(responses) > 1:
		return ErrMultipleResponses
	}
	if e := responses[0].GetError(); e != nil {
		return &ExecutionError{Type: e.GetType(), Message: e.GetMessage()}
	}
	return nil
}
