package sqlclient

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrMultipleResponses is returned by a silent execution when the server
	// answered with more than one response for what should be one statement.
	ErrMultipleResponses = errors.New("Multiple responses")
	// ErrNoResponse is returned by a silent execution when the server
	// recognized no statement at all.
	ErrNoResponse        = errors.New("No response")

	// ErrMissingImportTarget is returned when an import is configured
	// without a database or a table.
	ErrMissingImportTarget = errors.New("Both a database and a table are required to import")

	// ErrReported marks an error whose message was already shown to the
	// user. Test for it with errors.Is.
	ErrReported = errors.New("already reported")
)

// ConnectionError is returned when a channel to the server cannot be set up.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RPCError is a transport level failure of a call that was already
// dispatched.
type RPCError struct {
	Code    codes.Code
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC Error (%s): %s", e.Code, e.Message)
}

func newRPCError(err error) *RPCError {
	s := status.Convert(err)
	return &RPCError{Code: s.Code(), Message: s.Message()}
}

// ExecutionError is a server reported failure of one statement, surfaced as
// a Go error only by silent executions.
type ExecutionError struct {
	Type    service.ExecutionError_Type
	Message string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ImportError describes the row that stopped a bulk import.
type ImportError struct {
	// Row is 1-based.
	Row       int
	Statement string
	Err       error
}

func (e *ImportError) Error() string {
	if e.Statement == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d: %v\nStatement: %s", e.Row, e.Err, e.Statement)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
