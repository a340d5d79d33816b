package sqlclient

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient/mock"
	"github.com/eatonphil/sqlclient/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestReadProgram(t *testing.T) {
	tests := []struct {
		name    string
		in      *scriptedInput
		want    Input
		prompts []string
	}{
		{
			name:    "single line",
			in:      lines("SHOW DATABASES;"),
			want:    Input{Kind: InputLine, Text: "SHOW DATABASES;"},
			prompts: []string{">>> "},
		},
		{
			name:    "semicolon with trailing space",
			in:      lines("SHOW DATABASES;  "),
			want:    Input{Kind: InputLine, Text: "SHOW DATABASES;  "},
			prompts: []string{">>> "},
		},
		{
			name:    "multiple lines",
			in:      lines("SELECT *", "FROM users", "WHERE id = 1;"),
			want:    Input{Kind: InputLine, Text: "SELECT *\nFROM users\nWHERE id = 1;"},
			prompts: []string{">>> ", "... ", "... "},
		},
		{
			name:    "empty line submits",
			in:      lines("SHOW TABLES", ""),
			want:    Input{Kind: InputLine, Text: "SHOW TABLES"},
			prompts: []string{">>> ", "... "},
		},
		{
			name:    "leading empty lines are skipped",
			in:      lines("", "   ", "SHOW TABLES;"),
			want:    Input{Kind: InputLine, Text: "SHOW TABLES;"},
			prompts: []string{">>> ", ">>> ", ">>> "},
		},
		{
			name:    "cancel drops buffer",
			in:      lines("SELECT *").then(InputCancelled),
			want:    Input{Kind: InputCancelled},
			prompts: []string{">>> ", "... "},
		},
		{
			name:    "end of input",
			in:      lines("SELECT *").then(InputEOF),
			want:    Input{Kind: InputEOF},
			prompts: []string{">>> ", "... "},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := readProgram(test.in, ">>> ")
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.prompts, test.in.prompts)
		})
	}
}

func TestReadProgram_ReaderFailure(t *testing.T) {
	in := lines("SELECT *")
	in.err = errors.New("tty closed")

	_, err := readProgram(in, ">>> ")
	assert.EqualError(t, err, "tty closed")
}

func TestPromptFor(t *testing.T) {
	assert.Equal(t, ">>> ", promptFor(""))
	assert.Equal(t, "(shop) >>> ", promptFor("shop"))
}

func runRepl(t *testing.T, handler mock.Handler, in *scriptedInput) (string, *mock.Server, error) {
	t.Helper()

	s, srv := newTestSession(t, handler)
	var out bytes.Buffer
	r := NewRenderer(&out, in, DefaultPageThreshold)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := RunRepl(ctx, s, r, in, &out)
	return out.String(), srv, err
}

func TestRunRepl(t *testing.T) {
	in := lines("USE shop;", "SHOW TABLES;")
	out, srv, err := runRepl(t, func(sql string) (*service.ExecutionBatchResponse, error) {
		if strings.HasPrefix(sql, "USE") {
			return mock.Batch(100, mock.Plain("shop", "Database changed", -1)), nil
		}
		return mock.Batch(2000, mock.Tables("shop", "users")), nil
	}, in)
	require.NoError(t, err)

	assert.Equal(t, []string{"USE shop;", "SHOW TABLES;"}, srv.Requests())
	assert.Equal(t, []string{">>> ", "(shop) >>> ", "(shop) >>> "}, in.prompts)
	assert.Contains(t, out, "Database changed\nElapsed: 100.000us\n\n")
	assert.Contains(t, out, "| users |")
	assert.Contains(t, out, "Elapsed: 2.000ms\n\n")
}

func TestRunRepl_RPCErrorContinues(t *testing.T) {
	calls := 0
	in := lines("SHOW DATABASES;", "SHOW DATABASES;")
	out, srv, err := runRepl(t, func(sql string) (*service.ExecutionBatchResponse, error) {
		calls++
		if calls == 1 {
			return nil, status.Error(codes.Unavailable, "server restarting")
		}
		return mock.Batch(5, mock.Databases("", "shop")), nil
	}, in)
	require.NoError(t, err)

	assert.Len(t, srv.Requests(), 2)
	assert.Contains(t, out, "RPC Error (Unavailable): server restarting\n\n")
	assert.Contains(t, out, "| shop ")
}

func TestRunRepl_CancelSendsNothing(t *testing.T) {
	in := lines("SELECT *", "FROM users").then(InputCancelled).then(InputEOF)
	_, srv, err := runRepl(t, func(sql string) (*service.ExecutionBatchResponse, error) {
		return mock.Batch(1), nil
	}, in)
	require.NoError(t, err)

	assert.Empty(t, srv.Requests())
	assert.Equal(t, []string{">>> ", "... ", "... ", ">>> "}, in.prompts)
}

func TestRunRepl_ReaderFailure(t *testing.T) {
	in := lines("SHOW DATABASES;")
	in.err = errors.New("tty closed")
	out, srv, err := runRepl(t, func(sql string) (*service.ExecutionBatchResponse, error) {
		return mock.Batch(1, mock.Databases("")), nil
	}, in)

	assert.EqualError(t, err, "tty closed")
	assert.True(t, errors.Is(err, ErrReported))
	assert.Len(t, srv.Requests(), 1)
	assert.True(t, strings.HasSuffix(out, "Exception occurred: tty closed\n"), out)
	assert.Equal(t, 1, strings.Count(out, "tty closed"))
}

func TestRunRepl_PaginationReadsFromSameInput(t *testing.T) {
	in := lines("SELECT * FROM users;", "2")
	out, _, err := runRepl(t, func(sql string) (*service.ExecutionBatchResponse, error) {
		return mock.Batch(1, mock.Query("shop", 120)), nil
	}, in)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "name-"))
	assert.Contains(t, out, "(120 rows)\n")
	assert.Equal(t, "(shop) >>> ", in.prompts[len(in.prompts)-1])
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.HistoryFile = "/tmp/history"
	PrintBanner(&out, cfg)

	banner := out.String()
	assert.Contains(t, banner, "SimpleDB Client")
	assert.Contains(t, banner, "Execute:   end with ';' or an empty line")
	assert.Contains(t, banner, "Server addr: 127.0.0.0:9100")
	assert.Contains(t, banner, "Connect timeout: 5s")
	assert.Contains(t, banner, "Page threshold: 100")
	assert.Contains(t, banner, "History file: /tmp/history")

	out.Reset()
	cfg.HistoryFile = ""
	PrintBanner(&out, cfg)
	assert.NotContains(t, out.String(), "History file")
}
