package sqlclient

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient/mock"
	"github.com/eatonphil/sqlclient/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingExecutor remembers every statement and fails those for which
// fail returns an error.
type recordingExecutor struct {
	statements []string
	fail       func(sql string) error
}

func (e *recordingExecutor) ExecuteSilent(_ context.Context, sql string) error {
	e.statements = append(e.statements, sql)
	if e.fail != nil {
		return e.fail(sql)
	}
	return nil
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "12.5", Literal("12.5"))
	assert.Equal(t, "12", Literal("12"))
	assert.Equal(t, "-3e4", Literal("-3e4"))
	assert.Equal(t, "'abc'", Literal("abc"))
	assert.Equal(t, "''", Literal(""))
	assert.Equal(t, "'12 apples'", Literal("12 apples"))
	assert.Equal(t, "'it's'", Literal("it's"))
}

func TestLiteral_Numbers(t *testing.T) {
	tests := []struct {
		field   string
		numeric bool
	}{
		{"0", true},
		{" 7 ", true},
		{"+1.5", true},
		{".5", true},
		{"5.", true},
		{"1e400", true},
		{"1_000", true},
		{"1_000.000_1", true},
		{"1e1_0", true},
		{"inf", true},
		{"-Infinity", true},
		{"nan", true},
		{"1__000", false},
		{"_1", false},
		{"1_", false},
		{"1_.5", false},
		{"0x1p4", false},
		{"-0X10p0", false},
		{"0x10", false},
		{"1,5", false},
		{"", false},
		{"   ", false},
	}

	for _, test := range tests {
		want := "'" + test.field + "'"
		if test.numeric {
			want = test.field
		}
		assert.Equal(t, want, Literal(test.field), test.field)
	}
}

func TestInsertStatement(t *testing.T) {
	assert.Equal(t, "INSERT INTO users VALUES (1,'ann',3.5);",
		InsertStatement("users", []string{"1", "ann", "3.5"}))
}

func TestImport(t *testing.T) {
	exec := &recordingExecutor{}
	var out bytes.Buffer

	n, err := NewImporter(exec, &out).Import(context.Background(),
		strings.NewReader("1,ann,3.5\n2,bob,4\n"), "shop", "users")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"USE shop;",
		"INSERT INTO users VALUES (1,'ann',3.5);",
		"INSERT INTO users VALUES (2,'bob',4);",
	}, exec.statements)
	assert.Equal(t, "Processed 2 rows\n", out.String())
}

func TestImport_AbortsOnFirstFailure(t *testing.T) {
	rowErr := &ExecutionError{Type: service.ExecutionError_ERR_INSERT, Message: "duplicate primary key"}
	exec := &recordingExecutor{fail: func(sql string) error {
		if strings.Contains(sql, "'dup'") {
			return rowErr
		}
		return nil
	}}
	var out bytes.Buffer

	n, err := NewImporter(exec, &out).Import(context.Background(),
		strings.NewReader("1,ann\n2,dup\n3,cid\n"), "shop", "users")
	assert.Equal(t, 1, n)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, 2, importErr.Row)
	assert.Equal(t, "INSERT INTO users VALUES (2,'dup');", importErr.Statement)
	assert.True(t, errors.Is(err, rowErr))
	assert.Contains(t, err.Error(), "ERR_INSERT: duplicate primary key")

	assert.Len(t, exec.statements, 3)
	assert.NotContains(t, strings.Join(exec.statements, "\n"), "'cid'")
	assert.Equal(t, "Processed 1 rows\n", out.String())
}

func TestImport_ProgressOnFailure(t *testing.T) {
	exec := &recordingExecutor{fail: func(sql string) error {
		if strings.Contains(sql, "'bad'") {
			return &ExecutionError{Type: service.ExecutionError_ERR_INCOMPATIBLE_VALUE, Message: "expected INT"}
		}
		return nil
	}}
	var out bytes.Buffer
	im := NewImporter(exec, &out)
	im.Progress = true

	n, err := im.Import(context.Background(), strings.NewReader("1\n2\nbad\n4\n"), "shop", "t")
	assert.Equal(t, 2, n)
	assert.Error(t, err)
	assert.Equal(t, "\rProcessed 1 rows\rProcessed 2 rows\rProcessed 2 rows\n", out.String())

	out.Reset()
	n, err = im.Import(context.Background(), strings.NewReader("bad\n"), "shop", "t")
	assert.Equal(t, 0, n)
	assert.Error(t, err)
	assert.Equal(t, "Processed 0 rows\n", out.String())
}

func TestImport_UseFailure(t *testing.T) {
	exec := &recordingExecutor{fail: func(sql string) error {
		return &ExecutionError{Type: service.ExecutionError_ERR_DATABASE_NOT_EXIST, Message: "no such database"}
	}}
	var out bytes.Buffer

	n, err := NewImporter(exec, &out).Import(context.Background(),
		strings.NewReader("1\n"), "nope", "t")
	assert.Equal(t, 0, n)
	assert.Empty(t, out.String())

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "USE nope;", importErr.Statement)
	assert.Equal(t, []string{"USE nope;"}, exec.statements)
}

func TestImport_MissingTarget(t *testing.T) {
	_, err := NewImporter(&recordingExecutor{}, &bytes.Buffer{}).Import(context.Background(),
		strings.NewReader("1\n"), "shop", "")
	assert.Equal(t, ErrMissingImportTarget, err)
}

func TestImport_Progress(t *testing.T) {
	var out bytes.Buffer
	im := NewImporter(&recordingExecutor{}, &out)
	im.Progress = true

	_, err := im.Import(context.Background(), strings.NewReader("1\n2\n3\n"), "shop", "t")
	require.NoError(t, err)
	assert.Equal(t, "\rProcessed 1 rows\rProcessed 2 rows\rProcessed 3 rows\rProcessed 3 rows\n", out.String())
}

func TestImportFile_ThroughServer(t *testing.T) {
	s, srv := newTestSession(t, func(sql string) (*service.ExecutionBatchResponse, error) {
		switch {
		case strings.HasPrefix(sql, "USE "):
			return mock.Batch(3, mock.Plain("shop", "Database changed", -1)), nil
		case strings.Contains(sql, "'broken'"):
			return mock.Batch(3, mock.Error("shop", service.ExecutionError_ERR_INCOMPATIBLE_VALUE, "expected INT")), nil
		default:
			return mock.Batch(3, mock.Plain("shop", "Inserted", 1)), nil
		}
	})

	path := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,ann\n2,bob\nbroken,cid\n4,dan\n"), 0644))

	n, err := NewImporter(s, &bytes.Buffer{}).ImportFile(context.Background(), path, "shop", "users")
	assert.Equal(t, 2, n)
	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, service.ExecutionError_ERR_INCOMPATIBLE_VALUE, execErr.Type)

	assert.Equal(t, []string{
		"USE shop;",
		"INSERT INTO users VALUES (1,'ann');",
		"INSERT INTO users VALUES (2,'bob');",
		"INSERT INTO users VALUES ('broken','cid');",
	}, srv.Requests())
	assert.Equal(t, "shop", s.CurrentDatabase())
}

func TestImportFile_Missing(t *testing.T) {
	_, err := NewImporter(&recordingExecutor{}, &bytes.Buffer{}).ImportFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.csv"), "shop", "t")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
