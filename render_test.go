package sqlclient

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient/mock"
	"github.com/eatonphil/sqlclient/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(resp *service.ExecutionResponse, in InputReader) string {
	var buf bytes.Buffer
	NewRenderer(&buf, in, DefaultPageThreshold).Render(resp)
	return buf.String()
}

// tableRows returns the body cells of a rendered table, one slice per line.
func tableRows(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := []string{}
		for _, cell := range strings.Split(strings.Trim(line, "|"), "|") {
			cells = append(cells, strings.TrimSpace(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}

func TestRender_Plain(t *testing.T) {
	assert.Equal(t, "Database created\n", render(mock.Plain("", "Database created", -1), nil))
	assert.Equal(t, "Query OK, 0 rows affected\n", render(mock.Plain("", "Query OK", 0), nil))
	assert.Equal(t, "Query OK, 42 rows affected\n", render(mock.Plain("", "Query OK", 42), nil))
}

func TestRender_Error(t *testing.T) {
	out := render(mock.Error("", service.ExecutionError_ERR_TABLE_NOT_EXISTS, "Table users does not exist"), nil)
	assert.Equal(t, "ERROR(ERR_TABLE_NOT_EXISTS): Table users does not exist\n", out)
}

func TestRender_ShowDatabases(t *testing.T) {
	out := render(mock.Databases("", "b", "a", "b"), nil)
	assert.Equal(t, [][]string{{"Database"}, {"b"}, {"a"}, {"b"}}, tableRows(out))

	out = render(mock.Tables("shop", "users", "orders"), nil)
	assert.Equal(t, [][]string{{"Table"}, {"users"}, {"orders"}}, tableRows(out))
}

func TestRender_EmptySet(t *testing.T) {
	assert.Equal(t, "Empty set\n", render(mock.Databases(""), nil))
	assert.Equal(t, "Empty set\n", render(mock.Tables("shop"), nil))
	assert.Equal(t, "Empty set\n", render(mock.Describe("shop"), nil))
	assert.Equal(t, "Empty set\n", render(mock.Indexes("shop"), nil))
	assert.Equal(t, "Empty set\n", render(mock.Query("shop", 0), nil))
}

func TestRender_DescribeTable(t *testing.T) {
	out := render(mock.Describe("shop",
		&service.ColumnDescription{Field: "id", Type: "INT", PrimaryKey: true},
		&service.ColumnDescription{Field: "name", Type: "VARCHAR(32)", Nullable: true, DefaultValue: "anon"},
	), nil)

	assert.Equal(t, [][]string{
		{"Field", "Type", "Null", "Key", "Default"},
		{"id", "INT", "NO", "PRI", ""},
		{"name", "VARCHAR(32)", "YES", "", "anon"},
	}, tableRows(out))
}

func TestRender_ShowIndexes(t *testing.T) {
	out := render(mock.Indexes("shop",
		&service.IndexDescription{Table: "orders", Column: "id", IsPrimaryKey: true},
		&service.IndexDescription{Table: "orders", Column: "user_id", IsPrimaryKey: true},
		&service.IndexDescription{Table: "orders", Column: "created"},
	), nil)

	assert.Equal(t, [][]string{
		{"Table", "Column", "Key Name"},
		{"orders", "id", "PRIMARY"},
		{"orders", "user_id", "PRIMARY"},
		{"orders", "created", "created"},
	}, tableRows(out))
}

func TestRender_Query(t *testing.T) {
	in := &scriptedInput{}
	out := render(mock.Query("shop", 3), in)

	assert.Empty(t, in.prompts)
	assert.Equal(t, [][]string{
		{"id", "name", "score"},
		{"0", "name-0", "0"},
		{"1", "name-1", "0.5"},
		{"2", "name-2", "1"},
	}, tableRows(out))
	assert.True(t, strings.HasSuffix(out, "(3 rows)\n"), out)

	out = render(mock.Query("shop", 1), in)
	assert.True(t, strings.HasSuffix(out, "(1 row)\n"), out)
}

func TestRender_QueryDuplicateColumns(t *testing.T) {
	q := &service.QueryResult{
		Columns: []*service.Column{{Name: "id"}, {Name: "id"}},
		Rows: []*service.Row{{Values: []*service.Value{
			{Value: &service.Value_IntValue{IntValue: 1}},
			{Value: &service.Value_NullValue{NullValue: true}},
		}}},
	}
	out := render(mock.Result("", &service.ExecutionResult{Result: &service.ExecutionResult_Query{Query: q}}), nil)
	assert.Equal(t, [][]string{{"id", "id"}, {"1", "NULL"}}, tableRows(out))
}

func TestRender_QueryAtThresholdDoesNotPrompt(t *testing.T) {
	in := &scriptedInput{}
	out := render(mock.Query("shop", DefaultPageThreshold), in)

	assert.Empty(t, in.prompts)
	assert.Equal(t, DefaultPageThreshold, strings.Count(out, "name-"))
	assert.True(t, strings.HasSuffix(out, "(100 rows)\n"), out)
}

func TestRender_PaginationGate(t *testing.T) {
	const total = 150

	tests := []struct {
		name  string
		in    *scriptedInput
		shown int
	}{
		{"yes", lines("y"), total},
		{"number", lines("37"), 37},
		{"number with spaces", lines(" 37 "), 37},
		{"number above total", lines("500"), total},
		{"zero", lines("0"), 0},
		{"negative", lines("-5"), 0},
		{"empty", lines(""), 0},
		{"no", lines("N"), 0},
		{"garbage", lines("maybe"), 0},
		{"upper case yes", lines("Y"), 0},
		{"cancelled", (&scriptedInput{}).then(InputCancelled), 0},
		{"end of input", (&scriptedInput{}).then(InputEOF), 0},
		{"reader failure", &scriptedInput{err: errors.New("tty closed")}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := render(mock.Query("shop", total), test.in)

			require.Equal(t, []string{"Too many rows (150), print? [y/N/<num>] (default: N) "}, test.in.prompts)
			assert.Equal(t, test.shown, strings.Count(out, "name-"))
			assert.True(t, strings.HasSuffix(out, "(150 rows)\n"), out)
			if test.shown == 0 {
				assert.Equal(t, "(150 rows)\n", out)
			}
		})
	}
}

func TestRender_PaginationWithoutInput(t *testing.T) {
	out := render(mock.Query("shop", 101), nil)
	assert.Equal(t, "(101 rows)\n", out)
}

func TestRender_Fallback(t *testing.T) {
	out := render(&service.ExecutionResponse{CurrentDb: "shop"}, nil)
	assert.Regexp(t, `^current_db:\s*"shop"\s*\n$`, out)

	out = render(mock.Result("shop", &service.ExecutionResult{}), nil)
	assert.Equal(t, "\n", out)
}

func TestRenderBatch(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil, DefaultPageThreshold)

	r.RenderBatch(mock.Batch(1500, mock.Plain("shop", "USE", -1)))
	assert.Equal(t, "USE\nElapsed: 1.500ms\n\n", buf.String())

	buf.Reset()
	r.RenderBatch(mock.Batch(20,
		mock.Plain("shop", "INSERT", 1),
		mock.Error("shop", service.ExecutionError_ERR_SYNTAX, "near 'FORM'"),
	))
	assert.Equal(t, "Result [0]\nINSERT, 1 rows affected\n"+
		"Result [1]\nERROR(ERR_SYNTAX): near 'FORM'\n"+
		"Elapsed: 20.000us\n\n", buf.String())
}

func TestRenderBatch_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, nil, DefaultPageThreshold).RenderBatch(mock.Batch(12))
	assert.Empty(t, buf.String())
}

func TestRowsToShow(t *testing.T) {
	assert.Equal(t, 200, rowsToShow("y", 200))
	assert.Equal(t, 37, rowsToShow("37", 200))
	assert.Equal(t, 200, rowsToShow("201", 200))
	assert.Equal(t, 0, rowsToShow("0", 200))
	assert.Equal(t, 0, rowsToShow("", 200))
	assert.Equal(t, 0, rowsToShow("yes", 200))
	assert.Equal(t, 0, rowsToShow("3.5", 200))
}
