package sqlclient

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eatonphil/sqlclient/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Renderer prints server responses for a human.
type Renderer struct {
	out io.Writer
	// in answers the pagination prompt. With no reader large results are
	// not printed.
	in            InputReader
	pageThreshold int
	bold          *color.Color
}

func NewRenderer(out io.Writer, in InputReader, pageThreshold int) *Renderer {
	return &Renderer{
		out:           out,
		in:            in,
		pageThreshold: pageThreshold,
		bold:          color.New(color.Bold),
	}
}

// RenderBatch prints every response of a batch followed by the elapsed
// server time. An empty batch prints nothing.
func (r *Renderer) RenderBatch(batch *service.ExecutionBatchResponse) {
	responses := batch.GetResponses()
	if len(responses) == 0 {
		return
	}

	if len(responses) == 1 {
		r.Render(responses[0])
	} else {
		for i, resp := range responses {
			r.bold.Fprintf(r.out, "Result [%d]", i)
			fmt.Fprintln(r.out)
			r.Render(resp)
		}
	}

	fmt.Fprintf(r.out, "Elapsed: %s\n\n", FormatElapsed(batch.GetStats().GetElapse()))
}

func (r *Renderer) Render(resp *service.ExecutionResponse) {
	switch v := resp.GetResponse().(type) {
	case *service.ExecutionResponse_Error:
		r.bold.Fprintf(r.out, "ERROR(%s): %s", v.Error.GetType(), v.Error.GetMessage())
		fmt.Fprintln(r.out)
	case *service.ExecutionResponse_Result:
		r.renderResult(v.Result)
	default:
		fmt.Fprintln(r.out, resp)
	}
}

func (r *Renderer) renderResult(res *service.ExecutionResult) {
	switch v := res.GetResult().(type) {
	case *service.ExecutionResult_Plain:
		r.renderPlain(v.Plain)
	case *service.ExecutionResult_ShowDatabases:
		r.renderList("Database", v.ShowDatabases.Databases)
	case *service.ExecutionResult_ShowTable:
		r.renderList("Table", v.ShowTable.Tables)
	case *service.ExecutionResult_DescribeTable:
		r.renderDescribe(v.DescribeTable)
	case *service.ExecutionResult_ShowIndexes:
		r.renderIndexes(v.ShowIndexes)
	case *service.ExecutionResult_Query:
		r.renderQuery(v.Query)
	default:
		fmt.Fprintln(r.out, res)
	}
}

func (r *Renderer) renderPlain(p *service.PlainResult) {
	if p.AffectedRows >= 0 {
		fmt.Fprintf(r.out, "%s, %d rows affected\n", p.Msg, p.AffectedRows)
		return
	}
	fmt.Fprintln(r.out, p.Msg)
}

func (r *Renderer) renderList(header string, items []string) {
	rows := [][]string{}
	for _, item := range items {
		rows = append(rows, []string{item})
	}
	r.table([]string{header}, rows)
}

func (r *Renderer) renderDescribe(d *service.DescribeTableResult) {
	rows := [][]string{}
	for _, c := range d.Columns {
		null := "NO"
		if c.Nullable {
			null = "YES"
		}
		key := ""
		if c.PrimaryKey {
			key = "PRI"
		}
		rows = append(rows, []string{c.Field, c.Type, null, key, c.DefaultValue})
	}
	r.table([]string{"Field", "Type", "Null", "Key", "Default"}, rows)
}

func (r *Renderer) renderIndexes(s *service.ShowIndexesResult) {
	rows := [][]string{}
	for _, idx := range s.Indexes {
		keyName := idx.Column
		if idx.IsPrimaryKey {
			keyName = "PRIMARY"
		}
		rows = append(rows, []string{idx.Table, idx.Column, keyName})
	}
	r.table([]string{"Table", "Column", "Key Name"}, rows)
}

func (r *Renderer) renderQuery(q *service.QueryResult) {
	total := len(q.Rows)
	if total == 0 {
		fmt.Fprintln(r.out, "Empty set")
		return
	}

	shown := total
	if total > r.pageThreshold {
		shown = r.confirmRows(total)
	}

	if shown > 0 {
		header := []string{}
		for _, col := range q.Columns {
			header = append(header, col.Name)
		}

		rows := [][]string{}
		for _, result := range q.Rows[:shown] {
			row := []string{}
			for _, cell := range result.Values {
				row = append(row, FormatValue(cell))
			}
			rows = append(rows, row)
		}
		r.table(header, rows)
	}

	if total == 1 {
		fmt.Fprintln(r.out, "(1 row)")
	} else {
		fmt.Fprintf(r.out, "(%d rows)\n", total)
	}
}

// confirmRows asks how many of total rows to print.
func (r *Renderer) confirmRows(total int) int {
	if r.in == nil {
		return 0
	}

	prompt := fmt.Sprintf("Too many rows (%d), print? [y/N/<num>] (default: N) ", total)
	in, err := r.in.ReadInput(prompt)
	if err != nil {
		logrus.WithError(err).Warn("reading pagination reply")
		return 0
	}
	if in.Kind != InputLine {
		return 0
	}
	return rowsToShow(in.Text, total)
}

// rowsToShow interprets a reply to the pagination prompt: "y" shows every
// row, a positive number k shows min(k, total), anything else nothing.
func rowsToShow(reply string, total int) int {
	reply = strings.TrimSpace(reply)
	if reply == "y" {
		return total
	}

	k, err := strconv.Atoi(reply)
	if err != nil || k <= 0 {
		return 0
	}
	if k > total {
		return total
	}
	return k
}

// table prints rows under header. Headers are an ordered list and may
// repeat.
func (r *Renderer) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.out, "Empty set")
		return
	}

	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}
