package sqlclient

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// SilentExecutor runs one statement and reports only whether it worked.
type SilentExecutor interface {
	ExecuteSilent(ctx context.Context, sql string) error
}

// Importer loads CSV rows into a table, one INSERT per row, stopping at
// the first row the server rejects.
type Importer struct {
	exec SilentExecutor
	out  io.Writer
	// Progress rewrites a running row count in place after every row.
	Progress bool
}

func NewImporter(exec SilentExecutor, out io.Writer) *Importer {
	return &Importer{exec: exec, out: out}
}

// ImportFile imports the CSV file at path into database.table.
func (im *Importer) ImportFile(ctx context.Context, path, database, table string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "opening csv file")
	}
	defer f.Close()

	return im.Import(ctx, f, database, table)
}

// Import selects database and inserts every CSV record of r into table. It
// returns the number of rows inserted. A failing row is reported as
// *ImportError and no later row is sent.
func (im *Importer) Import(ctx context.Context, r io.Reader, database, table string) (int, error) {
	if database == "" || table == "" {
		return 0, ErrMissingImportTarget
	}

	use := fmt.Sprintf("USE %s;", database)
	if err := im.exec.ExecuteSilent(ctx, use); err != nil {
		return 0, &ImportError{Row: 0, Statement: use, Err: err}
	}

	log := logrus.WithFields(logrus.Fields{"database": database, "table": table})
	log.Debug("importing rows")

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	processed := 0
	defer func() {
		if im.Progress && processed > 0 {
			fmt.Fprint(im.out, "\r")
		}
		fmt.Fprintf(im.out, "Processed %d rows\n", processed)
	}()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return processed, &ImportError{Row: processed + 1, Err: errors.Wrap(err, "reading csv")}
		}

		stmt := InsertStatement(table, record)
		if err := im.exec.ExecuteSilent(ctx, stmt); err != nil {
			log.WithField("row", processed+1).Debug("row rejected")
			return processed, &ImportError{Row: processed + 1, Statement: stmt, Err: err}
		}

		processed++
		if im.Progress {
			fmt.Fprintf(im.out, "\rProcessed %d rows", processed)
		}
	}

	log.WithField("rows", processed).Debug("import finished")
	return processed, nil
}

// InsertStatement builds the INSERT for one CSV record.
func InsertStatement(table string, fields []string) string {
	literals := make([]string, len(fields))
	for i, f := range fields {
		literals[i] = Literal(f)
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s);", table, strings.Join(literals, ","))
}

// Literal turns a CSV field into a SQL literal. Numbers are kept as they
// are and everything else is single quoted. Embedded quotes are not
// escaped.
func Literal(field string) string {
	if isNumeric(field) {
		return field
	}
	return "'" + field + "'"
}

// isNumeric reports whether field reads as a decimal floating point number,
// ignoring surrounding space. Underscores may separate digits; hexadecimal
// forms are not numbers. inf and nan spellings are.
func isNumeric(field string) bool {
	s := strings.TrimSpace(field)
	unsigned := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return false
	}

	if strings.Contains(s, "_") {
		for i := 0; i < len(s); i++ {
			if s[i] != '_' {
				continue
			}
			if i == 0 || i == len(s)-1 || !isDecimalDigit(s[i-1]) || !isDecimalDigit(s[i+1]) {
				return false
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
