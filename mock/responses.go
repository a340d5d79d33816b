package mock

import (
	"strconv"

	"github.com/eatonphil/sqlclient/service"
)

// Batch wraps responses with the given server time in microseconds.
func Batch(elapse int64, responses ...*service.ExecutionResponse) *service.ExecutionBatchResponse {
	return &service.ExecutionBatchResponse{
		Responses: responses,
		Stats:     &service.ExecutionStats{Elapse: elapse},
	}
}

func Result(db string, res *service.ExecutionResult) *service.ExecutionResponse {
	return &service.ExecutionResponse{
		Response:  &service.ExecutionResponse_Result{Result: res},
		CurrentDb: db,
	}
}

func Error(db string, typ service.ExecutionError_Type, msg string) *service.ExecutionResponse {
	return &service.ExecutionResponse{
		Response: &service.ExecutionResponse_Error{
			Error: &service.ExecutionError{Type: typ, Message: msg},
		},
		CurrentDb: db,
	}
}

func Plain(db, msg string, affectedRows int32) *service.ExecutionResponse {
	return Result(db, &service.ExecutionResult{Result: &service.ExecutionResult_Plain{
		Plain: &service.PlainResult{Msg: msg, AffectedRows: affectedRows},
	}})
}

func Databases(db string, names ...string) *service.ExecutionResponse {
	return Result(db, &service.ExecutionResult{Result: &service.ExecutionResult_ShowDatabases{
		ShowDatabases: &service.ShowDatabasesResult{Databases: names},
	}})
}

func Tables(db string, names ...string) *service.ExecutionResponse {
	return Result(db, &service.ExecutionResult{Result: &service.ExecutionResult_ShowTable{
		ShowTable: &service.ShowTableResult{Tables: names},
	}})
}

func Describe(db string, columns ...*service.ColumnDescription) *service.ExecutionResponse {
	return Result(db, &service.ExecutionResult{Result: &service.ExecutionResult_DescribeTable{
		DescribeTable: &service.DescribeTableResult{Columns: columns},
	}})
}

func Indexes(db string, indexes ...*service.IndexDescription) *service.ExecutionResponse {
	return Result(db, &service.ExecutionResult{Result: &service.ExecutionResult_ShowIndexes{
		ShowIndexes: &service.ShowIndexesResult{Indexes: indexes},
	}})
}

// Query builds a result of n rows over the columns (id, name, score) where
// row i is (i, "name-i", i/2).
func Query(db string, n int) *service.ExecutionResponse {
	q := &service.QueryResult{
		Columns: []*service.Column{{Name: "id"}, {Name: "name"}, {Name: "score"}},
	}
	for i := 0; i < n; i++ {
		q.Rows = append(q.Rows, &service.Row{Values: []*service.Value{
			{Value: &service.Value_IntValue{IntValue: int64(i)}},
			{Value: &service.Value_VarcharValue{VarcharValue: "name-" + strconv.Itoa(i)}},
			{Value: &service.Value_FloatValue{FloatValue: float64(i) / 2}},
		}})
	}
	return Result(db, &service.ExecutionResult{Result: &service.ExecutionResult_Query{Query: q}})
}
