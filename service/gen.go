// Package service holds the wire types and gRPC stubs of the SimpleDB query
// service.
package service

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative query.proto
