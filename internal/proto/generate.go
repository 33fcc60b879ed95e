// Package proto holds the protobuf contract of the task tracker service and
// the Go code generated from it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative tasktracker.proto
