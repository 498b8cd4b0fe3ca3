// Package proto holds the DeadSwitch gRPC contract generated from
// deadswitch.proto.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/deadswitch.proto
