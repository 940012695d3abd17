// Package api holds the Messagely wire contract: the protobuf messages and
// gRPC service generated from messagely.proto.
package api

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/api/messagely.proto

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	Messagely_Register_FullMethodName:     true,
	Messagely_Login_FullMethodName:        true,
	Messagely_RefreshToken_FullMethodName: true,
	Messagely_Ping_FullMethodName:         true,
}
