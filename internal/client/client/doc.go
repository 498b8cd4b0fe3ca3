// Package client talks to the DeadSwitch gRPC API on behalf of the CLI.
//
// GRPCClient owns the connection, attaches the access token to every call
// through an interceptor and refreshes it once when the server reports it
// expired. gRPC statuses are mapped to ErrUnavailable, ErrUnauthorized or a
// *RemoteError carrying the numeric failure code.
package client
