// Package common contains shared constants and sentinel errors used across
// DeadSwitch components.
package common

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ErrorCodeKey is the ErrorInfo metadata key that carries the numeric
// failure code on gRPC status errors.
const ErrorCodeKey = "code"

// ErrorDomain is the ErrorInfo domain used for DeadSwitch failures.
const ErrorDomain = "deadswitch"
