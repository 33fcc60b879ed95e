// Package common contains shared constants and sentinel errors used across
// task tracker components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DateLayout is the wire and CLI format of calendar dates (due dates).
const DateLayout = "2006-01-02"
