package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Sentinel errors for illegal client state transitions.
var (
	// ErrNotConnected is returned when a query is attempted before Connect
	// or after Close.
	ErrNotConnected = errors.New("graph: not connected, call Connect first")

	// ErrAlreadyConnected is returned when Connect is called on a client
	// that already holds an open link.
	ErrAlreadyConnected = errors.New("graph: already connected")

	// ErrClosed is returned when Connect is called on a closed client.
	// A client must not be reused after Close.
	ErrClosed = errors.New("graph: client is closed")
)

// ConnectivityError indicates the server was unreachable. It is never
// retried automatically; retry policy belongs to the caller.
type ConnectivityError struct {
	URI string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("graph: cannot reach %s: %v", e.URI, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// AuthError indicates the server rejected the configured credentials.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("graph: authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// QueryError indicates the server rejected a statement. The server's
// message passes through verbatim for diagnostics.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("graph: query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// securityCodePrefix covers credential rejections such as
// Neo.ClientError.Security.Unauthorized.
const securityCodePrefix = "Neo.ClientError.Security."

// classifyConnectError separates credential rejections from plain
// reachability failures during connection verification.
func classifyConnectError(uri string, err error) error {
	var ne *db.Neo4jError
	if errors.As(err, &ne) && strings.HasPrefix(ne.Code, securityCodePrefix) {
		return &AuthError{Err: err}
	}
	return &ConnectivityError{URI: uri, Err: err}
}
