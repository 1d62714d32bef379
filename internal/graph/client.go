// Package graph manages a pooled connection to a Neo4j server and runs
// Cypher statements through it with transactional guarantees.
package graph

import (
	"context"
	"time"
)

// verifyTimeout bounds the connectivity round-trip on Connect.
const verifyTimeout = 5 * time.Second

type connState int

const (
	stateDisconnected connState = iota
	stateConnected
	stateClosed
)

// Client owns a single pooled link to a Neo4j server. Its lifecycle is
// strictly Disconnected -> Connected -> Closed; a closed client is not
// reusable. Client is not safe for concurrent use: serialize access or
// give each caller its own instance (the pooled link underneath multiplexes
// physical connections on its own).
type Client struct {
	cfg   Config
	dial  dialFunc
	link  boltLink
	state connState
}

// NewClient creates a disconnected client for the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, dial: dialNeo4j}
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Connect opens the pooled link and verifies reachability and credentials
// with a lightweight round-trip. It returns *ConnectivityError when the
// server is unreachable and *AuthError when credentials are rejected.
// Connecting an already-connected client fails with ErrAlreadyConnected;
// connecting a closed client fails with ErrClosed.
func (c *Client) Connect(ctx context.Context) error {
	switch c.state {
	case stateConnected:
		return ErrAlreadyConnected
	case stateClosed:
		return ErrClosed
	}

	link, err := c.dial(c.cfg)
	if err != nil {
		return &ConnectivityError{URI: c.cfg.URI, Err: err}
	}

	vctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()
	if err := link.verify(vctx); err != nil {
		// Drop the half-open link so a failed connect never leaks it.
		_ = link.close(ctx)
		return classifyConnectError(c.cfg.URI, err)
	}

	c.link = link
	c.state = stateConnected
	return nil
}

// Close releases the pooled link. It is idempotent: closing a closed or
// never-opened client is a no-op. The client transitions to Closed either way.
func (c *Client) Close(ctx context.Context) error {
	if c.state != stateConnected {
		c.state = stateClosed
		return nil
	}
	link := c.link
	c.link = nil
	c.state = stateClosed
	return link.close(ctx)
}

// WithConnection runs fn against a connected client, guaranteeing Close on
// every exit path. fn's error is returned after the link is released.
func (c *Client) WithConnection(ctx context.Context, fn func(*Client) error) error {
	if err := c.Connect(ctx); err != nil {
		return err
	}
	defer c.Close(ctx)
	return fn(c)
}

// Execute runs a read statement with named parameters in a session bound to
// the configured database and returns the materialized records. An empty
// result is an empty slice, not nil. Fails fast with ErrNotConnected when
// no link is open.
func (c *Client) Execute(ctx context.Context, query string, params map[string]any) ([]*Record, error) {
	if c.state != stateConnected {
		return nil, ErrNotConnected
	}
	if params == nil {
		params = map[string]any{}
	}
	records, err := c.link.read(ctx, c.cfg.Database, query, params)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	if records == nil {
		records = []*Record{}
	}
	return records, nil
}

// ExecuteWrite runs a write statement inside an explicit transaction that
// commits only after the statement completes; any failure leaves the
// transaction rolled back, so partial writes are never visible. This is the
// only path that may mutate server-side state.
func (c *Client) ExecuteWrite(ctx context.Context, query string, params map[string]any) ([]*Record, error) {
	if c.state != stateConnected {
		return nil, ErrNotConnected
	}
	if params == nil {
		params = map[string]any{}
	}
	records, err := c.link.write(ctx, c.cfg.Database, query, params)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	if records == nil {
		records = []*Record{}
	}
	return records, nil
}
