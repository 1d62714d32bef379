package graph

import "context"

// Manager provides high-level maintenance operations. Each operation opens
// a fresh scoped connection, since a Client cannot be reused after Close.
type Manager struct {
	cfg  Config
	dial dialFunc
}

// NewManager creates a manager for the given configuration.
func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, dial: dialNeo4j}
}

func (m *Manager) newClient() *Client {
	return &Client{cfg: m.cfg, dial: m.dial}
}

// TestConnection reports whether the server answers a trivial query.
func (m *Manager) TestConnection(ctx context.Context) bool {
	ok := false
	err := m.newClient().WithConnection(ctx, func(c *Client) error {
		records, err := c.Execute(ctx, "RETURN 1 AS test", nil)
		if err != nil {
			return err
		}
		if len(records) == 1 {
			if v, found := records[0].Get("test"); found {
				n, isInt := v.(int64)
				ok = isInt && n == 1
			}
		}
		return nil
	})
	return err == nil && ok
}

// DatabaseInfo returns the server's name, versions and edition as reported
// by dbms.components. The map is empty when the server returns nothing.
func (m *Manager) DatabaseInfo(ctx context.Context) (map[string]any, error) {
	info := map[string]any{}
	err := m.newClient().WithConnection(ctx, func(c *Client) error {
		records, err := c.Execute(ctx,
			"CALL dbms.components() YIELD name, versions, edition", nil)
		if err != nil {
			return err
		}
		if len(records) > 0 {
			info = records[0].AsMap()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Clear deletes every node and relationship in the configured database.
func (m *Manager) Clear(ctx context.Context) error {
	return m.newClient().WithConnection(ctx, func(c *Client) error {
		_, err := c.ExecuteWrite(ctx, "MATCH (n) DETACH DELETE n", nil)
		return err
	})
}
