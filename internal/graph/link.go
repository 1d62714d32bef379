package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// boltLink is the narrow send-statement/receive-records surface the client
// needs from the driver. Tests substitute a resource-tracking fake.
type boltLink interface {
	verify(ctx context.Context) error
	read(ctx context.Context, database, query string, params map[string]any) ([]*Record, error)
	write(ctx context.Context, database, query string, params map[string]any) ([]*Record, error)
	close(ctx context.Context) error
}

// dialFunc opens a pooled link for the given configuration.
type dialFunc func(cfg Config) (boltLink, error)

// neo4jLink wraps the official driver's pooled connection.
type neo4jLink struct {
	driver neo4j.DriverWithContext
}

func dialNeo4j(cfg Config) (boltLink, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, err
	}
	return &neo4jLink{driver: driver}, nil
}

func (l *neo4jLink) verify(ctx context.Context) error {
	return l.driver.VerifyConnectivity(ctx)
}

// read runs the statement in a managed read transaction bound to database.
func (l *neo4jLink) read(ctx context.Context, database, query string, params map[string]any) ([]*Record, error) {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return collectRecords(ctx, tx, query, params)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*Record), nil
}

// write runs the statement in a managed write transaction: committed only
// when the work completes without error, rolled back otherwise.
func (l *neo4jLink) write(ctx context.Context, database, query string, params map[string]any) ([]*Record, error) {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return collectRecords(ctx, tx, query, params)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*Record), nil
}

func (l *neo4jLink) close(ctx context.Context) error {
	return l.driver.Close(ctx)
}

func collectRecords(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) ([]*Record, error) {
	res, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}

	raw, err := res.Collect(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(raw))
	for _, rec := range raw {
		records = append(records, NewRecord(rec.Keys, rec.Values))
	}
	return records, nil
}
