// Package examples seeds a small social graph and walks through a set of
// Cypher queries against it, printing every result.
package examples

import (
	"context"
	"fmt"
	"io"

	"cypherlab/internal/graph"
	"cypherlab/ui/console"
)

// Runner is the statement surface the examples need. *graph.Client satisfies it.
type Runner interface {
	Execute(ctx context.Context, query string, params map[string]any) ([]*graph.Record, error)
	ExecuteWrite(ctx context.Context, query string, params map[string]any) ([]*graph.Record, error)
}

// sampleDataQueries build the Person/Company graph the examples query.
var sampleDataQueries = []string{
	// People
	`CREATE (alice:Person {name: 'Alice', age: 30, city: 'New York'})
	 CREATE (bob:Person {name: 'Bob', age: 25, city: 'San Francisco'})
	 CREATE (charlie:Person {name: 'Charlie', age: 35, city: 'Chicago'})
	 CREATE (diana:Person {name: 'Diana', age: 28, city: 'Boston'})`,

	// Companies
	`CREATE (techcorp:Company {name: 'TechCorp', industry: 'Technology'})
	 CREATE (dataflow:Company {name: 'DataFlow', industry: 'Data Analytics'})
	 CREATE (innovate:Company {name: 'Innovate Inc', industry: 'Consulting'})`,

	// Employment
	`MATCH (alice:Person {name: 'Alice'})
	 MATCH (techcorp:Company {name: 'TechCorp'})
	 CREATE (alice)-[:WORKS_FOR {since: 2020, position: 'Software Engineer'}]->(techcorp)`,

	`MATCH (bob:Person {name: 'Bob'})
	 MATCH (dataflow:Company {name: 'DataFlow'})
	 CREATE (bob)-[:WORKS_FOR {since: 2021, position: 'Data Scientist'}]->(dataflow)`,

	`MATCH (charlie:Person {name: 'Charlie'})
	 MATCH (innovate:Company {name: 'Innovate Inc'})
	 CREATE (charlie)-[:WORKS_FOR {since: 2019, position: 'Senior Consultant'}]->(innovate)`,

	// Friendships
	`MATCH (alice:Person {name: 'Alice'})
	 MATCH (bob:Person {name: 'Bob'})
	 CREATE (alice)-[:FRIENDS_WITH {since: 2018}]->(bob)`,

	`MATCH (bob:Person {name: 'Bob'})
	 MATCH (charlie:Person {name: 'Charlie'})
	 CREATE (bob)-[:FRIENDS_WITH {since: 2020}]->(charlie)`,

	`MATCH (alice:Person {name: 'Alice'})
	 MATCH (diana:Person {name: 'Diana'})
	 CREATE (alice)-[:FRIENDS_WITH {since: 2019}]->(diana)`,
}

type example struct {
	name  string
	query string
}

var queryExamples = []example{
	{
		name:  "Find all people",
		query: "MATCH (p:Person) RETURN p.name, p.age, p.city ORDER BY p.name",
	},
	{
		name:  "Find all companies",
		query: "MATCH (c:Company) RETURN c.name, c.industry ORDER BY c.name",
	},
	{
		name: "Find people who work for companies",
		query: `MATCH (p:Person)-[r:WORKS_FOR]->(c:Company)
			RETURN p.name, c.name, r.position, r.since
			ORDER BY p.name`,
	},
	{
		name: "Find friends of Alice",
		query: `MATCH (alice:Person {name: 'Alice'})-[:FRIENDS_WITH]-(friend:Person)
			RETURN friend.name, friend.city
			ORDER BY friend.name`,
	},
	{
		name: "Count relationships by type",
		query: `MATCH ()-[r]->()
			RETURN type(r) as relationship_type, count(r) as count
			ORDER BY count DESC`,
	},
	{
		name: "Find people in the same city",
		query: `MATCH (p1:Person)-[:FRIENDS_WITH]-(p2:Person)
			WHERE p1.city = p2.city
			RETURN p1.name, p2.name, p1.city
			ORDER BY p1.city, p1.name`,
	},
}

var analysisExamples = []example{
	{
		name: "Degree centrality (number of connections)",
		query: `MATCH (n:Person)
			OPTIONAL MATCH (n)-[r]-()
			RETURN n.name, count(r) as degree
			ORDER BY degree DESC`,
	},
	{
		name: "Find the most connected person",
		query: `MATCH (n:Person)
			OPTIONAL MATCH (n)-[r]-()
			WITH n, count(r) as connections
			ORDER BY connections DESC
			LIMIT 1
			RETURN n.name, connections`,
	},
	{
		name: "Find people working in technology companies",
		query: `MATCH (p:Person)-[:WORKS_FOR]->(c:Company)
			WHERE c.industry = 'Technology'
			RETURN p.name, c.name, c.industry
			ORDER BY p.name`,
	},
	{
		name: "Find mutual friends",
		query: `MATCH (p1:Person)-[:FRIENDS_WITH]-(mutual:Person)-[:FRIENDS_WITH]-(p2:Person)
			WHERE p1 <> p2
			RETURN p1.name, p2.name, collect(mutual.name) as mutual_friends
			ORDER BY size(collect(mutual.name)) DESC`,
	},
}

// CreateSampleData seeds the sample graph through the write path, one
// statement per transaction. It stops at the first failure.
func CreateSampleData(ctx context.Context, r Runner, w io.Writer) error {
	for i, query := range sampleDataQueries {
		fmt.Fprintf(w, "Executing query %d...\n", i+1)
		if _, err := r.ExecuteWrite(ctx, query, nil); err != nil {
			return fmt.Errorf("create sample data: %w", err)
		}
	}
	fmt.Fprintln(w, "Sample data created successfully!")
	return nil
}

// RunQueryExamples runs the basic query walkthrough. Individual query
// failures are printed and do not abort the run.
func RunQueryExamples(ctx context.Context, r Runner, w io.Writer) {
	runExampleSet(ctx, r, w, queryExamples)
}

// RunAnalysisExamples runs the graph analysis walkthrough.
func RunAnalysisExamples(ctx context.Context, r Runner, w io.Writer) {
	runExampleSet(ctx, r, w, analysisExamples)
}

func runExampleSet(ctx context.Context, r Runner, w io.Writer, set []example) {
	for _, ex := range set {
		console.PrintHeader(w, ex.name)
		records, err := r.Execute(ctx, ex.query, nil)
		if err != nil {
			console.PrintError(w, err)
			continue
		}
		console.PrintRecords(w, records)
	}
}

// RunAll seeds the sample data and runs both walkthroughs.
func RunAll(ctx context.Context, r Runner, w io.Writer) error {
	fmt.Fprintln(w, "Creating sample data...")
	if err := CreateSampleData(ctx, r, w); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRunning query examples...")
	RunQueryExamples(ctx, r, w)

	fmt.Fprintln(w, "\nRunning graph analysis examples...")
	RunAnalysisExamples(ctx, r, w)
	return nil
}
