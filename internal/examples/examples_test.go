package examples

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"cypherlab/internal/graph"
)

// fakeRunner records every statement it is handed.
type fakeRunner struct {
	reads    []string
	writes   []string
	records  []*graph.Record
	readErr  error
	writeErr error
}

func (f *fakeRunner) Execute(ctx context.Context, query string, params map[string]any) ([]*graph.Record, error) {
	f.reads = append(f.reads, query)
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.records, nil
}

func (f *fakeRunner) ExecuteWrite(ctx context.Context, query string, params map[string]any) ([]*graph.Record, error) {
	f.writes = append(f.writes, query)
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return f.records, nil
}

func TestCreateSampleData(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer

	if err := CreateSampleData(context.Background(), runner, &buf); err != nil {
		t.Fatalf("CreateSampleData failed: %v", err)
	}

	if len(runner.writes) != len(sampleDataQueries) {
		t.Errorf("Expected %d write statements, got %d", len(sampleDataQueries), len(runner.writes))
	}
	if len(runner.reads) != 0 {
		t.Errorf("Seeding must only use the write path, reads = %d", len(runner.reads))
	}
	if !strings.Contains(buf.String(), "Sample data created successfully!") {
		t.Errorf("Missing completion message in output: %s", buf.String())
	}
}

func TestCreateSampleDataStopsOnError(t *testing.T) {
	runner := &fakeRunner{writeErr: errors.New("server gone")}
	var buf bytes.Buffer

	err := CreateSampleData(context.Background(), runner, &buf)
	if err == nil {
		t.Fatal("Expected error when a write fails")
	}
	if len(runner.writes) != 1 {
		t.Errorf("Expected seeding to stop at first failure, writes = %d", len(runner.writes))
	}
}

func TestRunQueryExamples(t *testing.T) {
	runner := &fakeRunner{records: []*graph.Record{
		graph.NewRecord([]string{"p.name"}, []any{"Alice"}),
	}}
	var buf bytes.Buffer

	RunQueryExamples(context.Background(), runner, &buf)

	if len(runner.reads) != len(queryExamples) {
		t.Errorf("Expected %d read statements, got %d", len(queryExamples), len(runner.reads))
	}
	out := buf.String()
	for _, ex := range queryExamples {
		if !strings.Contains(out, ex.name) {
			t.Errorf("Missing example header %q in output", ex.name)
		}
	}
	if !strings.Contains(out, "Alice") {
		t.Errorf("Missing record output: %s", out)
	}
}

func TestRunQueryExamplesContinuesOnError(t *testing.T) {
	runner := &fakeRunner{readErr: errors.New("syntax error")}
	var buf bytes.Buffer

	RunQueryExamples(context.Background(), runner, &buf)

	// Every example still runs; failures are printed, not fatal.
	if len(runner.reads) != len(queryExamples) {
		t.Errorf("Expected all %d examples attempted, got %d", len(queryExamples), len(runner.reads))
	}
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("Expected error lines in output: %s", buf.String())
	}
}

func TestRunAnalysisExamples(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer

	RunAnalysisExamples(context.Background(), runner, &buf)

	if len(runner.reads) != len(analysisExamples) {
		t.Errorf("Expected %d analysis queries, got %d", len(analysisExamples), len(runner.reads))
	}
	if !strings.Contains(buf.String(), "No results returned.") {
		t.Errorf("Expected empty-result notes: %s", buf.String())
	}
}

func TestRunAll(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer

	if err := RunAll(context.Background(), runner, &buf); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if len(runner.writes) != len(sampleDataQueries) {
		t.Errorf("Expected %d writes, got %d", len(sampleDataQueries), len(runner.writes))
	}
	wantReads := len(queryExamples) + len(analysisExamples)
	if len(runner.reads) != wantReads {
		t.Errorf("Expected %d reads, got %d", wantReads, len(runner.reads))
	}
}
