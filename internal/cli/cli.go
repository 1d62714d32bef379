// Package cli wires the cypherlab commands: test, examples, interactive, clear.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cypherlab/internal/examples"
	"cypherlab/internal/graph"
	"cypherlab/ui/console"
	"cypherlab/ui/tui"

	"github.com/spf13/cobra"
)

var (
	flagURI      string
	flagUsername string
	flagPassword string
	flagDatabase string

	rootCmd = &cobra.Command{
		Use:   "cypherlab",
		Short: "Learn Cypher against a running Neo4j server",
		Long: `cypherlab connects to a Neo4j server, walks through example Cypher
queries over a small social graph, and offers an interactive shell for
experimenting with your own queries.`,
		SilenceUsage: true,
	}

	testCmd = &cobra.Command{
		Use:   "test",
		Short: "Verify connectivity and print server info",
		RunE:  runTest,
	}

	examplesCmd = &cobra.Command{
		Use:   "examples",
		Short: "Create sample data and run the example queries",
		RunE:  runExamples,
	}

	interactiveCmd = &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive Cypher shell",
		RunE:  runInteractive,
	}

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Delete all data from the database",
		RunE:  runClear,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagURI, "uri", "", "Neo4j URI (default: "+graph.DefaultURI+")")
	pf.StringVar(&flagUsername, "username", "", "Neo4j username (default: "+graph.DefaultUsername+")")
	pf.StringVar(&flagPassword, "password", "", "Neo4j password")
	pf.StringVar(&flagDatabase, "database", "", "Neo4j database name (default: "+graph.DefaultDatabase+")")

	rootCmd.AddCommand(testCmd, examplesCmd, interactiveCmd, clearCmd)
}

// Execute runs the CLI, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers explicit flags over environment variables over defaults.
func resolveConfig() (graph.Config, error) {
	cfg := graph.LoadConfig()
	if flagURI != "" {
		cfg = cfg.WithURI(flagURI)
	}
	if flagUsername != "" {
		cfg = cfg.WithUsername(flagUsername)
	}
	if flagPassword != "" {
		cfg = cfg.WithPassword(flagPassword)
	}
	if flagDatabase != "" {
		cfg = cfg.WithDatabase(flagDatabase)
	}
	if err := cfg.Validate(); err != nil {
		return graph.Config{}, err
	}
	return cfg, nil
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	mgr := graph.NewManager(cfg)
	if !mgr.TestConnection(ctx) {
		return fmt.Errorf("connection failed for %s", cfg)
	}
	console.PrintSuccess(out, "Connection successful!")

	info, err := mgr.DatabaseInfo(ctx)
	if err != nil {
		console.PrintWarning(out, fmt.Sprintf("could not read database info: %v", err))
		return nil
	}
	if name, ok := info["name"]; ok {
		fmt.Fprintf(out, "Database: %v\n", name)
	}
	if versions, ok := info["versions"].([]any); ok && len(versions) > 0 {
		fmt.Fprintf(out, "Version: %v\n", versions[0])
	}
	if edition, ok := info["edition"]; ok {
		fmt.Fprintf(out, "Edition: %v\n", edition)
	}
	return nil
}

func runExamples(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client := graph.NewClient(cfg)
	return client.WithConnection(ctx, func(c *graph.Client) error {
		return examples.RunAll(ctx, c, cmd.OutOrStdout())
	})
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client := graph.NewClient(cfg)
	return client.WithConnection(cmd.Context(), func(c *graph.Client) error {
		return tui.Start(c)
	})
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	mgr := graph.NewManager(cfg)
	if !mgr.TestConnection(ctx) {
		return fmt.Errorf("cannot connect to database at %s", cfg.URI)
	}

	fmt.Fprint(out, "Are you sure you want to clear all data? (yes/no): ")
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	if err := mgr.Clear(ctx); err != nil {
		return err
	}
	console.PrintSuccess(out, "Database cleared!")
	return nil
}
