// Package tui implements the interactive Cypher shell.
package tui

import (
	"context"
	"fmt"
	"strings"

	"cypherlab/internal/graph"
	"cypherlab/ui/console"
	"cypherlab/ui/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollback caps how many rendered lines the shell retains.
const scrollback = 500

// Runner executes the statements typed at the prompt. Statements go through
// the write path so CREATE and DELETE typed in the shell take effect.
type Runner interface {
	ExecuteWrite(ctx context.Context, query string, params map[string]any) ([]*graph.Record, error)
}

// resultMsg carries the outcome of one executed statement.
type resultMsg struct {
	query   string
	records []*graph.Record
	err     error
}

// ShellModel is the Bubble Tea model for the interactive shell.
type ShellModel struct {
	runner   Runner
	input    textinput.Model
	lines    []string
	width    int
	height   int
	busy     bool
	quitting bool
}

// NewShell builds a shell bound to the given runner.
func NewShell(runner Runner) ShellModel {
	ti := textinput.New()
	ti.Prompt = "neo4j> "
	ti.PromptStyle = styles.PromptStyle
	ti.Placeholder = "MATCH (n) RETURN n LIMIT 5"
	ti.Focus()

	return ShellModel{
		runner: runner,
		input:  ti,
		lines: []string{
			styles.HelpStyle.Render("Enter Cypher queries (type 'quit' to exit)"),
			styles.HelpStyle.Render("Type 'help' for some example queries"),
		},
	}
}

func (m *ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

func runQueryCmd(r Runner, query string) tea.Cmd {
	return func() tea.Msg {
		records, err := r.ExecuteWrite(context.Background(), query, nil)
		return resultMsg{query: query, records: records, err: err}
	}
}

func (m *ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.busy = false
		m.appendResult(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ShellModel) handleSubmit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	query := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch strings.ToLower(query) {
	case "":
		return m, nil
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit
	case "help":
		m.appendLines(helpLines())
		return m, nil
	}

	m.busy = true
	m.appendLines([]string{styles.QueryStyle.Render("neo4j> " + query)})
	return m, runQueryCmd(m.runner, query)
}

func (m *ShellModel) appendResult(msg resultMsg) {
	if msg.err != nil {
		m.appendLines([]string{styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", msg.err))})
		return
	}
	if len(msg.records) == 0 {
		m.appendLines([]string{"No results returned."})
		return
	}

	lines := make([]string, 0, len(msg.records)+1)
	lines = append(lines, fmt.Sprintf("Results (%d records):", len(msg.records)))
	for i, rec := range msg.records {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, console.FormatRecord(rec)))
	}
	m.appendLines(lines)
}

func (m *ShellModel) appendLines(lines []string) {
	m.lines = append(m.lines, lines...)
	if len(m.lines) > scrollback {
		m.lines = m.lines[len(m.lines)-scrollback:]
	}
}

func (m *ShellModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Neo4j Interactive Mode"))
	b.WriteString("\n")

	visible := m.lines
	if m.height > 4 && len(visible) > m.height-4 {
		visible = visible[len(visible)-(m.height-4):]
	}
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("help: example queries · quit: exit"))
	return b.String()
}

func helpLines() []string {
	return []string{
		styles.HelpStyle.Render("Available commands:"),
		styles.HelpStyle.Render("  quit, exit, q  - Exit interactive mode"),
		styles.HelpStyle.Render("  help           - Show this help message"),
		styles.HelpStyle.Render("Example queries:"),
		styles.HelpStyle.Render("  MATCH (n) RETURN n LIMIT 5"),
		styles.HelpStyle.Render("  MATCH (p:Person) RETURN p.name, p.age"),
		styles.HelpStyle.Render("  MATCH ()-[r]->() RETURN type(r), count(r)"),
		styles.HelpStyle.Render("  MATCH (n) RETURN labels(n), count(n)"),
	}
}

// Start runs the shell until the user quits.
func Start(runner Runner) error {
	m := NewShell(runner)
	p := tea.NewProgram(&m)
	_, err := p.Run()
	return err
}
