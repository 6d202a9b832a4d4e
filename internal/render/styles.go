// ABOUTME: Shared lipgloss styles for CLI output
// ABOUTME: Prompt, error, and dimmed-metadata styling in one place

package render

import "github.com/charmbracelet/lipgloss"

var (
	// PromptStyle marks the user input prompt.
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// ReplyStyle marks the assistant reply prefix.
	ReplyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	// ErrorStyle marks failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// FaintStyle dims secondary metadata like token counts.
	FaintStyle = lipgloss.NewStyle().Faint(true)
)
