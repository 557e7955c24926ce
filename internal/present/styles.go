package present

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	// Header styling
	Title     lipgloss.Style
	Iteration lipgloss.Style

	// Finding severity
	SeverityCritical lipgloss.Style
	SeverityHigh     lipgloss.Style
	SeverityMedium   lipgloss.Style
	SeverityLow      lipgloss.Style

	// Suggestion styling
	SuggestionTitle lipgloss.Style
	SuggestionMeta  lipgloss.Style
	Rationale       lipgloss.Style
	Example         lipgloss.Style

	// Decision outcomes
	Accepted lipgloss.Style
	Rejected lipgloss.Style
	Modified lipgloss.Style

	// Metrics and summaries
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	Converged   lipgloss.Style
	Warning     lipgloss.Style

	Notice lipgloss.Style
}

// DefaultStyles returns the default terminal styles
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Iteration: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		SuggestionTitle: lipgloss.NewStyle().Bold(true),
		SuggestionMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Rationale:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
		Example:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Accepted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Modified: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		MetricLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MetricValue: lipgloss.NewStyle().Bold(true),
		Converged:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),

		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// Icons used in terminal output
const (
	IconSuggestion = "●"
	IconAccepted   = "✓"
	IconRejected   = "✗"
	IconConverged  = "✓"
	IconWarning    = "⚠"
)
