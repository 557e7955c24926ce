package finalspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export format for a finalized specification.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ErrUnsupportedFormat is returned for export formats outside the
// supported set.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat converts a string to Format with validation.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatMarkdown, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Export renders the finalized specification in the requested format.
// Nothing is written on an unsupported format.
func (s *Spec) Export(format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal finalized spec: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("marshal finalized spec: %w", err)
		}
		return string(data), nil
	case FormatMarkdown:
		return s.toMarkdown(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func (s *Spec) toMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Finalized Specification\n\n")
	fmt.Fprintf(&b, "**Session ID:** %s\n", s.SessionID)
	fmt.Fprintf(&b, "**Finalized:** %s\n", s.ApprovalTimestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Confidence Score:** %.1f%%\n", s.ConfidenceScore*100)
	fmt.Fprintf(&b, "**User Acceptance Rate:** %.1f%%\n", s.UserAcceptanceRate*100)

	fmt.Fprintf(&b, "\n## Requirements (%d)\n\n", len(s.Requirements))
	for i, req := range s.Requirements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, req.Content)
	}

	fmt.Fprintf(&b, "\n## Resolved Edge Cases (%d)\n\n", len(s.ResolvedEdgeCases))
	for i, ec := range s.ResolvedEdgeCases {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, ec.Description)
		if ec.Handling != "" {
			fmt.Fprintf(&b, "   - *Handling:* %s\n", ec.Handling)
		}
	}

	if len(s.ResolvedContradictions) > 0 {
		fmt.Fprintf(&b, "\n## Resolved Contradictions (%d)\n\n", len(s.ResolvedContradictions))
		for i, c := range s.ResolvedContradictions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c.Description)
			if c.Resolution != "" {
				fmt.Fprintf(&b, "   - *Resolution:* %s\n", c.Resolution)
			}
		}
	}

	readiness := s.ExecutionReadiness()
	fmt.Fprintf(&b, "\n## Execution Readiness\n\n")
	if readiness.Ready {
		fmt.Fprintf(&b, "**Ready for Execution:** Yes\n")
	} else {
		fmt.Fprintf(&b, "**Ready for Execution:** No\n")
	}
	fmt.Fprintf(&b, "**Readiness Score:** %.1f%%\n", readiness.Score*100)

	if len(readiness.Blockers) > 0 {
		fmt.Fprintf(&b, "\n**Blockers:**\n")
		for _, blocker := range readiness.Blockers {
			fmt.Fprintf(&b, "- %s\n", blocker)
		}
	}
	if len(readiness.Recommendations) > 0 {
		fmt.Fprintf(&b, "\n**Recommendations:**\n")
		for _, rec := range readiness.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}
