package draft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDraft(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeDraft(t, "draft.yaml", `
summary: payment service
confidence: 0.8
requirements:
  - id: req-1
    content: System must process payments
edge_cases:
  - id: ec-1
    description: network timeout during payment
    severity: high
    confidence: 0.9
contradictions: []
completeness_gaps: []
compressed_requirements: []
`)

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "payment service", spec.Summary)
	require.Len(t, spec.Requirements, 1)
	assert.Equal(t, "req-1", spec.Requirements[0].ID)
	require.Len(t, spec.EdgeCases, 1)
	assert.Equal(t, SeverityHigh, spec.EdgeCases[0].Severity)
	assert.False(t, spec.EdgeCases[0].Handled)
}

func TestLoad_JSON(t *testing.T) {
	path := writeDraft(t, "draft.json", `{
		"confidence": 0.7,
		"requirements": [{"content": "System must log all access"}],
		"edge_cases": [],
		"contradictions": [
			{"id": "c-1", "description": "perf vs security", "severity": "critical", "confidence": 0.8}
		],
		"completeness_gaps": [],
		"compressed_requirements": []
	}`)

	spec, err := Load(path)
	require.NoError(t, err)
	require.Len(t, spec.Contradictions, 1)
	assert.Equal(t, SeverityCritical, spec.Contradictions[0].Severity)
	assert.False(t, spec.Contradictions[0].Resolved)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeDraft(t, "draft.toml", "whatever")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported draft format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_RejectsOutOfRangeConfidence(t *testing.T) {
	path := writeDraft(t, "draft.yaml", `
confidence: 1.5
requirements: []
edge_cases: []
contradictions: []
completeness_gaps: []
compressed_requirements: []
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,1]")
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Severity
		shouldError bool
	}{
		{"valid high", "high", SeverityHigh, false},
		{"valid critical", "critical", SeverityCritical, false},
		{"empty defaults to medium", "", SeverityMedium, false},
		{"invalid severity", "extreme", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSeverity(tt.input)
			if tt.shouldError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
