package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/mginspect/internal/domain"
	"github.com/quantmind-br/mginspect/internal/mustgather"
	"github.com/quantmind-br/mginspect/internal/resources"
)

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func sampleSummary() *mustgather.MustGather {
	return &mustgather.MustGather{
		Root:    "/data/must-gather.local.123",
		Title:   "must-gather.local.123",
		Version: "4.14.1",
		Nodes: []resources.Node{
			{Name: "master-0", Version: "v1.28.3", Ready: "True", Roles: []string{"control-plane", "master"}},
			{Name: "worker-0", Version: "v1.28.3", Ready: "False", Roles: []string{"worker"}},
		},
		ClusterOperators: []resources.ClusterOperator{
			{Name: "etcd", Version: "4.14.1", Available: "True", Progressing: "False", Degraded: "False"},
		},
		Machines: []resources.Machine{
			{Name: "machine1", Phase: "Running", Role: "worker"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"YAML", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestRenderText(t *testing.T) {
	plainColors(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleSummary(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "must-gather.local.123")
	assert.Contains(t, out, "4.14.1")
	assert.Contains(t, out, "Nodes (2)")
	assert.Contains(t, out, "master-0")
	assert.Contains(t, out, "control-plane,master")
	assert.Contains(t, out, "Cluster Operators (1)")
	assert.Contains(t, out, "etcd")
	assert.Contains(t, out, "Machines (1)")
	assert.Contains(t, out, "machine1")
	assert.NotContains(t, out, "could not be read")
	assert.NotContains(t, out, "cache")
}

func TestRenderTextSkippedAndCache(t *testing.T) {
	plainColors(t)

	mg := sampleSummary()
	mg.Skipped = 3
	mg.FromCache = true

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mg, FormatText))

	out := buf.String()
	assert.Contains(t, out, "3 manifest(s) could not be read")
	assert.Contains(t, out, "cache")
}

func TestRenderTextEmptyInventories(t *testing.T) {
	plainColors(t)

	mg := &mustgather.MustGather{Title: "empty", Version: "Unknown"}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mg, FormatText))

	out := buf.String()
	assert.Contains(t, out, "Nodes (0)")
	assert.Contains(t, out, "Cluster Operators (0)")
	assert.Contains(t, out, "Machines (0)")
}

func TestRenderJSONRoundTrip(t *testing.T) {
	mg := sampleSummary()
	mg.Skipped = 1

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mg, FormatJSON))

	var decoded mustgather.MustGather
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, mg.Title, decoded.Title)
	assert.Equal(t, mg.Version, decoded.Version)
	assert.Equal(t, mg.Nodes, decoded.Nodes)
	assert.Equal(t, mg.ClusterOperators, decoded.ClusterOperators)
	assert.Equal(t, mg.Machines, decoded.Machines)
	assert.Equal(t, mg.Skipped, decoded.Skipped)
}

func TestRenderYAMLRoundTrip(t *testing.T) {
	mg := sampleSummary()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mg, FormatYAML))

	var decoded mustgather.MustGather
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, mg.Title, decoded.Title)
	assert.Equal(t, mg.Version, decoded.Version)
	assert.Len(t, decoded.Nodes, 2)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleSummary(), Format("csv"))
	assert.Error(t, err)
}
