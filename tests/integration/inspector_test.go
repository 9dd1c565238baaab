package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/mginspect/internal/app"
	"github.com/quantmind-br/mginspect/internal/config"
	"github.com/quantmind-br/mginspect/internal/domain"
	"github.com/quantmind-br/mginspect/internal/mustgather"
	"github.com/quantmind-br/mginspect/internal/output"
	"github.com/quantmind-br/mginspect/tests/testutil"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Cache.Directory = t.TempDir()
	cfg.Output.Directory = t.TempDir()
	cfg.Display.Progress = false
	return cfg
}

func TestIntegration_InspectRenderReport(t *testing.T) {
	archive := testutil.BuildArchive(t, "4.14.1-test", "worker-0", "worker-1")
	cfg := testConfig(t)

	inspector, err := app.NewInspector(app.InspectorOptions{Config: cfg})
	require.NoError(t, err)
	defer inspector.Close()

	mg, err := inspector.Inspect(context.Background(), archive)
	require.NoError(t, err)

	assert.Equal(t, "sample-openshift-release", mg.Title)
	assert.Equal(t, "4.14.1-test", mg.Version)
	require.Len(t, mg.Nodes, 2)
	assert.Equal(t, "worker-0", mg.Nodes[0].Name)
	require.Len(t, mg.ClusterOperators, 1)
	assert.Equal(t, "etcd", mg.ClusterOperators[0].Name)
	require.Len(t, mg.Machines, 1)
	assert.Equal(t, "Running", mg.Machines[0].Phase)

	// JSON rendering round-trips
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, mg, output.FormatJSON))

	var decoded mustgather.MustGather
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, mg.Version, decoded.Version)
	assert.Len(t, decoded.Nodes, 2)

	// Report writing
	writer := output.NewReportWriter(output.ReportOptions{Dir: cfg.Output.Directory})
	path, err := writer.Write(mg)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "---\n"))
	assert.Contains(t, string(content), "| worker-0 |")
	assert.Contains(t, string(content), "| etcd |")
}

func TestIntegration_SecondInspectServedFromCache(t *testing.T) {
	archive := testutil.BuildArchive(t, "4.14.1-test", "worker-0")
	cfg := testConfig(t)

	inspector, err := app.NewInspector(app.InspectorOptions{Config: cfg})
	require.NoError(t, err)
	defer inspector.Close()

	first, err := inspector.Inspect(context.Background(), archive)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := inspector.Inspect(context.Background(), archive)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, first.Nodes, second.Nodes)
}

func TestIntegration_RefreshCacheRebuilds(t *testing.T) {
	archive := testutil.BuildArchive(t, "4.14.1-test", "worker-0")
	cfg := testConfig(t)

	inspector, err := app.NewInspector(app.InspectorOptions{Config: cfg})
	require.NoError(t, err)
	defer inspector.Close()

	_, err = inspector.Inspect(context.Background(), archive)
	require.NoError(t, err)

	refreshing, err := app.NewInspector(app.InspectorOptions{
		CommonOptions: domain.CommonOptions{RefreshCache: true},
		Config:        cfg,
	})
	require.NoError(t, err)
	defer refreshing.Close()

	// The first inspector holds the badger lock; this one degrades to
	// uncached operation and must still rebuild.
	mg, err := refreshing.Inspect(context.Background(), archive)
	require.NoError(t, err)
	assert.False(t, mg.FromCache)
}

func TestIntegration_AmbiguousRootFailsBeforeCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))

	cfg := testConfig(t)
	inspector, err := app.NewInspector(app.InspectorOptions{Config: cfg})
	require.NoError(t, err)
	defer inspector.Close()

	_, err = inspector.Inspect(context.Background(), dir)
	require.ErrorIs(t, err, mustgather.ErrRootNotFound)
}
