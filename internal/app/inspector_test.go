package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quantmind-br/mginspect/internal/cache"
	"github.com/quantmind-br/mginspect/internal/config"
	"github.com/quantmind-br/mginspect/internal/domain"
	"github.com/quantmind-br/mginspect/internal/mocks"
	"github.com/quantmind-br/mginspect/internal/mustgather"
	"github.com/quantmind-br/mginspect/internal/utils"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func buildArchive(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "must-gather.local.42")

	write(t, filepath.Join(root, "version"), "4.14.1\n")
	write(t, filepath.Join(root, "cluster-scoped-resources",
		"config.openshift.io", "clusterversions", "version.yaml"),
		"status:\n  desired:\n    version: 4.14.1\n")
	write(t, nodePath(root, "node1"), nodeManifest("node1"))

	return root
}

func nodePath(root, name string) string {
	return filepath.Join(root, "cluster-scoped-resources", "core", "nodes", name+".yaml")
}

func nodeManifest(name string) string {
	return fmt.Sprintf("metadata:\n  name: %s\nstatus:\n  conditions:\n    - type: Ready\n      status: \"True\"\n", name)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Display.Progress = false
	return cfg
}

func TestNewInspectorRequiresConfig(t *testing.T) {
	_, err := NewInspector(InspectorOptions{})
	assert.Error(t, err)
}

func TestInspectWithoutCache(t *testing.T) {
	insp, err := NewInspector(InspectorOptions{
		CommonOptions: domain.CommonOptions{NoCache: true},
		Config:        testConfig(),
		Logger:        utils.NewNopLogger(),
	})
	require.NoError(t, err)
	defer insp.Close()

	mg, err := insp.Inspect(context.Background(), buildArchive(t))
	require.NoError(t, err)

	assert.Equal(t, "must-gather.local.42", mg.Title)
	assert.Equal(t, "4.14.1", mg.Version)
	assert.Len(t, mg.Nodes, 1)
	assert.False(t, mg.FromCache)
}

func TestInspectCacheRoundTrip(t *testing.T) {
	store, err := cache.NewBadgerCache(cache.Options{InMemory: true})
	require.NoError(t, err)

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  store,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)
	defer insp.Close()

	root := buildArchive(t)
	ctx := context.Background()

	first, err := insp.Inspect(ctx, root)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := insp.Inspect(ctx, root)
	require.NoError(t, err)
	assert.True(t, second.FromCache)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, first.Nodes, second.Nodes)
}

func TestInspectRefreshCacheRebuilds(t *testing.T) {
	store, err := cache.NewBadgerCache(cache.Options{InMemory: true})
	require.NoError(t, err)

	root := buildArchive(t)
	ctx := context.Background()

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  store,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)
	defer insp.Close()

	first, err := insp.Inspect(ctx, root)
	require.NoError(t, err)
	require.Len(t, first.Nodes, 1)

	// A new manifest below the root does not touch the root's mtime, so
	// the cached entry would still be served.
	write(t, nodePath(root, "node2"), nodeManifest("node2"))

	stale, err := insp.Inspect(ctx, root)
	require.NoError(t, err)
	assert.True(t, stale.FromCache)
	assert.Len(t, stale.Nodes, 1)

	refreshed, err := NewInspector(InspectorOptions{
		CommonOptions: domain.CommonOptions{RefreshCache: true},
		Config:        testConfig(),
		Cache:         store,
		Logger:        utils.NewNopLogger(),
	})
	require.NoError(t, err)

	rebuilt, err := refreshed.Inspect(ctx, root)
	require.NoError(t, err)
	assert.False(t, rebuilt.FromCache)
	assert.Len(t, rebuilt.Nodes, 2)
}

func TestInspectRootMtimeChangesKey(t *testing.T) {
	store, err := cache.NewBadgerCache(cache.Options{InMemory: true})
	require.NoError(t, err)

	root := buildArchive(t)
	ctx := context.Background()

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  store,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)
	defer insp.Close()

	_, err = insp.Inspect(ctx, root)
	require.NoError(t, err)

	// Re-extraction in place changes the root directory's mtime.
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(root, later, later))

	rebuilt, err := insp.Inspect(ctx, root)
	require.NoError(t, err)
	assert.False(t, rebuilt.FromCache)
}

func TestInspectPropagatesRootErrors(t *testing.T) {
	insp, err := NewInspector(InspectorOptions{
		CommonOptions: domain.CommonOptions{NoCache: true},
		Config:        testConfig(),
		Logger:        utils.NewNopLogger(),
	})
	require.NoError(t, err)
	defer insp.Close()

	_, err = insp.Inspect(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, mustgather.ErrInputUnreadable)
}

func TestInspectCancelledContext(t *testing.T) {
	insp, err := NewInspector(InspectorOptions{
		CommonOptions: domain.CommonOptions{NoCache: true},
		Config:        testConfig(),
		Logger:        utils.NewNopLogger(),
	})
	require.NoError(t, err)
	defer insp.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = insp.Inspect(ctx, buildArchive(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInspectCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCache(ctrl)

	cached, err := json.Marshal(&mustgather.MustGather{Title: "cached-title", Version: "4.14.1"})
	require.NoError(t, err)
	mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  mock,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)

	mg, err := insp.Inspect(context.Background(), buildArchive(t))
	require.NoError(t, err)

	assert.True(t, mg.FromCache)
	assert.Equal(t, "cached-title", mg.Title)
}

func TestInspectCacheMissStoresSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCache(ctrl)
	cfg := testConfig()

	mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCacheMiss)
	mock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), cfg.Cache.TTL).Return(nil)

	insp, err := NewInspector(InspectorOptions{
		Config: cfg,
		Cache:  mock,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)

	mg, err := insp.Inspect(context.Background(), buildArchive(t))
	require.NoError(t, err)
	assert.False(t, mg.FromCache)
	assert.Equal(t, "must-gather.local.42", mg.Title)
}

func TestInspectCacheFailuresDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCache(ctrl)

	mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk exploded"))
	mock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("still broken"))

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  mock,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)

	mg, err := insp.Inspect(context.Background(), buildArchive(t))
	require.NoError(t, err)
	assert.Equal(t, "4.14.1", mg.Version)
}

func TestInspectCorruptCacheEntryDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCache(ctrl)

	mock.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("{not json"), nil)
	mock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	mock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  mock,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)

	mg, err := insp.Inspect(context.Background(), buildArchive(t))
	require.NoError(t, err)
	assert.False(t, mg.FromCache)
}

func TestCloseClosesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockCache(ctrl)
	mock.EXPECT().Close().Return(nil)

	insp, err := NewInspector(InspectorOptions{
		Config: testConfig(),
		Cache:  mock,
		Logger: utils.NewNopLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, insp.Close())
}
