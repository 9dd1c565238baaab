package mustgather

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quantmind-br/mginspect/internal/manifest"
	"github.com/quantmind-br/mginspect/internal/resources"
	"github.com/quantmind-br/mginspect/internal/utils"
)

// VersionUnknown is reported when the cluster version cannot be
// determined from the archive.
const VersionUnknown = "Unknown"

// References for the manifests and collections a summary draws on.
var (
	clusterVersionRef   = Ref{Name: "version", Group: "config.openshift.io", Kind: "clusterversions"}
	nodesRef            = Ref{Group: "core", Kind: "nodes"}
	clusterOperatorsRef = Ref{Group: "config.openshift.io", Kind: "clusteroperators"}
	machinesRef         = Ref{Namespace: "openshift-machine-api", Group: "machine.openshift.io", Kind: "machines"}
)

// Loader reads a manifest file into a document.
type Loader interface {
	Load(path string) (*manifest.Document, error)
}

// Options configures summary building. The zero value uses the default
// manifest loader, discards logs, and shows no progress.
type Options struct {
	Loader   Loader
	Logger   *utils.Logger
	Progress bool
}

// MustGather is the interpreted summary of one archive.
type MustGather struct {
	Root             string                      `json:"root" yaml:"root"`
	Title            string                      `json:"title" yaml:"title"`
	Version          string                      `json:"version" yaml:"version"`
	Nodes            []resources.Node            `json:"nodes" yaml:"nodes"`
	ClusterOperators []resources.ClusterOperator `json:"cluster_operators" yaml:"cluster_operators"`
	Machines         []resources.Machine         `json:"machines" yaml:"machines"`

	// Skipped counts manifests that failed to load during collection
	// scans. The summary is complete apart from those entries.
	Skipped int `json:"skipped" yaml:"skipped"`

	// FromCache marks summaries served from the cache rather than built
	// from the archive.
	FromCache bool `json:"from_cache,omitempty" yaml:"from_cache,omitempty"`
}

// New builds the summary of the archive at or below path.
//
// Root discovery failures (ErrRootNotFound, ErrInputUnreadable) abort
// the build. Everything after that is best-effort: an unreadable cluster
// version manifest yields VersionUnknown, unloadable inventory manifests
// are skipped and tallied in Skipped, and a missing collection directory
// yields an empty inventory.
func New(path string, opts Options) (*MustGather, error) {
	if opts.Loader == nil {
		opts.Loader = manifest.NewLoader()
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	root, err := FindRoot(path)
	if err != nil {
		return nil, err
	}

	b := &builder{
		root:     root,
		loader:   opts.Loader,
		log:      opts.Logger.WithComponent("mustgather").WithArchive(root),
		progress: opts.Progress,
	}
	b.log.Debug().Msg("archive root located")

	mg := &MustGather{
		Root:             root,
		Title:            filepath.Base(root),
		Version:          b.clusterVersion(),
		Nodes:            []resources.Node{},
		ClusterOperators: []resources.ClusterOperator{},
		Machines:         []resources.Machine{},
	}

	for _, doc := range b.collect(nodesRef, utils.DescNodes) {
		mg.Nodes = append(mg.Nodes, resources.NewNode(doc))
	}
	for _, doc := range b.collect(clusterOperatorsRef, utils.DescOperators) {
		mg.ClusterOperators = append(mg.ClusterOperators, resources.NewClusterOperator(doc))
	}
	for _, doc := range b.collect(machinesRef, utils.DescMachines) {
		mg.Machines = append(mg.Machines, resources.NewMachine(doc))
	}

	// Directory enumeration order is platform-dependent; sort so output
	// is deterministic.
	sort.Slice(mg.Nodes, func(i, j int) bool { return mg.Nodes[i].Name < mg.Nodes[j].Name })
	sort.Slice(mg.ClusterOperators, func(i, j int) bool { return mg.ClusterOperators[i].Name < mg.ClusterOperators[j].Name })
	sort.Slice(mg.Machines, func(i, j int) bool { return mg.Machines[i].Name < mg.Machines[j].Name })

	mg.Skipped = b.skipped

	b.log.Info().
		Str("version", mg.Version).
		Int("nodes", len(mg.Nodes)).
		Int("cluster_operators", len(mg.ClusterOperators)).
		Int("machines", len(mg.Machines)).
		Int("skipped", mg.Skipped).
		Msg("archive summary built")

	return mg, nil
}

// builder carries scan state while a summary is assembled.
type builder struct {
	root     string
	loader   Loader
	log      *utils.Logger
	progress bool
	skipped  int
}

// clusterVersion extracts status.desired.version from the cluster
// version manifest, or VersionUnknown on any failure.
func (b *builder) clusterVersion() string {
	path := ManifestPath(b.root, clusterVersionRef)
	doc, err := b.loader.Load(path)
	if err != nil {
		b.log.Debug().Err(err).Msg("cluster version manifest unavailable")
		return VersionUnknown
	}

	if version, ok := doc.StringAt("status", "desired", "version"); ok {
		return version
	}
	return VersionUnknown
}

// collect loads every manifest in the collection directory ref resolves
// to. Load failures are tallied and skipped; a missing or unreadable
// collection directory yields no documents.
func (b *builder) collect(ref Ref, desc string) []*manifest.Document {
	dir := ManifestPath(b.root, ref)
	entries, err := os.ReadDir(dir)
	if err != nil {
		b.log.Debug().Str("dir", dir).Msg("collection absent")
		return nil
	}

	var bar interface{ Add(int) error }
	if b.progress {
		bar = utils.NewProgressBar(len(entries), desc)
	}

	var docs []*manifest.Document
	for _, entry := range entries {
		if bar != nil {
			_ = bar.Add(1)
		}
		if !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		doc, err := b.loader.Load(path)
		if err != nil {
			b.skipped++
			b.log.Debug().Err(err).Str("manifest", path).Msg("skipping unloadable manifest")
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}
