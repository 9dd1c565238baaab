package mustgather

import "path/filepath"

// Ref identifies a resource, or a whole resource collection, within an
// archive. An empty Namespace means cluster-scoped; an empty Name refers
// to the collection directory rather than a single manifest.
type Ref struct {
	Name      string
	Namespace string
	Group     string
	Kind      string
}

// ManifestPath resolves a resource reference to its location under the
// archive root:
//
//	<root>/cluster-scoped-resources/<group>/<kind>/[<name>.yaml]
//	<root>/namespaces/<namespace>/<group>/<kind>/[<name>.yaml]
//
// An empty Group contributes no path segment (legacy core kinds appear
// under both forms in the wild). The function does not touch the
// filesystem and places no constraints on whether the result exists.
func ManifestPath(root string, ref Ref) string {
	base := filepath.Join(root, "cluster-scoped-resources")
	if ref.Namespace != "" {
		base = filepath.Join(root, "namespaces", ref.Namespace)
	}

	path := filepath.Join(base, ref.Group, ref.Kind)
	if ref.Name != "" {
		path = filepath.Join(path, ref.Name+".yaml")
	}
	return path
}
