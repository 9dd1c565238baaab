// Package mustgather locates and interprets must-gather archives, the
// directory dumps of cluster resource manifests produced by support
// tooling.
//
// The package answers three questions about an extracted archive:
//
//   - where is the archive root, given that dumps arrive wrapped in one
//     or more levels of container directories (FindRoot)
//   - where does a given resource's manifest live relative to that root
//     (ManifestPath)
//   - what does the archive say about the cluster: version, nodes,
//     cluster operators, machines (New)
//
// The archive is read-only input. Structural problems (no recognizable
// root, unreadable input path) are reported as errors; problems with
// individual manifests degrade instead, producing "Unknown" versions or
// skipped inventory entries.
package mustgather
