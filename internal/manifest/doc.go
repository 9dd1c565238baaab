// Package manifest loads Kubernetes resource manifests from YAML files
// and provides nil-safe traversal over their nested structure.
//
// Manifests inside a must-gather archive are plain YAML serializations
// of API objects. This package makes no assumptions about their schema:
// missing keys or unexpected shapes surface as absent values, never as
// panics.
package manifest
