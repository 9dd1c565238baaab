package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteManifest writes a manifest file, creating parent directories
func WriteManifest(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// NodeManifest returns a minimal node manifest
func NodeManifest(name, role string) string {
	return `apiVersion: v1
kind: Node
metadata:
  name: ` + name + `
  labels:
    node-role.kubernetes.io/` + role + `: ""
status:
  nodeInfo:
    kubeletVersion: v1.28.3
  conditions:
    - type: Ready
      status: "True"
`
}

// ClusterOperatorManifest returns a minimal cluster operator manifest
func ClusterOperatorManifest(name, version string) string {
	return `apiVersion: config.openshift.io/v1
kind: ClusterOperator
metadata:
  name: ` + name + `
status:
  versions:
    - name: operator
      version: ` + version + `
  conditions:
    - type: Available
      status: "True"
    - type: Progressing
      status: "False"
    - type: Degraded
      status: "False"
`
}

// MachineManifest returns a minimal machine manifest
func MachineManifest(name, role string) string {
	return `apiVersion: machine.openshift.io/v1beta1
kind: Machine
metadata:
  name: ` + name + `
  labels:
    machine.openshift.io/cluster-api-machine-role: ` + role + `
status:
  phase: Running
`
}

// ClusterVersionManifest returns a cluster version manifest reporting
// the given version
func ClusterVersionManifest(version string) string {
	return `apiVersion: config.openshift.io/v1
kind: ClusterVersion
metadata:
  name: version
status:
  desired:
    version: ` + version + `
`
}

// BuildArchive creates a complete must-gather archive wrapped in one
// extraction directory and returns the wrapper path
func BuildArchive(t *testing.T, version string, nodes ...string) string {
	t.Helper()

	wrapper := t.TempDir()
	root := filepath.Join(wrapper, "sample-openshift-release")
	csr := filepath.Join(root, "cluster-scoped-resources")

	WriteManifest(t, filepath.Join(root, "version"), "sample-openshift-release\n")
	WriteManifest(t,
		filepath.Join(csr, "config.openshift.io", "clusterversions", "version.yaml"),
		ClusterVersionManifest(version))

	for _, name := range nodes {
		WriteManifest(t,
			filepath.Join(csr, "core", "nodes", name+".yaml"),
			NodeManifest(name, "worker"))
	}

	WriteManifest(t,
		filepath.Join(csr, "config.openshift.io", "clusteroperators", "etcd.yaml"),
		ClusterOperatorManifest("etcd", version))
	WriteManifest(t,
		filepath.Join(root, "namespaces", "openshift-machine-api", "machine.openshift.io", "machines", "cluster-abc-worker-0.yaml"),
		MachineManifest("cluster-abc-worker-0", "worker"))

	return wrapper
}
