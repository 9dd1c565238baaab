package resources

import (
	"sort"
	"strings"

	"github.com/quantmind-br/mginspect/internal/manifest"
)

// roleLabelPrefix marks the label keys nodes carry for their roles,
// e.g. node-role.kubernetes.io/worker.
const roleLabelPrefix = "node-role.kubernetes.io/"

// Node summarizes a cluster node manifest.
type Node struct {
	Name    string   `json:"name" yaml:"name"`
	Version string   `json:"version" yaml:"version"`
	Ready   string   `json:"ready" yaml:"ready"`
	Roles   []string `json:"roles" yaml:"roles"`
}

// NewNode decodes a node summary from its manifest.
func NewNode(doc *manifest.Document) Node {
	node := Node{
		Name:  doc.Name(),
		Ready: conditionStatus(doc, "Ready"),
		Roles: []string{},
	}

	if version, ok := doc.StringAt("status", "nodeInfo", "kubeletVersion"); ok {
		node.Version = version
	}

	for key := range doc.Labels() {
		if role, found := strings.CutPrefix(key, roleLabelPrefix); found && role != "" {
			node.Roles = append(node.Roles, role)
		}
	}
	sort.Strings(node.Roles)

	return node
}
