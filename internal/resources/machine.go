package resources

import "github.com/quantmind-br/mginspect/internal/manifest"

// machineRoleLabel carries the role a machine was provisioned for.
const machineRoleLabel = "machine.openshift.io/cluster-api-machine-role"

// Machine summarizes a machine manifest.
type Machine struct {
	Name  string `json:"name" yaml:"name"`
	Phase string `json:"phase" yaml:"phase"`
	Role  string `json:"role" yaml:"role"`
}

// NewMachine decodes a machine summary from its manifest.
func NewMachine(doc *manifest.Document) Machine {
	m := Machine{
		Name: doc.Name(),
		Role: doc.Labels()[machineRoleLabel],
	}

	if phase, ok := doc.StringAt("status", "phase"); ok {
		m.Phase = phase
	}

	return m
}
