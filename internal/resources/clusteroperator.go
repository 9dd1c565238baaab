package resources

import "github.com/quantmind-br/mginspect/internal/manifest"

// ClusterOperator summarizes a cluster operator manifest.
type ClusterOperator struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Available   string `json:"available" yaml:"available"`
	Progressing string `json:"progressing" yaml:"progressing"`
	Degraded    string `json:"degraded" yaml:"degraded"`
}

// NewClusterOperator decodes a cluster operator summary from its manifest.
// Version is the "operator" entry of status.versions.
func NewClusterOperator(doc *manifest.Document) ClusterOperator {
	co := ClusterOperator{
		Name:        doc.Name(),
		Available:   conditionStatus(doc, "Available"),
		Progressing: conditionStatus(doc, "Progressing"),
		Degraded:    conditionStatus(doc, "Degraded"),
	}

	versions, ok := doc.SliceAt("status", "versions")
	if !ok {
		return co
	}
	for _, entry := range versions {
		v, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if v["name"] != "operator" {
			continue
		}
		if version, ok := v["version"].(string); ok {
			co.Version = version
		}
		break
	}

	return co
}
