// Package resources decodes cluster entities from their manifest documents.
// Decoding is total: missing or malformed fields produce zero values or the
// "Unknown" condition status, never errors.
package resources

import "github.com/quantmind-br/mginspect/internal/manifest"

// StatusUnknown is the condition status reported when a manifest does not
// carry the requested condition.
const StatusUnknown = "Unknown"

// conditionStatus returns the status of the named condition type from
// status.conditions, or StatusUnknown if absent.
func conditionStatus(doc *manifest.Document, condType string) string {
	conditions, ok := doc.SliceAt("status", "conditions")
	if !ok {
		return StatusUnknown
	}

	for _, entry := range conditions {
		cond, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if cond["type"] != condType {
			continue
		}
		if status, ok := cond["status"].(string); ok {
			return status
		}
		return StatusUnknown
	}

	return StatusUnknown
}
