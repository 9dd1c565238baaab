package manifest

// Document is a parsed manifest with nil-safe access to nested values.
type Document struct {
	root map[string]interface{}
	path string
}

// NewDocument wraps an already-parsed mapping. Useful in tests.
func NewDocument(root map[string]interface{}) *Document {
	return &Document{root: root}
}

// Path returns the file path the document was loaded from, if any.
func (d *Document) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// At walks the given keys through nested mappings and returns the value
// found at the end. The second return is false if any step is missing
// or not a mapping.
func (d *Document) At(keys ...string) (interface{}, bool) {
	if d == nil || d.root == nil {
		return nil, false
	}

	var current interface{} = d.root
	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// StringAt walks the given keys and returns the value as a string.
// The second return is false if the path is missing or the value is
// not a string.
func (d *Document) StringAt(keys ...string) (string, bool) {
	value, ok := d.At(keys...)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// SliceAt walks the given keys and returns the value as a slice.
func (d *Document) SliceAt(keys ...string) ([]interface{}, bool) {
	value, ok := d.At(keys...)
	if !ok {
		return nil, false
	}
	s, ok := value.([]interface{})
	return s, ok
}

// MapAt walks the given keys and returns the value as a mapping.
func (d *Document) MapAt(keys ...string) (map[string]interface{}, bool) {
	value, ok := d.At(keys...)
	if !ok {
		return nil, false
	}
	m, ok := value.(map[string]interface{})
	return m, ok
}

// Name returns metadata.name, or an empty string if absent.
func (d *Document) Name() string {
	name, _ := d.StringAt("metadata", "name")
	return name
}

// Kind returns the manifest kind, or an empty string if absent.
func (d *Document) Kind() string {
	kind, _ := d.StringAt("kind")
	return kind
}

// Labels returns metadata.labels as a string map. Non-string values
// are skipped. The result is never nil.
func (d *Document) Labels() map[string]string {
	labels := make(map[string]string)
	m, ok := d.MapAt("metadata", "labels")
	if !ok {
		return labels
	}
	for k, v := range m {
		if s, ok := v.(string); ok {
			labels[k] = s
		}
	}
	return labels
}
