// Process-wide override store for property values.
// Implements: prd001-property-set R2 (override precedence, explicit store).
package props

import "sync"

// Overrides is a concurrent key/value store whose entries take precedence
// over file-loaded values on every read. A single store may back any number
// of PropertySets; writes through any of them are immediately visible to all
// readers of the store.
type Overrides struct {
	values sync.Map // string -> string
}

// NewOverrides returns an empty override store. Pass it to New via
// WithOverrides to scope overrides to a group of sets instead of the
// process-wide default.
func NewOverrides() *Overrides {
	return &Overrides{}
}

// Lookup returns the override for key, if one is set.
func (o *Overrides) Lookup(key string) (string, bool) {
	v, ok := o.values.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Set records an override for key.
func (o *Overrides) Set(key, value string) {
	o.values.Store(key, value)
}

// Delete removes the override for key, exposing the file-loaded value again.
func (o *Overrides) Delete(key string) {
	o.values.Delete(key)
}

// Snapshot returns a copy of all current overrides.
func (o *Overrides) Snapshot() map[string]string {
	out := make(map[string]string)
	o.values.Range(func(k, v any) bool {
		out[k.(string)] = v.(string)
		return true
	})
	return out
}

// defaultOverrides couples all sets constructed without WithOverrides, the
// way process-global system properties coupled every instance in the
// original tooling. It lives for the whole process and is never torn down.
var defaultOverrides = NewOverrides()

// DefaultOverrides returns the process-wide override store.
func DefaultOverrides() *Overrides {
	return defaultOverrides
}
