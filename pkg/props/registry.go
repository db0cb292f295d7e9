// Process-wide registry of live PropertySets and the reload broadcast.
// Implements: prd001-property-set R3 (broadcast reload, explicit
// unsubscription).
package props

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// registry tracks every open PropertySet so that a rewrite of a resource
// file can be propagated to all sets still reading it. Sets unregister
// themselves in Close; entries never outlive the set they point at.
var registry = struct {
	mu   sync.RWMutex
	sets map[uuid.UUID]*PropertySet
}{
	sets: make(map[uuid.UUID]*PropertySet),
}

func register(ps *PropertySet) uuid.UUID {
	id := uuid.New()
	registry.mu.Lock()
	registry.sets[id] = ps
	registry.mu.Unlock()
	return id
}

func unregister(id uuid.UUID) {
	registry.mu.Lock()
	delete(registry.sets, id)
	registry.mu.Unlock()
}

// BroadcastReload re-reads the resource at path into every registered set
// loaded from that path. Sets loaded from other resources are untouched.
// Reload failures do not stop the broadcast; all failures are joined into
// the returned error.
func BroadcastReload(path string) error {
	registry.mu.RLock()
	targets := make([]*PropertySet, 0, len(registry.sets))
	for _, ps := range registry.sets {
		if ps.resource == path {
			targets = append(targets, ps)
		}
	}
	registry.mu.RUnlock()

	var errs []error
	for _, ps := range targets {
		if err := ps.Reload(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
