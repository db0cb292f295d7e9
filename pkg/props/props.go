// PropertySet loading, lookup, mutation, and persistence.
// Implements: prd001-property-set R1 (load), R2 (read/write precedence),
// R5 (typed accessors), R6 (bulk update).
package props

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/connprops/internal/log"
)

// Property access errors.
var (
	// ErrKeyEmpty rejects typed accessors called with an empty key.
	ErrKeyEmpty = errors.New("property key must not be empty")
	// ErrInvalidValue wraps every typed-conversion failure.
	ErrInvalidValue = errors.New("invalid property value")
)

// PropertySet is an ordered key/value configuration loaded from a resource
// file. Reads consult the override store before the local mapping, so an
// override for a key always wins over the file-loaded value. Writes go to
// both stores, coupling every set sharing the same override store.
//
// The value store tolerates concurrent reads and snapshot iteration against
// concurrent single-key writes; the write path itself is serialized per set.
type PropertySet struct {
	resource  string
	overrides *Overrides
	logger    zerolog.Logger
	id        uuid.UUID

	mu     sync.Mutex // serializes Set, Update snapshots, and Reload swaps
	keys   []string   // insertion order; first load order, new keys appended
	values sync.Map   // string -> string
}

// Option configures a PropertySet at construction.
type Option func(*PropertySet)

// WithOverrides scopes the set to an explicit override store instead of the
// process-wide default.
func WithOverrides(o *Overrides) Option {
	return func(ps *PropertySet) {
		ps.overrides = o
	}
}

// New loads the properties resource at path and registers the set for
// broadcast reloads. A missing resource is not an error: the set starts
// empty. Any other read or parse failure is returned wrapped.
//
// Callers must Close the set when done with it to drop it from the
// broadcast registry.
func New(path string, opts ...Option) (*PropertySet, error) {
	ps := &PropertySet{
		resource:  path,
		overrides: defaultOverrides,
		logger:    log.WithComponent("props"),
	}
	for _, opt := range opts {
		opt(ps)
	}

	if err := ps.Reload(); err != nil {
		return nil, err
	}

	ps.id = register(ps)
	return ps, nil
}

// Resource returns the path the set was loaded from.
func (ps *PropertySet) Resource() string {
	return ps.resource
}

// Close removes the set from the broadcast registry. The set remains usable
// for local reads and writes; it just stops receiving reloads.
func (ps *PropertySet) Close() {
	unregister(ps.id)
}

// Get returns the value for key, consulting the override store first and the
// locally loaded mapping second.
func (ps *PropertySet) Get(key string) (string, bool) {
	if v, ok := ps.overrides.Lookup(key); ok {
		return v, true
	}
	v, ok := ps.values.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Set stores value for key in both the override store and the local mapping
// and returns the previous local value, if any. Only one Set at a time runs
// per instance.
func (ps *PropertySet) Set(key, value string) (string, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.overrides.Set(key, value)

	prev, existed := ps.values.Load(key)
	ps.values.Store(key, value)
	if !existed {
		ps.keys = append(ps.keys, key)
		return "", false
	}
	return prev.(string), true
}

// Pairs returns the local mapping in insertion order. Overrides are not
// included; this is the exact content Update persists.
func (ps *PropertySet) Pairs() []Pair {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.pairsLocked()
}

func (ps *PropertySet) pairsLocked() []Pair {
	pairs := make([]Pair, 0, len(ps.keys))
	for _, k := range ps.keys {
		if v, ok := ps.values.Load(k); ok {
			pairs = append(pairs, Pair{Key: k, Value: v.(string)})
		}
	}
	return pairs
}

// Int reads key and parses it as an int.
func (ps *PropertySet) Int(key string) (int, error) {
	raw, err := ps.require(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ps.convertError(key, raw, "int")
	}
	return n, nil
}

// Int64 reads key and parses it as an int64.
func (ps *PropertySet) Int64(key string) (int64, error) {
	raw, err := ps.require(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ps.convertError(key, raw, "int64")
	}
	return n, nil
}

// Bool reads key and parses it as a bool. Only "true" and "false" are
// accepted, case-insensitively; anything else, including an absent value,
// is a conversion error.
func (ps *PropertySet) Bool(key string) (bool, error) {
	raw, err := ps.require(key)
	if err != nil {
		return false, err
	}
	switch {
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	default:
		return false, ps.convertError(key, raw, "bool")
	}
}

// require validates the key and resolves its raw value. An absent key
// resolves to the empty string so that the typed parse reports it with the
// full conversion context.
func (ps *PropertySet) require(key string) (string, error) {
	if key == "" {
		return "", ErrKeyEmpty
	}
	raw, _ := ps.Get(key)
	return raw, nil
}

func (ps *PropertySet) convertError(key, raw, target string) error {
	return fmt.Errorf("%s: cannot parse value [%s] of property [%s] as a [%s]: %w",
		ps.resource, raw, key, target, ErrInvalidValue)
}

// Update rewrites the resource file with the current local mapping, in
// insertion order and with no header line, then broadcasts a reload to every
// registered set sharing the resource path. The write is atomic: the file
// either keeps its old content or holds the complete new mapping.
func (ps *PropertySet) Update() error {
	ps.mu.Lock()
	pairs := ps.pairsLocked()
	ps.mu.Unlock()

	pending, err := renameio.NewPendingFile(ps.resource)
	if err != nil {
		return fmt.Errorf("resolve properties resource %s: %w", ps.resource, err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			ps.logger.Debug().Err(err).Msg("cleanup pending properties file")
		}
	}()

	if err := Encode(pending, pairs); err != nil {
		return fmt.Errorf("write properties resource %s: %w", ps.resource, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace properties resource %s: %w", ps.resource, err)
	}

	ps.logger.Info().
		Str("resource", ps.resource).
		Int("pairs", len(pairs)).
		Msg("properties resource rewritten")

	return BroadcastReload(ps.resource)
}

// Reload replaces the local mapping with the current content of the resource
// file. A missing file yields an empty mapping; any other failure leaves the
// mapping unchanged and returns a wrapped error.
func (ps *PropertySet) Reload() error {
	pairs, err := ps.readResource()
	if err != nil {
		return err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.values.Range(func(k, _ any) bool {
		ps.values.Delete(k)
		return true
	})
	ps.keys = ps.keys[:0]
	for _, p := range pairs {
		if _, seen := ps.values.Load(p.Key); !seen {
			ps.keys = append(ps.keys, p.Key)
		}
		// Duplicate keys in the file: last occurrence wins.
		ps.values.Store(p.Key, p.Value)
	}
	return nil
}

func (ps *PropertySet) readResource() ([]Pair, error) {
	f, err := os.Open(ps.resource)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Absent resource is an empty configuration, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("open properties resource %s: %w", ps.resource, err)
	}
	defer f.Close()

	pairs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse properties resource %s: %w", ps.resource, err)
	}
	return pairs, nil
}
