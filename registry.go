package statedict

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Tag identifies a registry entry: the concrete runtime type of a value, or
// the shared RecordTag sentinel for any value implementing Record.
type Tag = reflect.Type

// RecordTag is the sentinel tag under which the generic record converter is
// registered. All Record implementations share it, so one converter serves any
// record-like type without per-type registration.
var RecordTag Tag = reflect.TypeOf((*Record)(nil)).Elem()

// EncodeFunc converts a target into its state representation. A composite
// implementation calls Encode recursively on children; a result that is a map
// must use string keys only.
type EncodeFunc func(ctx context.Context, target any) (any, error)

// DecodeFunc restores a new value shaped like target with leaf values taken
// from state. Implementations never mutate target and recurse via DecodeNamed
// so nested failures stay path-qualified.
type DecodeFunc func(ctx context.Context, target, state any) (any, error)

// Converter pairs the two directions registered for a tag.
type Converter struct {
	Encode EncodeFunc
	Decode DecodeFunc
}

// TagOf derives the registry tag for a value: RecordTag when the value
// implements Record, otherwise its concrete runtime type (nil for a nil
// value, which no entry matches).
func TagOf(v any) Tag {
	if _, ok := v.(Record); ok {
		return RecordTag
	}
	return reflect.TypeOf(v)
}

// TagFor derives the registry tag for a compile-time type, for registration
// call sites that have no value at hand.
func TagFor[T any]() Tag {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// registry is the process-wide tag table. Writes are expected during an
// initialization phase, but the RWMutex keeps late registration safe too;
// lookups during conversion only ever take the read lock.
type registry struct {
	mu      sync.RWMutex
	entries map[Tag]Converter
}

var defaultRegistry = &registry{entries: make(map[Tag]Converter)}

func (r *registry) register(tag Tag, conv Converter, override bool) error {
	if tag == nil {
		return fmt.Errorf("statedict: tag must not be nil")
	}
	if conv.Encode == nil || conv.Decode == nil {
		return fmt.Errorf("statedict: converter pair for %v must be complete", tag)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[tag]; exists && !override {
		return fmt.Errorf("%w: %v", ErrDuplicateRegistration, tag)
	}
	r.entries[tag] = conv
	return nil
}

func (r *registry) lookup(tag Tag) (Converter, bool) {
	if tag == nil {
		return Converter{}, false
	}
	r.mu.RLock()
	conv, ok := r.entries[tag]
	r.mu.RUnlock()
	return conv, ok
}

func (r *registry) tags() []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]Tag, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}

// Register inserts a converter pair under tag. It fails with
// ErrDuplicateRegistration when tag already has an entry and override is
// false; with override it replaces the prior pair. External collaborators
// typically call this from an init function, before any conversion occurs.
func Register(tag Tag, encode EncodeFunc, decode DecodeFunc, override bool) error {
	return defaultRegistry.register(tag, Converter{Encode: encode, Decode: decode}, override)
}

// Lookup returns the converter pair registered for tag, if any. Unregistered
// tags are not an error; Encode/Decode treat them as leaves.
func Lookup(tag Tag) (Converter, bool) {
	return defaultRegistry.lookup(tag)
}

// RegisteredTags returns the currently registered tags sorted by name, for
// diagnostics.
func RegisteredTags() []Tag {
	return defaultRegistry.tags()
}
