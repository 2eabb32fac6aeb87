package response

import (
	"reflect"
	"strings"
	"sync"
)

// Record is a domain value that may have a public projection.
type Record interface {
	RecordType() string
}

// Projector maps a record to its public representation.
type Projector func(Record) any

// Project adapts a typed projection function to a Projector.
// Records of any other concrete type pass through unchanged.
func Project[T Record](fn func(T) any) Projector {
	return func(record Record) any {
		typed, ok := record.(T)
		if !ok {
			return record
		}
		return fn(typed)
	}
}

// Registry maps record types to projectors.
// It is populated during bootstrap and read concurrently while serving.
type Registry struct {
	mu         sync.RWMutex
	projectors map[string]Projector
}

func NewRegistry() *Registry {
	return &Registry{projectors: make(map[string]Projector)}
}

// Register binds a projector to recordType, replacing any earlier binding.
func (r *Registry) Register(recordType string, projector Projector) {
	recordType = strings.TrimSpace(recordType)
	if recordType == "" || projector == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projectors[recordType] = projector
}

// Lookup returns the projector registered for the record's type.
func (r *Registry) Lookup(record Record) (Projector, bool) {
	if r == nil || record == nil {
		return nil, false
	}
	if value := reflect.ValueOf(record); value.Kind() == reflect.Pointer && value.IsNil() {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	projector, ok := r.projectors[record.RecordType()]
	return projector, ok
}

// Types lists the registered record types in no particular order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.projectors))
	for recordType := range r.projectors {
		types = append(types, recordType)
	}
	return types
}
