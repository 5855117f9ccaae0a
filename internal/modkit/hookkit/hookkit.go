// Package hookkit provides the named extension point registry
// listeners observe or mutate an in flight payload in registration order
package hookkit

import (
	"context"
	"sync"

	perr "pressroom/internal/platform/errors"
	"pressroom/internal/platform/logger"
)

// Outcome tells the registry whether to keep walking the chain
type Outcome int

const (
	// Continue runs the remaining listeners
	Continue Outcome = iota

	// Stop short circuits the remaining listeners
	Stop
)

// Listener observes or mutates the payload for one hook invocation
// payloads are passed by reference so mutations are visible downstream
type Listener func(ctx context.Context, payload any) (Outcome, error)

// Stable hook point suffixes composed with an entity type via Name
const (
	PointPropValues  = "getProperties::values"
	PointPropSummary = "getProperties::summaryProperties"
	PointPropFull    = "getProperties::fullProperties"
	PointListBuilder = "list::queryBuilder"
	PointListQuery   = "list::queryObject"
)

// Name composes the wire stable hook name for an entity type and point
// eg Name("Submission", PointPropValues) -> "Submission::getProperties::values"
func Name(entityType, point string) string { return entityType + "::" + point }

// Registry maps hook names to ordered listener chains
// registration happens during process bootstrap, invocation is read only,
// so the lock is uncontended during request handling
type Registry struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// New constructs an empty Registry
func New() *Registry {
	return &Registry{listeners: map[string][]Listener{}}
}

// Register appends l to the chain for name
// duplicates are allowed and all fire
func (r *Registry) Register(name string, l Listener) {
	r.mu.Lock()
	r.listeners[name] = append(r.listeners[name], l)
	r.mu.Unlock()
}

// Unregister drops every listener for name
// previously returned payloads are unaffected
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.listeners, name)
	r.mu.Unlock()
}

// Count reports how many listeners are registered for name
func (r *Registry) Count(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners[name])
}

// Reset clears the registry for tests
func (r *Registry) Reset() {
	r.mu.Lock()
	r.listeners = map[string][]Listener{}
	r.mu.Unlock()
}

func (r *Registry) chain(name string) []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listeners[name]
}

// Invoke runs the chain for name with strict failure semantics
// the first listener error aborts the rest and propagates
// used for query construction hooks where a bad filter must not
// silently produce a wrong result set
// with no listeners registered it returns payload unchanged
func (r *Registry) Invoke(ctx context.Context, name string, payload any) (any, error) {
	for i, l := range r.chain(name) {
		out, err := l(ctx, payload)
		if err != nil {
			return payload, perr.Wrapf(err, perr.ErrorCodeHookListener, "hook %s listener %d", name, i)
		}
		if out == Stop {
			break
		}
	}
	return payload, nil
}

// InvokeBestEffort runs the chain for name swallowing listener errors
// a failed listener is logged and the rest still fire
// used for property enrichment hooks where partial data beats a failed response
func (r *Registry) InvokeBestEffort(ctx context.Context, name string, payload any) any {
	for i, l := range r.chain(name) {
		out, err := l(ctx, payload)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Str("hook", name).Int("listener", i).Msg("hook listener failed")
			continue
		}
		if out == Stop {
			break
		}
	}
	return payload
}
