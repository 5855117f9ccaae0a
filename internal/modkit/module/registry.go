package module

import (
	"reflect"
	"sync"
)

// process wide registry for cross wiring service ports during bootstrap
// eager Register stores a live port set; RegisterLazy defers construction to
// first lookup and memoizes exactly one instance per name for the process
// lifetime, so registered services must keep no per call state
var (
	mu        sync.RWMutex
	reg       = map[string]any{}
	factories = map[string]func() any{}
)

// Register stores a live port set for a module name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// RegisterLazy stores a factory constructed on first lookup
// tests and extensions can substitute a service by re-registering the name
func RegisterLazy(name string, factory func() any) {
	mu.Lock()
	factories[name] = factory
	delete(reg, name)
	mu.Unlock()
}

// resolve returns the live instance for name, constructing it when a lazy
// factory is registered. The factory runs outside the lock so it can look
// up sibling services; bootstrap is single threaded so that is safe
func resolve(name string) (any, bool) {
	mu.RLock()
	v, ok := reg[name]
	f := factories[name]
	mu.RUnlock()
	if ok {
		return v, true
	}
	if f == nil {
		return nil, false
	}
	built := f()
	mu.Lock()
	// first construction wins if something beat us to it
	if prior, ok := reg[name]; ok {
		built = prior
	} else {
		reg[name] = built
	}
	mu.Unlock()
	return built, true
}

// PortsAs fetches and type asserts a port set for name
// lazy registrations are constructed and memoized on first use
// when the registered value is a struct of ports rather than the interface
// itself, the first exported field implementing T is returned
func PortsAs[T any](name string) (T, bool) {
	var zero T
	v, ok := resolve(name)
	if !ok {
		return zero, false
	}
	if out, ok := v.(T); ok {
		return out, true
	}
	want := reflect.TypeOf((*T)(nil)).Elem()
	if want.Kind() != reflect.Interface {
		return zero, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() || !f.Type().Implements(want) {
			continue
		}
		if f.IsZero() {
			continue
		}
		return f.Interface().(T), true
	}
	return zero, false
}

// MustPortsAs is PortsAs that panics on a missing or mistyped port set
func MustPortsAs[T any](name string) T {
	v, ok := PortsAs[T](name)
	if !ok {
		panic("module: no port set registered as " + name)
	}
	return v
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	factories = map[string]func() any{}
	mu.Unlock()
}
