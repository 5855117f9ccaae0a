// Package module wires authors into the API using modkit
package module

import (
	"net/http"

	modkit "pressroom/internal/modkit"
	"pressroom/internal/modkit/httpkit"
	str "pressroom/internal/platform/strings"
	authorhttp "pressroom/internal/services/authors/http"
	authorrepo "pressroom/internal/services/authors/repo"
	authorsvc "pressroom/internal/services/authors/service"
)

// RegistryName is the service registry key sibling modules resolve
const RegistryName = "authors"

// Module implements the authors module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc authorsvc.Service
}

// New constructs the authors module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(RegistryName), modkit.WithPrefix("/authors")}, opts...)...)

	svc := authorsvc.New(deps.PG, authorrepo.NewPG(), deps.Hooks)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		authorhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
