// Package module wires submissions into the API using modkit
package module

import (
	"net/http"

	modkit "pressroom/internal/modkit"
	"pressroom/internal/modkit/httpkit"
	str "pressroom/internal/platform/strings"
	subhttp "pressroom/internal/services/submissions/http"
	subrepo "pressroom/internal/services/submissions/repo"
	subsvc "pressroom/internal/services/submissions/service"
)

// RegistryName is the service registry key sibling modules resolve
const RegistryName = "submissions"

// Module implements the submissions module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc subsvc.Service
}

// New constructs the submissions module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(RegistryName), modkit.WithPrefix("/submissions")}, opts...)...)

	svc := subsvc.New(deps.PG, subrepo.NewPG(), deps.Hooks)

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
		subhttp.Register(r, m.svc)
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
