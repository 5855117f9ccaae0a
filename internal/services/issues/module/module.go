// Package module wires issues into the API using modkit
package module

import (
	"net/http"

	modkit "pressroom/internal/modkit"
	"pressroom/internal/modkit/httpkit"
	str "pressroom/internal/platform/strings"
	issuehttp "pressroom/internal/services/issues/http"
	issuerepo "pressroom/internal/services/issues/repo"
	issuesvc "pressroom/internal/services/issues/service"
)

// RegistryName is the service registry key sibling modules resolve
const RegistryName = "issues"

// Module implements the issues module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc issuesvc.Service
}

// New constructs the issues module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(RegistryName), modkit.WithPrefix("/issues")}, opts...)...)

	svc := issuesvc.New(deps.PG, issuerepo.NewPG(), deps.Hooks)

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
		issuehttp.Register(r, m.svc)
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
