// Package api provides the HTTP API for the application
package api

import (
	"pressroom/internal/platform/config"
	"pressroom/internal/platform/logger"
	phttp "pressroom/internal/platform/net/http"
	"pressroom/internal/platform/store"

	"pressroom/internal/modkit"
	"pressroom/internal/modkit/hookkit"
	"pressroom/internal/modkit/httpkit"
	"pressroom/internal/modkit/module"
	"pressroom/internal/modkit/swaggerkit"

	metamod "pressroom/internal/services/api/meta/module"
	authorsmod "pressroom/internal/services/authors/module"
	issuesmod "pressroom/internal/services/issues/module"
	statsmod "pressroom/internal/services/stats/module"
	submissionsmod "pressroom/internal/services/submissions/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Hooks          *hookkit.Registry
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// plugins register hook listeners on opt.Hooks before Mount runs so list
// composition and serialization pick them up from the first request
func Mount(r phttp.Router, opt Options) {
	hooks := opt.Hooks
	if hooks == nil {
		hooks = hookkit.New()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		CH:    opt.Store.CH,
		Hooks: hooks,
	}

	// authors and issues come first so the submission serializer can
	// resolve their ports from the registry
	mods := []module.Module{
		metamod.New(deps),
		authorsmod.New(deps),
		issuesmod.New(deps),
		submissionsmod.New(deps),
		statsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name for cross module lookups
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
