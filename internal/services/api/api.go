// Package api provides the HTTP API for the application
package api

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/middleware"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/module"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/swaggerkit"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/docs"
	metamod "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/meta/module"
	wizardmod "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/module"

	auditdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
	auditmod "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/module"
	partdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/domain"
	partmod "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/module"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"
	regmod "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// the returned workers must be run by the caller for as long as the server runs
func Mount(r phttp.Router, opt Options) []auditdom.WorkerPort {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// port-only modules first, the wizard is built from their ports
	registrations := regmod.New(deps, regmod.Options{})
	partners := partmod.New(deps, partmod.Options{})
	audit := auditmod.New(deps, auditmod.Options{})

	wizard := wizardmod.New(
		deps,
		modkit.WithPorts(wizardmod.Ports{
			Registrations: module.MustPortsOf[regdom.Port](registrations),
			Partners:      module.MustPortsOf[partdom.Port](partners),
			Journal:       module.MustPortsOf[auditdom.Journal](audit),
			Events:        module.MustPortsOf[auditdom.Reader](audit),
		}),
		// every wizard body is JSON, forms get a 415 before binding
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	)

	mods := []modkit.Module{
		metamod.New(deps),
		registrations,
		partners,
		audit,
		wizard,
	}

	swaggerkit.Mount(r, opt.EnableSwagger, docs.SwaggerInfo.ReadDoc)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPI(r, "v1", httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Log.Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})

	return []auditdom.WorkerPort{module.MustPortsOf[auditmod.Ports](audit).Worker}
}
