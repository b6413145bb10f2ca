package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/opora-health/opora_backend/config"
	"github.com/opora-health/opora_backend/internal/api/http/handler"
	"github.com/opora-health/opora_backend/internal/api/http/middleware"
	"github.com/opora-health/opora_backend/internal/repo"
	"github.com/opora-health/opora_backend/internal/service/survey"
	pasetotoken "github.com/opora-health/opora_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	Redis     *redis.Client
	DB        *repo.Client
	SurveySvc survey.Service
	PasetoMgr *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	var auth fiber.Handler
	if r.p.Cfg.Authentication.Required {
		auth = middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	} else {
		auth = middleware.AuthOptional(r.p.PasetoMgr, r.p.Redis)
	}

	// 3. Initialize Handlers
	surveyH := handler.NewSurveyHandler(r.p.SurveySvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerSurveyRoutes(api, surveyH, auth)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.DB != nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
