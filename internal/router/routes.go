package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ichthyo-signup/internal/authclient"
	"ichthyo-signup/internal/config"
	"ichthyo-signup/internal/handler"
	middlewarepkg "ichthyo-signup/internal/middleware"
)

// Deps aggregates what the router needs to build the HTTP surface.
type Deps struct {
	Config   *config.Config
	Signup   *handler.SignupHandler
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// New builds the echo instance serving the API and the compiled client.
func New(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	metrics := middlewarepkg.NewMetrics(deps.Registry, "signup")

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(deps.Logger))
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.Recover())
	if len(deps.Config.AllowedOrigins) > 0 {
		e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
			AllowOrigins: deps.Config.AllowedOrigins,
			AllowMethods: []string{echo.POST, echo.GET, echo.OPTIONS},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		}))
	}

	Register(e, deps)
	return e
}

// Register wires all routes.
func Register(e *echo.Echo, deps Deps) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	e.POST(authclient.SignupPath, deps.Signup.Signup, middlewarepkg.SignupRateLimiter(deps.Config.RateLimitSignup))

	// /signup and /login are client routes; unknown paths fall back to index.html.
	e.Group("", echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
		Root:  deps.Config.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))
}
