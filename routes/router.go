package routes

import (
	"time"

	"nagaralert-be/config"
	"nagaralert-be/controllers"
	"nagaralert-be/logger"
	"nagaralert-be/metrics"
	"nagaralert-be/middlewares"
	authUtils "nagaralert-be/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Dependencies is everything the router wires into handlers and middlewares.
type Dependencies struct {
	Config  *config.Config
	Log     *logger.Logger
	Metrics *metrics.HTTPMetrics
	Tokens  *authUtils.TokenManager
	Users   middlewares.UserLoader
	Redis   redis.Cmdable

	Health         *controllers.HealthController
	Auth           *controllers.AuthController
	Municipalities *controllers.MunicipalityController
	Reports        *controllers.ReportController
	Staffs         *controllers.StaffController
	Sponsors       *controllers.SponsorController
	Emergency      *controllers.EmergencyController
}

// SetupRouter builds the gin engine with global middlewares and all routes.
func SetupRouter(d Dependencies) *gin.Engine {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middlewares.RequestID(),
		middlewares.RequestLogger(d.Log),
		middlewares.Recovery(d.Log),
		d.Metrics.Middleware(),
		cors.New(corsConfig(d.Config.AllowedOrigins)),
		middlewares.ErrorHandler(d.Log),
	)
	r.NoRoute(middlewares.NoRoute())

	r.GET("/health", d.Health.Health)
	r.GET("/health/ready", d.Health.Ready)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	api := r.Group("/api/v1")
	guard := guards{
		auth:    middlewares.Authenticate(d.Tokens, d.Users),
		refresh: middlewares.RefreshAuthenticate(d.Tokens, d.Users),
		tempDir: d.Config.UploadTempDir,
	}

	AuthRoutes(api, d.Auth, guard)
	MunicipalityRoutes(api, d.Municipalities, guard)
	ReportRoutes(api, d.Reports, guard, middlewares.ReportRateLimiter(d.Redis, d.Config.ReportLimitPrefix, d.Config.ReportDailyLimit, d.Log))
	StaffRoutes(api, d.Staffs, guard)
	SponsorRoutes(api, d.Sponsors, guard)
	EmergencyRoutes(api, d.Emergency, guard)

	return r
}

// guards carries the shared authentication middlewares.
type guards struct {
	auth    gin.HandlerFunc
	refresh gin.HandlerFunc
	tempDir string
}

func (g guards) upload(fields ...middlewares.UploadField) gin.HandlerFunc {
	return middlewares.Upload(g.tempDir, fields...)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "refresh", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
