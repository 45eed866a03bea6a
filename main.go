package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nagaralert-be/cache"
	"nagaralert-be/config"
	"nagaralert-be/controllers"
	"nagaralert-be/geotag"
	"nagaralert-be/logger"
	"nagaralert-be/mailer"
	"nagaralert-be/metrics"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"
	"nagaralert-be/repositories"
	"nagaralert-be/routes"
	"nagaralert-be/services"
	"nagaralert-be/storage"
	authUtils "nagaralert-be/utils"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").WithError(err).Fatal("loading configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("connecting to MongoDB")
	}
	log.Info("MongoDB connection established successfully!")

	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("connecting to Redis")
	}

	if err := models.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("creating indexes")
	}

	if err := middlewares.RegisterValidators(); err != nil {
		log.WithError(err).Fatal("registering validators")
	}

	// clients
	var media services.MediaStorage = storage.Unconfigured{}
	if cfg.CloudinaryURL != "" {
		cld, err := storage.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.WithError(err).Fatal("configuring media storage")
		}
		media = cld
	} else {
		log.Warn("CLOUDINARY_URL not set, uploads are disabled")
	}
	smtp := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, log)
	notifier := services.NewNotifier(smtp, log)
	httpMetrics := metrics.NewHTTPMetrics("nagaralert-api")
	tokens := authUtils.NewTokenManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	redisCache := cache.NewRedisCache(redisClient)

	// repositories
	users := repositories.NewUserRepository(db, cfg.MongoTimeout)
	municipalities := repositories.NewMunicipalityRepository(db, cfg.MongoTimeout)
	reports := repositories.NewReportRepository(db, cfg.MongoTimeout)
	staffs := repositories.NewStaffRepository(db, cfg.MongoTimeout)
	sponsors := repositories.NewSponsorRepository(db, cfg.MongoTimeout)
	emergencyServices := repositories.NewEmergencyServiceRepository(db, cfg.MongoTimeout)

	if err := services.SeedSystemAdmin(ctx, users, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword, cfg.BcryptCost, log); err != nil {
		log.WithError(err).Fatal("seeding default admin")
	}

	// services
	authService := services.NewAuthService(users, municipalities, media, notifier, tokens, cfg.BcryptCost, log)
	municipalityService := services.NewMunicipalityService(municipalities, users, reports, redisCache, cfg.MunicipalityCacheTTL, notifier, cfg.BcryptCost, log)
	reportService := services.NewReportService(reports, municipalities, users, staffs, media, geotag.NewReader(), httpMetrics, notifier, log)
	staffService := services.NewStaffService(staffs, users, municipalities, reports, media, notifier, cfg.BcryptCost, log)
	sponsorService := services.NewSponsorService(sponsors, municipalities, media, log)
	emergencyService := services.NewEmergencyService(emergencyServices, municipalities, log)

	router := routes.SetupRouter(routes.Dependencies{
		Config:  cfg,
		Log:     log,
		Metrics: httpMetrics,
		Tokens:  tokens,
		Users:   users,
		Redis:   redisClient,
		Health: controllers.NewHealthController(map[string]controllers.Pinger{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) },
			"redis":   func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		}),
		Auth:           controllers.NewAuthController(authService),
		Municipalities: controllers.NewMunicipalityController(municipalityService),
		Reports:        controllers.NewReportController(reportService),
		Staffs:         controllers.NewStaffController(staffService),
		Sponsors:       controllers.NewSponsorController(sponsorService),
		Emergency:      controllers.NewEmergencyController(emergencyService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	if err := redisClient.Close(); err != nil {
		log.WithError(err).Warn("closing Redis")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.WithError(err).Warn("disconnecting MongoDB")
	}
}
