package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/jobs"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/review"
	"hotelbooking/internal/modules/settings"
	"hotelbooking/internal/notification"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewAuthTokenRepository(db)
	cityRepo := repository.NewCityRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, settings served from the database")
	}
	settingsStore := cache.NewSettingsStore(settingsRepo, redisCache, cfg.SettingsCacheTTL, log)

	var mailer notification.Mailer
	if cfg.MailAPIKey != "" {
		mailer = notification.NewHTTPMailer(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailSender, cfg.MailSenderName)
	}
	dispatcher := notification.NewDispatcher(notificationRepo, userRepo, settingsRepo, mailer, log)
	defer dispatcher.Stop()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, sessionRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(hotelRepo, roomRepo, cityRepo, amenityRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, hotelRepo, settingsStore, dispatcher)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, dispatcher)
	paymentHandler := payment.NewHandler(paymentService)

	reviewService := review.NewService(reviewRepo, bookingRepo, hotelRepo, dispatcher)
	reviewHandler := review.NewHandler(reviewService)

	settingsHandler := settings.NewHandler(settingsStore)
	notificationHandler := notification.NewHandler(notificationRepo)

	runner := jobs.NewRunner(bookingRepo, sessionRepo, dispatcher, log)
	if err := runner.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduling jobs failed")
	}
	defer runner.Stop()

	if cfg.AppEnv != "dev" && cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestLogger(log))

	v1 := r.Group("/api/v1")
	{
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))

		staff := authed.Group("/")
		staff.Use(middleware.OwnerOrAdmin())

		admin := authed.Group("/")
		admin.Use(middleware.AdminOnly())

		authHandler.RegisterRoutes(v1, authed)
		catalogHandler.RegisterRoutes(v1, staff)
		bookingHandler.RegisterRoutes(authed, staff)
		paymentHandler.RegisterRoutes(authed, staff)
		reviewHandler.RegisterRoutes(v1, authed, staff, admin)
		settingsHandler.RegisterRoutes(v1, admin)
		notificationHandler.RegisterRoutes(authed)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
