package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"properly-backend/internal/auth"
	"properly-backend/internal/blog"
	"properly-backend/internal/cache"
	"properly-backend/internal/config"
	"properly-backend/internal/contact"
	"properly-backend/internal/db"
	"properly-backend/internal/faqs"
	"properly-backend/internal/handlers"
	"properly-backend/internal/locations"
	"properly-backend/internal/metrics"
	"properly-backend/internal/middleware"
	"properly-backend/internal/notifications"
	"properly-backend/internal/services"
	"properly-backend/internal/storage"
	"properly-backend/internal/testimonials"
	"properly-backend/internal/validation"

	gcs "cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	metrics.Init()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "properly-backend",
		}
	}

	crmClient := notifications.NewWebhookClient(cfg.CRMWebhookURL, cfg.CRMAPIKey)
	if cfg.CRMWebhookURL == "" {
		logger.Info("crm webhook disabled")
	} else {
		logger.Info("crm webhook enabled")
	}

	var uploader storage.Uploader
	if cfg.UploadBucket != "" {
		gcsClient, err := gcs.NewClient(ctx)
		if err != nil {
			logger.Error("storage client failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer gcsClient.Close()
		uploader, err = storage.NewGCSUploader(gcsClient, cfg.UploadBucket)
		if err != nil {
			logger.Error("storage client failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("uploads enabled", slog.String("bucket", cfg.UploadBucket))
	} else {
		logger.Info("uploads disabled")
	}

	val := validation.New()

	server := &handlers.Server{
		Cfg:      cfg,
		Cols:     cols,
		Val:      val,
		Log:      logger,
		Cache:    cacheStore,
		Auth:     jwtManager,
		Uploader: uploader,
	}

	contactRepo := contact.NewRepository(cols.ContactSubmissions)
	contactService := contact.NewService(contactRepo, cfg.Timezone, crmClient)
	contactHandler := contact.NewHandler(contactService, val, logger)

	blogRepo := blog.NewRepository(cols.BlogPosts)
	blogService := blog.NewService(blogRepo, cfg.Timezone)
	blogHandler := blog.NewHandler(blogService, val, logger)

	servicesManager := services.NewManager(services.NewRepository(cols.Services), cfg.Timezone)
	servicesHandler := services.NewHandler(servicesManager, val, logger, cacheStore, cacheTTL)

	locationsManager := locations.NewManager(locations.NewRepository(cols.Locations), cfg.Timezone)
	locationsHandler := locations.NewHandler(locationsManager, val, logger, cacheStore, cacheTTL)

	faqsManager := faqs.NewManager(faqs.NewRepository(cols.FAQs), cfg.Timezone)
	faqsHandler := faqs.NewHandler(faqsManager, val, logger, cacheStore, cacheTTL)

	testimonialsManager := testimonials.NewManager(testimonials.NewRepository(cols.Testimonials), cfg.Timezone)
	testimonialsHandler := testimonials.NewHandler(testimonialsManager, val, logger, cacheStore, cacheTTL)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(metrics.Middleware)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", server.Health)
		api.Get("/blog", blogHandler.PublicList)
		api.Get("/blog/{slug}", blogHandler.PublicGetBySlug)
		api.Get("/services", servicesHandler.PublicList)
		api.Get("/services/{slug}", servicesHandler.PublicGetBySlug)
		api.Get("/locations", locationsHandler.PublicList)
		api.Get("/locations/{slug}", locationsHandler.PublicGetBySlug)
		api.Get("/faqs", faqsHandler.PublicList)
		api.Get("/testimonials", testimonialsHandler.PublicList)
		api.With(contactLimiter.Middleware).Post("/contact", contactHandler.Create)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/register", server.AdminRegister)
			admin.Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// chi requires middlewares before routes, so the
			// protected surface lives in a sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))

				protected.Get("/me", server.AdminMe)
				protected.Get("/dashboard", server.AdminDashboard)
				protected.Post("/upload", server.AdminUpload)
				protected.Post("/users", server.AdminCreateUser)
				protected.Patch("/users/{id}/password", server.AdminUpdateUserPassword)

				protected.Get("/blog", blogHandler.AdminList)
				protected.Post("/blog", blogHandler.AdminCreate)
				protected.Put("/blog/{id}", blogHandler.AdminUpdate)
				protected.Delete("/blog/{id}", blogHandler.AdminDelete)

				protected.Get("/services", servicesHandler.AdminList)
				protected.Post("/services", servicesHandler.AdminCreate)
				protected.Put("/services/{id}", servicesHandler.AdminUpdate)
				protected.Delete("/services/{id}", servicesHandler.AdminDelete)

				protected.Get("/locations", locationsHandler.AdminList)
				protected.Post("/locations", locationsHandler.AdminCreate)
				protected.Put("/locations/{id}", locationsHandler.AdminUpdate)
				protected.Delete("/locations/{id}", locationsHandler.AdminDelete)

				protected.Get("/faqs", faqsHandler.AdminList)
				protected.Post("/faqs", faqsHandler.AdminCreate)
				protected.Put("/faqs/{id}", faqsHandler.AdminUpdate)
				protected.Delete("/faqs/{id}", faqsHandler.AdminDelete)

				protected.Get("/testimonials", testimonialsHandler.AdminList)
				protected.Post("/testimonials", testimonialsHandler.AdminCreate)
				protected.Put("/testimonials/{id}", testimonialsHandler.AdminUpdate)
				protected.Delete("/testimonials/{id}", testimonialsHandler.AdminDelete)

				protected.Get("/contacts", contactHandler.AdminList)
				protected.Get("/contacts/{id}", contactHandler.AdminGetByID)
				protected.Patch("/contacts/{id}/status", contactHandler.AdminUpdateStatus)
				protected.Delete("/contacts/{id}", contactHandler.AdminDelete)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
