package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/cctvshop/storefront-api/internal/config"
	authHandler "github.com/cctvshop/storefront-api/internal/handler/auth"
	bookingHandler "github.com/cctvshop/storefront-api/internal/handler/booking"
	catalogHandler "github.com/cctvshop/storefront-api/internal/handler/catalog"
	healthHandler "github.com/cctvshop/storefront-api/internal/handler/health"
	paymentHandler "github.com/cctvshop/storefront-api/internal/handler/payment"
	technicianHandler "github.com/cctvshop/storefront-api/internal/handler/technician"
	userHandler "github.com/cctvshop/storefront-api/internal/handler/user"
	"github.com/cctvshop/storefront-api/internal/middleware"
	"github.com/cctvshop/storefront-api/internal/repository/postgres"
	"github.com/cctvshop/storefront-api/internal/router"
	authService "github.com/cctvshop/storefront-api/internal/service/auth"
	bookingService "github.com/cctvshop/storefront-api/internal/service/booking"
	catalogService "github.com/cctvshop/storefront-api/internal/service/catalog"
	paymentService "github.com/cctvshop/storefront-api/internal/service/payment"
	technicianService "github.com/cctvshop/storefront-api/internal/service/technician"
	userService "github.com/cctvshop/storefront-api/internal/service/user"
	"github.com/cctvshop/storefront-api/pkg/auth"
	"github.com/cctvshop/storefront-api/pkg/logger"
	"github.com/cctvshop/storefront-api/pkg/payment"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	bookingRepo := postgres.NewBookingRepository(base)
	catalogRepo := postgres.NewCatalogRepository(base)
	technicianRepo := postgres.NewTechnicianRepository(base)
	paymentRepo := postgres.NewPaymentRepository(base)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	authSvc := authService.NewService(userRepo, jwtSvc)
	bookingSvc := bookingService.NewService(bookingRepo)
	catalogSvc := catalogService.NewService(catalogRepo)
	technicianSvc := technicianService.NewService(technicianRepo)
	userSvc := userService.NewService(userRepo)
	paymentSvc := paymentService.NewService(gateway, paymentRepo)

	authMW := middleware.NewAuthMiddleware(authSvc, userSvc)

	r := router.NewRouter(
		authMW,
		healthHandler.NewHandler(db),
		catalogHandler.NewHandler(catalogSvc),
		bookingHandler.NewHandler(bookingSvc),
		authHandler.NewHandler(authSvc),
		userHandler.NewHandler(userSvc),
		technicianHandler.NewHandler(technicianSvc),
		paymentHandler.NewHandler(paymentSvc),
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RPS),
			RateBurst:  cfg.RateLimit.Burst,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info(fmt.Sprintf("starting server on port %d", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
