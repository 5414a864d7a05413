package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appbooking "github.com/littlelemon/backend/internal/application/booking"
	appcart "github.com/littlelemon/backend/internal/application/cart"
	appcatalog "github.com/littlelemon/backend/internal/application/catalog"
	appidentity "github.com/littlelemon/backend/internal/application/identity"
	apprating "github.com/littlelemon/backend/internal/application/rating"
	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/infrastructure/auth"
	"github.com/littlelemon/backend/internal/infrastructure/cache"
	"github.com/littlelemon/backend/internal/infrastructure/config"
	"github.com/littlelemon/backend/internal/infrastructure/logger"
	"github.com/littlelemon/backend/internal/infrastructure/persistence"
	"github.com/littlelemon/backend/internal/interfaces/http/handler"
	"github.com/littlelemon/backend/internal/interfaces/http/middleware"
	"github.com/littlelemon/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewForEnvironment(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync(log)

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	throttleStore := cache.NewThrottleStore(cfg.Redis, cfg.Throttle.Window, log)
	defer throttleStore.Close()

	jwtService := auth.NewJWTService(cfg.JWT)
	throttler := middleware.NewThrottler(throttleStore, cfg.Throttle.Window, log)

	// repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	menuItemRepo := persistence.NewGormMenuItemRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	ratingRepo := persistence.NewGormRatingRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	groupRepo := persistence.NewGormGroupRepository(db.DB)

	// services
	menuItemService := appcatalog.NewMenuItemService(menuItemRepo, categoryRepo, log)
	categoryService := appcatalog.NewCategoryService(categoryRepo, log)
	cartService := appcart.NewService(cartRepo, menuItemRepo, log)
	ratingService := apprating.NewService(ratingRepo, menuItemRepo, log)
	bookingService := appbooking.NewService(bookingRepo, log)
	authService := appidentity.NewAuthService(userRepo, jwtService, log)
	groupService := appidentity.NewGroupService(userRepo, groupRepo, log)

	handlers := router.Handlers{
		MenuItems:    handler.NewMenuItemHandler(menuItemService, log),
		Categories:   handler.NewCategoryHandler(categoryService, log),
		Cart:         handler.NewCartHandler(cartService, log),
		Ratings:      handler.NewRatingHandler(ratingService, log),
		Bookings:     handler.NewBookingHandler(bookingService, log),
		Auth:         handler.NewAuthHandler(authService, log),
		ManagerGroup: handler.NewGroupHandler(groupService, identity.GroupManager, log),
		DeliveryCrew: handler.NewGroupHandler(groupService, identity.GroupDeliveryCrew, log),
		System:       handler.NewSystemHandler(db, log),
	}

	engine := router.New(cfg, jwtService, throttler, handlers, log)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()
	log.Info("listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
