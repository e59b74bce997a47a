// File: bakehouse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakehouse/config"
	"bakehouse/cron"
	"bakehouse/database"
	blockedRepo "bakehouse/database/repository/blocked"
	customerRepo "bakehouse/database/repository/customer"
	orderRepo "bakehouse/database/repository/order"
	paymentRepo "bakehouse/database/repository/payment"
	productRepo "bakehouse/database/repository/product"
	"bakehouse/handlers"
	"bakehouse/middleware"
	"bakehouse/routes"
	"bakehouse/services/availability"
	"bakehouse/services/calendar"
	"bakehouse/services/catalog"
	"bakehouse/services/customer"
	"bakehouse/services/notification"
	"bakehouse/services/order"
	"bakehouse/services/storage"
	"bakehouse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	blocked := blockedRepo.NewMongoBlockedRepo()
	orders := orderRepo.NewMongoOrderRepo()
	payments := paymentRepo.NewMongoPaymentRepo()
	products := productRepo.NewMongoProductRepo()
	customers := customerRepo.NewMongoCustomerRepo()

	// services.
	evaluator := &availability.Evaluator{
		Blocked: blocked,
		Orders:  orders,
	}
	calendarAdapter := &calendar.Adapter{
		Eval:  evaluator,
		Cache: utils.GetCacheClient(),
	}
	notificationService := &notification.FCMNotificationService{
		Customers: customers,
	}
	orderService := &order.DefaultOrderService{
		Orders:   orders,
		Payments: payments,
		Products: products,
		Eval:     evaluator,
		Calendar: calendarAdapter,
		Notifier: notificationService,
		Intents:  order.StripeIntents{},
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: products,
	}
	customerService := &customer.DefaultCustomerService{
		Repo:      customers,
		AuthCache: utils.GetAuthCacheClient(),
	}

	// Background unpaid-order sweep.
	cron.InitSweepWorker(orderService)

	// Assemble the handler bundle.
	bundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(evaluator, calendarAdapter),
		Orders:       handlers.NewOrderHandler(orderService),
		Admin:        handlers.NewAdminHandler(orderService, blocked, calendarAdapter),
		Products:     handlers.NewProductHandler(catalogService),
		Auth:         handlers.NewAuthHandler(customerService),
		Storage:      handlers.NewStorageHandler(storageService),
	}
	routes.RegisterRoutes(router, bundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
