package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staypay/config"
	"staypay/cron"
	"staypay/handlers"
	"staypay/middleware"
	"staypay/routes"
	"staypay/services/customer"
	"staypay/services/intent"
	"staypay/services/notification"
	"staypay/services/paymentlink"
	"staypay/services/pricing"
	"staypay/services/processor"
	"staypay/services/success"
	"staypay/services/webhook"
	"staypay/templates"
	"staypay/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if cfg.StripeSecretKey == "" {
		logger.Warn("main: STRIPE_SECRET_KEY is not set, processor calls will fail")
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Load()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse page templates: %v", err)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Webhook side effects run inline unless the queue is enabled.
	logNotifier := notification.NewLogNotifier(logger)
	var notifier notification.BookingNotifier = logNotifier
	var queueClient *asynq.Client
	var worker *asynq.Server
	if cfg.WebhookQueueEnabled {
		if err := utils.InitQueueClient(); err != nil {
			logger.Sugar().Warnf("main: queue redis not reachable yet: %v", err)
		}
		utils.StartHealthMonitor(rootCtx, func(ctx context.Context) error {
			return utils.GetQueueClient().Ping(ctx).Err()
		}, 10*time.Second)

		queueClient = asynq.NewClient(utils.QueueRedisOpt())
		notifier = notification.NewQueueNotifier(queueClient, logger)
		worker = cron.InitWebhookWorker(logNotifier, logger)
	}

	// services.
	stripeProcessor := processor.NewStripeProcessor(cfg.StripeSecretKey)
	customerService := customer.NewCustomerService(stripeProcessor, logger)
	intentService := intent.NewIntentService(stripeProcessor, customerService, cfg.DefaultCurrency, logger)
	paymentLinkService := paymentlink.NewPaymentLinkService(
		stripeProcessor,
		paymentlink.NewBookingIDGenerator(cfg.BookingIDPrefix),
		paymentlink.Options{
			DefaultCurrency:   cfg.DefaultCurrency,
			BaseURL:           cfg.PublicBaseURL,
			ShippingCountries: cfg.AllowedShippingCountries(),
			Images:            pricing.Images{Room: cfg.RoomImageURL, AddOn: cfg.AddOnImageURL},
		},
		logger,
	)
	resolver := success.NewResolver(stripeProcessor, logger)
	dispatcher := webhook.NewDispatcher(notifier, logger)

	// handlers.
	pageHandler := handlers.NewPageHandler(tmpl, cfg.StripePublishableKey, resolver, logger)
	paymentHandler := handlers.NewPaymentHandler(intentService, customerService, logger)
	paymentLinkHandler := handlers.NewPaymentLinkHandler(paymentLinkService, logger)
	webhookHandler := handlers.NewWebhookHandler(dispatcher, logger)

	handlerBundle := &handlers.HandlerBundle{
		IndexHandler:               pageHandler.Index,
		SuccessHandler:             pageHandler.Success,
		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntent,
		CreateSetupIntentHandler:   paymentHandler.CreateSetupIntent,
		UpdateCustomerHandler:      paymentHandler.UpdateCustomer,
		CreatePaymentLinkHandler:   paymentLinkHandler.CreatePaymentLink,
		WebhookHandler:             webhookHandler.Receive,
		AssetsDir:                  cfg.AssetsDir,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "3000"
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if client := utils.GetQueueClient(); client != nil {
		_ = client.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}
