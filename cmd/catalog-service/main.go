package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/vkozyar/catalog-service/internal/config"
	httpAPI "github.com/vkozyar/catalog-service/internal/http"
	"github.com/vkozyar/catalog-service/internal/http/controller"
	"github.com/vkozyar/catalog-service/internal/logger"
	"github.com/vkozyar/catalog-service/internal/metrics"
	"github.com/vkozyar/catalog-service/internal/repository"
	"github.com/vkozyar/catalog-service/internal/service"
	sqspkg "github.com/vkozyar/catalog-service/internal/sqs"
	"github.com/vkozyar/catalog-service/internal/storage"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)
	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()
	db, err := repository.StartDB(ctx, conf.Database)
	handleErr("starting database", err)

	productRepository := repository.NewProductRepository(db)
	categoryRepository := repository.NewCategoryRepository(db)
	toppingRepository := repository.NewToppingRepository(db)

	sqsClient, err := sqspkg.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
	handleErr("creating SQS client", err)

	publisher := sqspkg.NewPublisher(sqsClient, conf.Broker.ProductTopic, conf.Broker.ToppingTopic)
	if err := publisher.Connect(ctx); err != nil {
		handleErr("connecting event publisher", err)
	}

	imageStorage, err := storage.New(ctx, conf.AWS)
	if err != nil {
		if closeErr := publisher.Close(); closeErr != nil {
			slog.Error("failed to close event publisher", slog.Any("err", closeErr))
		}
		handleErr("creating image storage", err)
	}

	productService := service.NewProductService(productRepository, imageStorage, publisher, conf.Broker.ProductTopic)
	categoryService := service.NewCategoryService(categoryRepository)
	toppingService := service.NewToppingService(toppingRepository, imageStorage, publisher, conf.Broker.ToppingTopic)

	ctr := controller.New()
	productCtr := controller.NewProductController(productService)
	categoryCtr := controller.NewCategoryController(categoryService)
	toppingCtr := controller.NewToppingController(toppingService)

	httpServer := gin.Default()
	httpServer = httpAPI.InitRouter(conf, httpServer, ctr, productCtr, categoryCtr, toppingCtr)

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
	if err := publisher.Close(); err != nil {
		slog.Error("failed to close event publisher", slog.Any("err", err))
	}
	// TODO: stop httpServer gracefully
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
