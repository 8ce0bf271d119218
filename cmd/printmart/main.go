package main

import (
	"context"
	"fmt"

	"github.com/hanifwid/printmart/internal/adapter/auth"
	"github.com/hanifwid/printmart/internal/adapter/client/imagehost"
	"github.com/hanifwid/printmart/internal/adapter/config"
	"github.com/hanifwid/printmart/internal/adapter/handler/http"
	"github.com/hanifwid/printmart/internal/adapter/logger"
	"github.com/hanifwid/printmart/internal/adapter/realtime"
	"github.com/hanifwid/printmart/internal/adapter/storage"
	"github.com/hanifwid/printmart/internal/adapter/storage/repository"
	"github.com/hanifwid/printmart/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	publisher, err := realtime.NewPublisher(conf.Kafka, log.Named("Realtime"))
	if err != nil {
		log.Error("realtime publisher creating error", zap.Error(err))
		return
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("realtime publisher close error", zap.Error(err))
		}
	}()

	images, err := imagehost.NewClient(conf.ImageHost, log.Named("ImageHost"))
	if err != nil {
		log.Error("image host client creating error", zap.Error(err))
		return
	}

	notificationSvc, err := service.NewNotificationService(repo, publisher, log.Named("Notifications"))
	if err != nil {
		log.Error("notification service creating error", zap.Error(err))
		return
	}
	orderSvc, err := service.NewOrderService(repo, notificationSvc, log.Named("Orders"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	catalogSvc, err := service.NewCatalogService(repo, images, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog service creating error", zap.Error(err))
		return
	}
	contentSvc, err := service.NewContentService(repo, images, log.Named("Content"))
	if err != nil {
		log.Error("content service creating error", zap.Error(err))
		return
	}
	userSvc, err := service.NewUserService(repo, tokenService, log.Named("Users"))
	if err != nil {
		log.Error("user service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(userSvc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(catalogSvc, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orderSvc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	notificationHandler, err := http.NewNotificationHandler(notificationSvc, log.Named("Notification handler"))
	if err != nil {
		log.Error("notification handler creating error", zap.Error(err))
		return
	}
	contentHandler, err := http.NewContentHandler(contentSvc, log.Named("Content handler"))
	if err != nil {
		log.Error("content handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, productHandler, orderHandler, notificationHandler, contentHandler,
		log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
