package main

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/handler"
	"github.com/noah-isme/campus-services/internal/middleware"
	"github.com/noah-isme/campus-services/internal/repository"
	"github.com/noah-isme/campus-services/internal/seed"
	"github.com/noah-isme/campus-services/internal/service"
	"github.com/noah-isme/campus-services/pkg/cache"
	"github.com/noah-isme/campus-services/pkg/config"
	"github.com/noah-isme/campus-services/pkg/database"
	"github.com/noah-isme/campus-services/pkg/logger"
	"github.com/noah-isme/campus-services/pkg/server"
)

// @title Students Service
// @version 1.0.0
// @description Student registry backed by MongoDB.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load(config.ServiceStudents)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()
	metrics := service.NewMetricsService(cfg.ServiceName)

	db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logr.Fatal("failed to connect mongo", zap.Error(err))
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	studentRepo := repository.NewStudentRepository(db.Collection(repository.StudentsCollection), metrics)
	if err := studentRepo.EnsureIndexes(ctx); err != nil {
		logr.Fatal("failed to create indexes", zap.Error(err))
	}

	if cfg.Seed.Enabled {
		if err := seed.Students(ctx, studentRepo, logr); err != nil {
			logr.Warn("student seeding incomplete", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis, cfg.Cache)
	if err != nil {
		logr.Warn("cache disabled", zap.Error(err))
	}
	cacheRepo := repository.NewCacheRepository(redisClient)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, redisClient != nil)

	studentSvc := service.NewStudentService(studentRepo, cacheSvc, validator.New(), logr)

	ready := func(ctx context.Context) error {
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			return err
		}
		if cacheSvc.Enabled() {
			return cacheRepo.Ping(ctx)
		}
		return nil
	}
	r := server.New(cfg, logr, ready, middleware.Metrics(metrics))
	handler.NewMetricsHandler(metrics).RegisterRoutes(r)
	handler.NewStudentHandler(studentSvc).RegisterRoutes(r)

	if err := server.Run(cfg, logr, r); err != nil {
		logr.Error("server failed", zap.Error(err))
	}
}
