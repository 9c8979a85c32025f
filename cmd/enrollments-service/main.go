package main

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/client"
	"github.com/noah-isme/campus-services/internal/handler"
	"github.com/noah-isme/campus-services/internal/middleware"
	"github.com/noah-isme/campus-services/internal/repository"
	"github.com/noah-isme/campus-services/internal/service"
	"github.com/noah-isme/campus-services/pkg/config"
	"github.com/noah-isme/campus-services/pkg/database"
	"github.com/noah-isme/campus-services/pkg/logger"
	"github.com/noah-isme/campus-services/pkg/server"
)

// @title Enrollments Service
// @version 1.0.0
// @description Enrolls students in courses, resolving both from their own services.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load(config.ServiceEnrollments)
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

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	enrollmentRepo := repository.NewEnrollmentRepository(db, metrics)
	if err := enrollmentRepo.EnsureSchema(ctx); err != nil {
		logr.Fatal("failed to prepare schema", zap.Error(err))
	}

	students := client.NewStudentClient(cfg.Clients.StudentsBaseURL, cfg.Clients.Timeout, metrics, logr)
	courses := client.NewCourseClient(cfg.Clients.CoursesBaseURL, cfg.Clients.Timeout, metrics, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, students, courses, validator.New(), logr)

	r := server.New(cfg, logr, enrollmentRepo.Ping, middleware.Metrics(metrics))
	handler.NewMetricsHandler(metrics).RegisterRoutes(r)
	handler.NewEnrollmentHandler(enrollmentSvc).RegisterRoutes(r)

	if err := server.Run(cfg, logr, r); err != nil {
		logr.Error("server failed", zap.Error(err))
	}
}
