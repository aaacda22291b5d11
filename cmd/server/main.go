package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"invensight/internal/config"
	"invensight/internal/handler"
	"invensight/internal/report"
	"invensight/internal/repository/postgres"
	"invensight/internal/router"
	"invensight/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; in deployed environments config comes from the
	// process environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	productRepo := postgres.NewProductRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	productSvc := service.NewProductService(productRepo)
	reportSvc := service.NewReportService(productRepo, report.FirstHalfOfYear(cfg.Report.WindowYear))
	userSvc := service.NewUserService(userRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	reportH := handler.NewReportHandler(reportSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, productH, reportH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
