package main

import (
	"fmt"
	"os"

	"github.com/omran/construction-projects/internal/auth"
	"github.com/omran/construction-projects/internal/config"
	"github.com/omran/construction-projects/internal/db"
	"github.com/omran/construction-projects/internal/excel"
	httphandler "github.com/omran/construction-projects/internal/http"
	"github.com/omran/construction-projects/internal/http/middleware"
	"github.com/omran/construction-projects/internal/logger"
	"github.com/omran/construction-projects/internal/pdf"
	"github.com/omran/construction-projects/internal/repository"
	"github.com/omran/construction-projects/internal/service"
	"github.com/omran/construction-projects/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	projectRepo := repository.NewProjectRepository(database)
	sitePlanRepo := repository.NewSitePlanRepository(database)
	licenseRepo := repository.NewLicenseRepository(database)
	contractRepo := repository.NewContractRepository(database)
	awardingRepo := repository.NewAwardingRepository(database)
	fileRepo := repository.NewFileRepository(database)

	uploads, err := storage.NewStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL, fileRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init upload storage")
	}

	pdfGenerator, err := pdf.NewGenerator(cfg.PDF.FontPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	excelGenerator := excel.NewGenerator()

	projectService := service.NewProjectService(projectRepo)
	sitePlanService := service.NewSitePlanService(projectRepo, sitePlanRepo, uploads)
	licenseService := service.NewLicenseService(projectRepo, sitePlanRepo, licenseRepo, uploads)
	contractService := service.NewContractService(projectRepo, licenseRepo, contractRepo, uploads)
	awardingService := service.NewAwardingService(projectRepo, awardingRepo)
	exportService := service.NewExportService(projectRepo, sitePlanRepo, licenseRepo, contractRepo, awardingRepo, pdfGenerator, excelGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(projectService, sitePlanService, licenseService, contractService, awardingService, exportService, uploads, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, middleware.RequireWriter(), cfg.Environment, cfg.Uploads.Dir, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting projects service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
