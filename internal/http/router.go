package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the resource routes. Reads are open; exports require
// authentication; mutations additionally require a writing role.
func NewRouter(h *Handler, authMiddleware, writeMiddleware gin.HandlerFunc, environment, uploadsDir string, allowedOrigins []string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.Static("/uploads", uploadsDir)

	api := router.Group("/api")
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:projectID", h.getProject)
	api.GET("/projects/:projectID/siteplan", h.getSitePlan)
	api.GET("/projects/:projectID/license", h.getLicense)
	api.GET("/projects/:projectID/contract", h.getContract)
	api.GET("/projects/:projectID/awarding", h.getAwarding)

	protected := api.Group("/")
	protected.Use(authMiddleware)
	protected.GET("/projects/export", h.exportProjects)
	protected.GET("/projects/:projectID/summary/pdf", h.projectSummaryPDF)

	writes := protected.Group("/")
	writes.Use(writeMiddleware)
	writes.POST("/projects", h.createProject)
	writes.PATCH("/projects/:projectID", h.updateProject)
	writes.DELETE("/projects/:projectID", h.deleteProject)

	writes.POST("/projects/:projectID/siteplan", h.createSitePlan)
	writes.PATCH("/projects/:projectID/siteplan", h.updateSitePlan)
	writes.DELETE("/projects/:projectID/siteplan", h.deleteSitePlan)

	writes.POST("/projects/:projectID/license", h.createLicense)
	writes.PATCH("/projects/:projectID/license", h.updateLicense)
	writes.DELETE("/projects/:projectID/license", h.deleteLicense)
	writes.POST("/projects/:projectID/license/restore-owners", h.restoreOwners)

	writes.POST("/projects/:projectID/contract", h.createContract)
	writes.PATCH("/projects/:projectID/contract", h.updateContract)
	writes.DELETE("/projects/:projectID/contract", h.deleteContract)

	writes.POST("/projects/:projectID/awarding", h.createAwarding)
	writes.PATCH("/projects/:projectID/awarding", h.updateAwarding)
	writes.DELETE("/projects/:projectID/awarding", h.deleteAwarding)

	return router
}
