package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Barcodehub/metrics-api-reactive/pkg/apihelpers"
	externalservices "github.com/Barcodehub/metrics-api-reactive/pkg/external-services"
	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
	"github.com/Barcodehub/metrics-api-reactive/services/metrics-api/apihandlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if reportDBService == nil {
		slog.Error("Metrics DB not available, exiting")
		return
	}

	bootcampClient := externalservices.NewBootcampClient(conf.ExternalServices.BootcampService)
	userClient := externalservices.NewUserClient(conf.ExternalServices.UserService)

	reportService := report.NewReportService(reportDBService, bootcampClient, userClient)

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length", "X-Message-Id"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length", "X-Message-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	root := router.Group("")

	apiHandlers := apihandlers.NewHTTPHandler(
		conf.UserJWTConfig.SignKey,
		reportService,
	)
	apiHandlers.AddBootcampMetricsAPI(root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "metrics-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Metrics API on port " + conf.GinConfig.Port)
	if !conf.GinConfig.MTLS.Use {
		err := router.Run(":" + conf.GinConfig.Port)
		if err != nil {
			slog.Error("Exited Metrics API", slog.String("error", err.Error()))
			return
		}
	} else {
		// Create tls config for mutual TLS
		tlsConfig, err := apihelpers.LoadTLSConfig(conf.GinConfig.MTLS.CertificatePaths)
		if err != nil {
			slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
			return
		}

		server := &http.Server{
			Addr:      ":" + conf.GinConfig.Port,
			Handler:   router,
			TLSConfig: tlsConfig,
		}

		err = server.ListenAndServeTLS(conf.GinConfig.MTLS.CertificatePaths.ServerCertPath, conf.GinConfig.MTLS.CertificatePaths.ServerKeyPath)
		if err != nil {
			slog.Error("Exited Metrics API", slog.String("error", err.Error()))
			return
		}
	}
}
