package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/apihelpers"
	contentservice "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/content-service"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/notifications"
	respondentservice "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/respondent-service"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/services/portal-api/apihandlers"
)

var conf PortalApiConfig

func main() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     conf.RedisConfig.Addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.DB,
	})

	contentService := contentservice.NewContentService(contentServiceClientConfig, redisClient, contentServiceCacheTTL)
	respondentService := respondentservice.NewRespondentService(respondentServiceClientConfig)

	smtpClients, err := notifications.NewSmtpClients(conf.SmtpServerConfig)
	if err != nil {
		// the portal can run without mail sending, submissions still work
		slog.Warn("smtp clients not available", slog.String("error", err.Error()))
		smtpClients = nil
	}

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.UserAuthConfig.JWTSignKey,
		conf.UserAuthConfig.JWTExpiresIn,
		portalDBService,
		contentService,
		respondentService,
		smtpClients,
		conf.InternalAPIKeys,
	)
	v1APIHandlers.AddAuthAPI(v1Root)
	v1APIHandlers.AddQuestionSetAPI(v1Root)
	v1APIHandlers.AddModificationsAPI(v1Root)
	v1APIHandlers.AddInternalAPI(v1Root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "portal-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Portal API on port " + conf.GinConfig.Port)
	if !conf.GinConfig.MTLS.Use {
		err := router.Run(":" + conf.GinConfig.Port)
		if err != nil {
			slog.Error("Exited Portal API", slog.String("error", err.Error()))
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
			slog.Error("Exited Portal API", slog.String("error", err.Error()))
			return
		}
	}
}
