package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/apihelpers"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db"
	httpclient "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/http-client"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/notifications"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/utils"

	portalDB "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db/portal"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_PORTAL_DB_USERNAME = "PORTAL_DB_USERNAME"
	ENV_PORTAL_DB_PASSWORD = "PORTAL_DB_PASSWORD"

	ENV_PORTAL_USER_JWT_SIGN_KEY   = "PORTAL_USER_JWT_SIGN_KEY"
	ENV_CONTENT_SERVICE_API_KEY    = "CONTENT_SERVICE_API_KEY"
	ENV_RESPONDENT_SERVICE_API_KEY = "RESPONDENT_SERVICE_API_KEY"
	ENV_REDIS_PASSWORD             = "REDIS_PASSWORD"
)

type PortalApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// API keys accepted on the internal service-to-service endpoints
	InternalAPIKeys []string `json:"internal_api_keys" yaml:"internal_api_keys"`

	UserAuthConfig struct {
		JWTSignKey   string        `json:"jwt_sign_key" yaml:"jwt_sign_key"`
		JWTExpiresIn time.Duration `json:"jwt_expires_in" yaml:"jwt_expires_in"`
	} `json:"user_auth_config" yaml:"user_auth_config"`

	// DB configs
	DBConfigs struct {
		PortalDB db.DBConfigYaml `json:"portal_db" yaml:"portal_db"`
	} `json:"db_configs" yaml:"db_configs"`

	ContentServiceConfig struct {
		RootURL  string `json:"root_url" yaml:"root_url"`
		APIKey   string `json:"api_key" yaml:"api_key"`
		Timeout  string `json:"timeout" yaml:"timeout"`
		CacheTTL string `json:"cache_ttl" yaml:"cache_ttl"`
	} `json:"content_service_config" yaml:"content_service_config"`

	RespondentServiceConfig struct {
		RootURL string `json:"root_url" yaml:"root_url"`
		APIKey  string `json:"api_key" yaml:"api_key"`
		Timeout string `json:"timeout" yaml:"timeout"`
	} `json:"respondent_service_config" yaml:"respondent_service_config"`

	RedisConfig struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis_config" yaml:"redis_config"`

	SmtpServerConfig notifications.SmtpServerList `json:"smtp_server_config" yaml:"smtp_server_config"`
}

var (
	portalDBService *portalDB.PortalDBService

	contentServiceClientConfig    httpclient.ClientConfig
	respondentServiceClientConfig httpclient.ClientConfig
	contentServiceCacheTTL        time.Duration
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	// Init DBs
	initDBs()

	initServiceClients()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	// Override secrets from environment variables
	if dbUsername := os.Getenv(ENV_PORTAL_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.PortalDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_PORTAL_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.PortalDB.Password = dbPassword
	}

	if signKey := os.Getenv(ENV_PORTAL_USER_JWT_SIGN_KEY); signKey != "" {
		conf.UserAuthConfig.JWTSignKey = signKey
	}

	if apiKey := os.Getenv(ENV_CONTENT_SERVICE_API_KEY); apiKey != "" {
		conf.ContentServiceConfig.APIKey = apiKey
	}

	if apiKey := os.Getenv(ENV_RESPONDENT_SERVICE_API_KEY); apiKey != "" {
		conf.RespondentServiceConfig.APIKey = apiKey
	}

	if redisPassword := os.Getenv(ENV_REDIS_PASSWORD); redisPassword != "" {
		conf.RedisConfig.Password = redisPassword
	}
}

func initDBs() {
	var err error
	portalDBService, err = portalDB.NewPortalDBService(db.DBConfigFromYamlObj(conf.DBConfigs.PortalDB))
	if err != nil {
		slog.Error("Error connecting to Portal DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initServiceClients() {
	contentTimeout, err := utils.ParseDurationString(conf.ContentServiceConfig.Timeout)
	if err != nil {
		panic(err)
	}
	contentServiceCacheTTL, err = utils.ParseDurationString(conf.ContentServiceConfig.CacheTTL)
	if err != nil {
		panic(err)
	}
	respondentTimeout, err := utils.ParseDurationString(conf.RespondentServiceConfig.Timeout)
	if err != nil {
		panic(err)
	}

	contentServiceClientConfig = httpclient.ClientConfig{
		RootURL: conf.ContentServiceConfig.RootURL,
		APIKey:  conf.ContentServiceConfig.APIKey,
		Timeout: contentTimeout,
	}

	respondentServiceClientConfig = httpclient.ClientConfig{
		RootURL: conf.RespondentServiceConfig.RootURL,
		APIKey:  conf.RespondentServiceConfig.APIKey,
		Timeout: respondentTimeout,
	}
}
