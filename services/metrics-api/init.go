package main

import (
	"log/slog"
	"os"

	"github.com/Barcodehub/metrics-api-reactive/pkg/apihelpers"
	"github.com/Barcodehub/metrics-api-reactive/pkg/db"
	externalservices "github.com/Barcodehub/metrics-api-reactive/pkg/external-services"
	"github.com/Barcodehub/metrics-api-reactive/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	reportDB "github.com/Barcodehub/metrics-api-reactive/pkg/db/report"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_METRICS_DB_USERNAME = "METRICS_DB_USERNAME"
	ENV_METRICS_DB_PASSWORD = "METRICS_DB_PASSWORD"

	ENV_USER_JWT_SIGN_KEY = "USER_JWT_SIGN_KEY"
)

type MetricsApiConfig struct {
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

	UserJWTConfig struct {
		SignKey string `json:"sign_key" yaml:"sign_key"`
	} `json:"user_jwt_config" yaml:"user_jwt_config"`

	// DB configs
	DBConfigs struct {
		MetricsDB db.DBConfigYaml `json:"metrics_db" yaml:"metrics_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Upstream service configs
	ExternalServices struct {
		BootcampService externalservices.ExternalServiceConfig `json:"bootcamp_service" yaml:"bootcamp_service"`
		UserService     externalservices.ExternalServiceConfig `json:"user_service" yaml:"user_service"`
	} `json:"external_services" yaml:"external_services"`
}

var (
	conf            MetricsApiConfig
	reportDBService *reportDB.ReportDBService
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
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	// Override secrets from environment variables
	secretsOverride()

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_METRICS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MetricsDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_METRICS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MetricsDB.Password = dbPassword
	}

	if signKey := os.Getenv(ENV_USER_JWT_SIGN_KEY); signKey != "" {
		conf.UserJWTConfig.SignKey = signKey
	}

	// Override API keys for upstream services
	overrideExternalServiceAPIKey(&conf.ExternalServices.BootcampService)
	overrideExternalServiceAPIKey(&conf.ExternalServices.UserService)
}

func overrideExternalServiceAPIKey(service *externalservices.ExternalServiceConfig) {
	if service.Name == "" {
		return
	}

	envVarName := utils.GenerateExternalServiceAPIKeyEnvVarName(service.Name)
	if apiKey := os.Getenv(envVarName); apiKey != "" {
		service.APIKey = apiKey
	}
}

func initDBs() {
	var err error
	reportDBService, err = reportDB.NewReportDBService(db.DBConfigFromYamlObj(conf.DBConfigs.MetricsDB))
	if err != nil {
		slog.Error("Error connecting to Metrics DB", slog.String("error", err.Error()))
		return
	}
}
