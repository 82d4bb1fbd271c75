package main

import (
	"log/slog"
	"os"

	"github.com/Barcodehub/metrics-api-reactive/pkg/db"
	externalservices "github.com/Barcodehub/metrics-api-reactive/pkg/external-services"
	"github.com/Barcodehub/metrics-api-reactive/pkg/utils"
	"gopkg.in/yaml.v2"

	reportDB "github.com/Barcodehub/metrics-api-reactive/pkg/db/report"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_METRICS_DB_USERNAME = "METRICS_DB_USERNAME"
	ENV_METRICS_DB_PASSWORD = "METRICS_DB_PASSWORD"
)

type ReportRefreshConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Reports updated more recently than this are left untouched.
	MinReportAge string `json:"min_report_age" yaml:"min_report_age"`

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
	conf            ReportRefreshConfig
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
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_METRICS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MetricsDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_METRICS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MetricsDB.Password = dbPassword
	}

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
