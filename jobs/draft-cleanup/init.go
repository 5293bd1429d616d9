package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/utils"

	portalDB "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db/portal"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_PORTAL_DB_USERNAME = "PORTAL_DB_USERNAME"
	ENV_PORTAL_DB_PASSWORD = "PORTAL_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		PortalDB db.DBConfigYaml `json:"portal_db" yaml:"portal_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Draft modifications untouched for longer than this are removed
	DraftRetention string `json:"draft_retention" yaml:"draft_retention"`
}

var conf config

var (
	portalDBService *portalDB.PortalDBService
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

	// init db
	initDBs()
}

func secretsOverride() {
	// Override secrets from environment variables
	if dbUsername := os.Getenv(ENV_PORTAL_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.PortalDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_PORTAL_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.PortalDB.Password = dbPassword
	}
}

func initDBs() {
	var err error
	portalDBService, err = portalDB.NewPortalDBService(db.DBConfigFromYamlObj(conf.DBConfigs.PortalDB))
	if err != nil {
		panic(err)
	}
}
