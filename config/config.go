package config

const (
	EnvKeyDatabaseURL = "MARCDB_DATABASE_URL"
	EnvKeyLogDir      = "MARCDB_LOG_DIR"
	EnvKeyHTTPHost    = "MARCDB_HTTP_HOST"
	EnvKeyHTTPPort    = "MARCDB_HTTP_PORT"
	EnvKeyDebug       = "MARCDB_DEBUG"
)

/*
AppConfig carries the process-level settings. It is populated from the
environment (plus an optional .env file) in main; packages receive the values
they need through their own Config structs.
*/
type AppConfig struct {
	DatabaseURL string `mapstructure:"MARCDB_DATABASE_URL"`
	LogDir      string `mapstructure:"MARCDB_LOG_DIR"`
	HTTPHost    string `mapstructure:"MARCDB_HTTP_HOST"`
	HTTPPort    int    `mapstructure:"MARCDB_HTTP_PORT"`
	Debug       bool   `mapstructure:"MARCDB_DEBUG"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		DatabaseURL: "sqlite://marc.db",
		LogDir:      "logs",
		HTTPHost:    "",
		HTTPPort:    8010,
		Debug:       false,
	}
}
