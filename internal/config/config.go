package config

import (
	"strings"

	"keyword-insight/pkg/api"
	"keyword-insight/pkg/errs"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	NaverAPI NaverAPIConfig `mapstructure:"naver_api"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// NaverAPIConfig bundles the five credentials both endpoints need. All of
// them are required; a missing one stops the whole pipeline.
type NaverAPIConfig struct {
	AdAPIKey            string `mapstructure:"ad_api_key"`
	AdSecretKey         string `mapstructure:"ad_secret_key"`
	AdCustomerID        string `mapstructure:"ad_customer_id"`
	DatalabClientID     string `mapstructure:"datalab_client_id"`
	DatalabClientSecret string `mapstructure:"datalab_client_secret"`
}

type CacheConfig struct {
	Size       int `mapstructure:"size"`
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}

// ValidateCredentials returns a ConfigurationError naming every missing
// credential field, or nil when all five are set.
func (c NaverAPIConfig) ValidateCredentials() error {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("AD_API_KEY", c.AdAPIKey)
	check("AD_SECRET_KEY", c.AdSecretKey)
	check("AD_CUSTOMER_ID", c.AdCustomerID)
	check("DATALAB_CLIENT_ID", c.DatalabClientID)
	check("DATALAB_CLIENT_SECRET", c.DatalabClientSecret)

	if len(missing) > 0 {
		return &errs.ConfigurationError{Missing: missing}
	}
	return nil
}

// AdCredentials maps the config onto the volume client's credential bundle.
func (c NaverAPIConfig) AdCredentials() api.AdCredentials {
	return api.AdCredentials{
		APIKey:     c.AdAPIKey,
		SecretKey:  c.AdSecretKey,
		CustomerID: c.AdCustomerID,
	}
}

// DatalabCredentials maps the config onto the trend client's credential bundle.
func (c NaverAPIConfig) DatalabCredentials() api.DatalabCredentials {
	return api.DatalabCredentials{
		ClientID:     c.DatalabClientID,
		ClientSecret: c.DatalabClientSecret,
	}
}

// SetupGuide is shown instead of a stack trace when credentials are
// missing, mirroring the setup instructions users need to get going.
func SetupGuide() string {
	return `Keyword Insight needs five API credentials.

Create config/config.yaml (or export the matching env vars):

  naver_api:
    ad_api_key: "<search-ad license key>"
    ad_secret_key: "<search-ad secret key>"
    ad_customer_id: "123456"
    datalab_client_id: "<Datalab client id>"
    datalab_client_secret: "<Datalab client secret>"

Environment variables AD_API_KEY, AD_SECRET_KEY, AD_CUSTOMER_ID,
DATALAB_CLIENT_ID and DATALAB_CLIENT_SECRET override the file, and a
.env file in the working directory is loaded automatically.`
}
