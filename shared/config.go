package shared

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DEFAULT_DATABASE_URL      = "sqlite:///./alerts.db"
	DEFAULT_PORT              = 8000
	DEFAULT_SMTP_PORT         = 587
	DEFAULT_TOKEN_TTL_MINUTES = 60
	DEFAULT_KAFKA_TOPIC       = "coastal-alerts"
)

// envBindings maps config keys to the environment variables the service
// has always been configured with. They override values from the config file.
var envBindings = map[string]string{
	"database.url":                  "DATABASE_URL",
	"database.passPhrase":           "DATABASE_PASSPHRASE",
	"twilio.accountSid":             "TWILIO_ACCOUNT_SID",
	"twilio.authToken":              "TWILIO_AUTH_TOKEN",
	"twilio.phoneNumber":            "TWILIO_PHONE_NUMBER",
	"smtp.host":                     "SMTP_HOST",
	"smtp.port":                     "SMTP_PORT",
	"smtp.username":                 "SMTP_USERNAME",
	"smtp.password":                 "SMTP_PASSWORD",
	"smtp.from":                     "SMTP_FROM",
	"kafka.brokers":                 "KAFKA_BROKERS",
	"google.applicationCredentials": "GOOGLE_APPLICATION_CREDENTIALS",
}

// LoadServerConfig reads the server config from configFile (if provided)
// and the environment. A missing configFile is an error, an empty one isn't.
func LoadServerConfig(configFile string) (*ServerConfig, error) {
	config := viper.New()
	setDefaults(config)

	for key, env := range envBindings {
		if err := config.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %v", env, err)
		}
	}

	config.SetEnvPrefix("COASTAL")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if configFile != "" {
		config.SetConfigFile(configFile)
		if err := config.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading server config file: %v", err)
		}
	}

	serverConfig := ServerConfig{}
	if err := config.Unmarshal(&serverConfig); err != nil {
		return nil, fmt.Errorf("unable to decode server config: %v", err)
	}

	return &serverConfig, nil
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("coastal.tokenTTLMinutes", DEFAULT_TOKEN_TTL_MINUTES)
	config.SetDefault("coastal.requireAuth", false)
	config.SetDefault("coastal.cron.timeZone", "UTC")
	config.SetDefault("coastal.listener.port", DEFAULT_PORT)
	config.SetDefault("database.url", DEFAULT_DATABASE_URL)
	config.SetDefault("smtp.port", DEFAULT_SMTP_PORT)
	config.SetDefault("kafka.topic", DEFAULT_KAFKA_TOPIC)
	config.SetDefault("google.storage.prefix", "coastal-alert")
	config.SetDefault("google.storage.sqliteBackupSchedule", "0 */6 * * *")
}
