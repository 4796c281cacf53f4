package shared

import "strings"

type ServerConfig struct {
	Coastal  CoastalConfig  `mapstructure:"coastal"`
	Database DatabaseConfig `mapstructure:"database"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
	Smtp     SmtpConfig     `mapstructure:"smtp"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Google   GoogleConfig   `mapstructure:"google"`
}

type CoastalConfig struct {
	PrivateKeyPem   string             `mapstructure:"privateKeyPem"`
	TokenTTLMinutes int                `mapstructure:"tokenTTLMinutes" validate:"min=1"`
	RequireAuth     bool               `mapstructure:"requireAuth"`
	Thresholds      map[string]float64 `mapstructure:"thresholds" validate:"dive,keys,required,endkeys,gte=0"`
	Cron            CronConfig         `mapstructure:"cron"`
	Listener        ListenerConfig     `mapstructure:"listener"`
}

type DatabaseConfig struct {
	URL        string `mapstructure:"url" validate:"required"`
	PassPhrase string `mapstructure:"passPhrase"`
}

type TwilioConfig struct {
	AccountSid          string `mapstructure:"accountSid"`
	AuthToken           string `mapstructure:"authToken"`
	PhoneNumber         string `mapstructure:"phoneNumber"`
	MessagingServiceSid string `mapstructure:"messagingServiceSid"`
}

// Enabled reports whether enough credentials are set to reach Twilio.
// Without them the SMS channel runs in demo mode.
func (c TwilioConfig) Enabled() bool {
	return c.AccountSid != "" && c.AuthToken != "" &&
		(c.PhoneNumber != "" || c.MessagingServiceSid != "")
}

type SmtpConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
	NoVerify bool   `mapstructure:"noVerify"`
}

// Enabled reports whether enough credentials are set to reach the SMTP server.
// Without them the email channel runs in demo mode.
func (c SmtpConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Sender is the From address, falling back to the SMTP username.
func (c SmtpConfig) Sender() string {
	if strings.TrimSpace(c.From) != "" {
		return c.From
	}
	return c.Username
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type GoogleConfig struct {
	ApplicationCredentials string        `mapstructure:"applicationCredentials"`
	Storage                StorageConfig `mapstructure:"storage"`
}

type CronConfig struct {
	TimeZone string `mapstructure:"timeZone" validate:"required"`
}

type ListenerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type StorageConfig struct {
	Bucket                    string `mapstructure:"bucket"`
	Prefix                    string `mapstructure:"prefix"`
	SqliteBackupSchedule      string `mapstructure:"sqliteBackupSchedule"`
	EnableSqliteBackupAndSync bool   `mapstructure:"enableSqliteBackupAndSync"`
}
