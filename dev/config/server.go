package config

// SERVER_YML is written to dev/config.yml the first time the server runs with --dev.
// No privateKeyPem is set, so a signing key is generated on every start.
const SERVER_YML = `
coastal:
  privateKeyPem:
  tokenTTLMinutes: 60
  requireAuth: false
  cron:
    timeZone: "Asia/Kolkata"
  listener:
    port: 8000
  thresholds:
    water_level: 3.5
    wind_speed: 120.0
    rainfall_24h: 100.0
    wave_height: 5.0
    storm_surge: 2.0

database:
  url: "sqlite:///./dev/coastal-alert.db"
  passPhrase:

twilio:
  accountSid:
  authToken:
  phoneNumber:

smtp:
  host:
  port: 587
  username:
  password:
  from:

kafka:
  brokers: []
  topic: "coastal-alerts-dev"

google:
  applicationCredentials:
  storage:
    bucket: "coastal-alert"
    prefix: "coastal-alert-dev"
    sqliteBackupSchedule: "*/30 * * * *"
    enableSqliteBackupAndSync: false
`
