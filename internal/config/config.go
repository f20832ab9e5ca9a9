package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Zoom      ZoomConfig      `yaml:"zoom"`
	LLM       LLMConfig       `yaml:"llm"`
	Slack     SlackConfig     `yaml:"slack"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Storage   StorageConfig   `yaml:"storage"`
	Upload    UploadConfig    `yaml:"upload"`
	Import    ImportConfig    `yaml:"import"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Range"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	PublicURL       string        `yaml:"public_url"       env:"SERVER_PUBLIC_URL"       env-default:""`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"15m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session and OAuth state settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"meetsum"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	OAuthStateTTL    time.Duration `yaml:"oauth_state_ttl"    env:"AUTH_OAUTH_STATE_TTL"    env-default:"10m"`
}

// ZoomConfig holds Zoom OAuth app credentials and REST client settings.
type ZoomConfig struct {
	ClientID        string        `yaml:"client_id"        env:"ZOOM_CLIENT_ID"`
	ClientSecret    string        `yaml:"client_secret"    env:"ZOOM_CLIENT_SECRET"`
	RedirectURI     string        `yaml:"redirect_uri"     env:"ZOOM_REDIRECT_URI"`
	AuthURL         string        `yaml:"auth_url"         env:"ZOOM_AUTH_URL"         env-default:"https://zoom.us/oauth/authorize"`
	TokenURL        string        `yaml:"token_url"        env:"ZOOM_TOKEN_URL"        env-default:"https://zoom.us/oauth/token"`
	APIBaseURL      string        `yaml:"api_base_url"     env:"ZOOM_API_BASE_URL"     env-default:"https://api.zoom.us/v2"`
	APITimeout      time.Duration `yaml:"api_timeout"      env:"ZOOM_API_TIMEOUT"      env-default:"15s"`
	DownloadTimeout time.Duration `yaml:"download_timeout" env:"ZOOM_DOWNLOAD_TIMEOUT" env-default:"10m"`
	MaxRetries      int           `yaml:"max_retries"      env:"ZOOM_MAX_RETRIES"      env-default:"3"`
	InitialBackoff  time.Duration `yaml:"initial_backoff"  env:"ZOOM_INITIAL_BACKOFF"  env-default:"1s"`
	MaxBackoff      time.Duration `yaml:"max_backoff"      env:"ZOOM_MAX_BACKOFF"      env-default:"30s"`
	TokenSkew       time.Duration `yaml:"token_skew"       env:"ZOOM_TOKEN_SKEW"       env-default:"30s"`
}

// Enabled reports whether a Zoom OAuth app is configured.
func (c ZoomConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

// LLMConfig holds analysis model settings.
type LLMConfig struct {
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"LLM_BASE_URL"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"4096"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"2m"`
}

// SlackConfig holds Slack Web API settings. An empty token disables Slack.
type SlackConfig struct {
	BotToken   string        `yaml:"bot_token"   env:"SLACK_BOT_TOKEN"`
	APIBaseURL string        `yaml:"api_base_url" env:"SLACK_API_BASE_URL" env-default:"https://slack.com/api"`
	Timeout    time.Duration `yaml:"timeout"     env:"SLACK_TIMEOUT"     env-default:"10s"`
	MaxRetries uint64        `yaml:"max_retries" env:"SLACK_MAX_RETRIES" env-default:"3"`
}

// SMTPConfig holds outgoing mail settings. An empty host disables email.
type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"     env:"SMTP_FROM"     env-default:"meetsum@localhost"`
}

// StorageConfig holds local blob storage settings.
type StorageConfig struct {
	RecordingsDir string `yaml:"recordings_dir" env:"STORAGE_RECORDINGS_DIR" env-default:"./data/recordings"`
	ExportsDir    string `yaml:"exports_dir"    env:"STORAGE_EXPORTS_DIR"    env-default:"./data/exports"`
}

// UploadConfig bounds multipart uploads.
type UploadConfig struct {
	MaxSize int64 `yaml:"max_size" env:"UPLOAD_MAX_SIZE" env-default:"10485760"`
}

// ImportConfig holds recording import settings.
type ImportConfig struct {
	BatchWorkers     int `yaml:"batch_workers"      env:"IMPORT_BATCH_WORKERS"      env-default:"3"`
	BatchMaxMeetings int `yaml:"batch_max_meetings" env:"IMPORT_BATCH_MAX_MEETINGS" env-default:"50"`
}

// RateLimitConfig holds per-IP request limits for the auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
