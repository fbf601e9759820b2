package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Supabase  SupabaseConfig  `yaml:"supabase"`
	Storage   StorageConfig   `yaml:"storage"`
	Tasks     TasksConfig     `yaml:"tasks"`
	Views     ViewsConfig     `yaml:"views"`
	Pages     PagesConfig     `yaml:"pages"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"soventure-api"`
}

// AuthConfig holds settings for verifying access tokens issued by the auth provider.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"`
	JWTAudience string `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`
	LoginPath   string `yaml:"login_path"   env:"AUTH_LOGIN_PATH"   env-default:"/login"`
}

// SupabaseConfig points at the hosted backend that serves storage and functions.
type SupabaseConfig struct {
	URL     string `yaml:"url"      env:"SUPABASE_URL"      env-required:"true"`
	AnonKey string `yaml:"anon_key" env:"SUPABASE_ANON_KEY" env-required:"true"`
}

// StorageConfig holds résumé blob storage settings.
type StorageConfig struct {
	Bucket         string        `yaml:"bucket"           env:"STORAGE_BUCKET"           env-default:"resumes"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"5242880"`
	ContentType    string        `yaml:"content_type"     env:"STORAGE_CONTENT_TYPE"     env-default:"application/pdf"`
	CacheControl   string        `yaml:"cache_control"    env:"STORAGE_CACHE_CONTROL"    env-default:"3600"`
	Timeout        time.Duration `yaml:"timeout"          env:"STORAGE_TIMEOUT"          env-default:"30s"`
}

// TasksConfig holds remote task invocation settings.
type TasksConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TASKS_TIMEOUT" env-default:"90s"`
}

// ViewsConfig holds the knobs of the derived page views.
type ViewsConfig struct {
	DashboardJobLimit       int `yaml:"dashboard_job_limit"       env:"VIEWS_DASHBOARD_JOB_LIMIT"       env-default:"10"`
	DashboardInterviewLimit int `yaml:"dashboard_interview_limit" env:"VIEWS_DASHBOARD_INTERVIEW_LIMIT" env-default:"5"`
	InterviewHistoryLimit   int `yaml:"interview_history_limit"   env:"VIEWS_INTERVIEW_HISTORY_LIMIT"   env-default:"10"`
	SkillCount              int `yaml:"skill_count"               env:"VIEWS_SKILL_COUNT"               env-default:"6"`
	SkillWeightStep         int `yaml:"skill_weight_step"         env:"VIEWS_SKILL_WEIGHT_STEP"         env-default:"10"`
	SkillWeightFloor        int `yaml:"skill_weight_floor"        env:"VIEWS_SKILL_WEIGHT_FLOOR"        env-default:"40"`
	ActivityCap             int `yaml:"activity_cap"              env:"VIEWS_ACTIVITY_CAP"              env-default:"10"`
}

// PagesConfig controls the lifetime of per-user page instances.
type PagesConfig struct {
	IdleTTL         time.Duration `yaml:"idle_ttl"         env:"PAGES_IDLE_TTL"         env-default:"30m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"PAGES_CLEANUP_INTERVAL" env-default:"5m"`
}

// RateLimitConfig holds per-client request limits for action endpoints.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	Actions         int           `yaml:"actions"          env:"RATE_LIMIT_ACTIONS"          env-default:"20"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
