package config

import "time"

const (
	envConfigDir    = "FOOTBALL_CONFIG_DIR"
	envAPIKey       = "FOOTBALL_API_KEY"
	envDataDir      = "FOOTBALL_DATA_DIR"
	envSerializer   = "FOOTBALL_SERIALIZER"
	envProvider     = "FOOTBALL_PROVIDER"
	envAPIBaseURL   = "FOOTBALL_API_BASE_URL"
	envAPIHost      = "FOOTBALL_API_HOST"
	envHTTPTimeout  = "FOOTBALL_HTTP_TIMEOUT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// ProviderAPISports talks to API-Football over HTTP.
	ProviderAPISports = "apisports"
	// ProviderFixture serves built-in sample data and needs no key.
	ProviderFixture = "fixture"

	configDirName = ".football_client"
	dataDirName   = "data"
	envFileName   = ".env"
	keyFileName   = ".api_key.json"

	defaultProvider    = ProviderAPISports
	defaultSerializer  = "json"
	defaultAPIBaseURL  = "https://v3.football.api-sports.io"
	defaultAPIHost     = "v3.football.api-sports.io"
	defaultHTTPTimeout = 30 * time.Second
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultServiceName = "football-client"
)
