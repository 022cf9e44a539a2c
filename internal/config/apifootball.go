package config

import "time"

// APIFootballConfig controls how we talk to API-Football.
type APIFootballConfig struct {
	BaseURL string
	Host    string
	APIKey  string
	Timeout time.Duration
}

func loadAPIFootball() APIFootballConfig {
	return APIFootballConfig{
		BaseURL: envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Host:    envOrDefault(envAPIHost, defaultAPIHost),
		APIKey:  envOrDefault(envAPIKey, ""),
		Timeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
