package apisports

import "time"

const (
	providerName       = "apisports"
	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultHost        = "v3.football.api-sports.io"
	defaultHTTPTimeout = 30 * time.Second

	headerHost = "x-rapidapi-host"
	headerKey  = "x-rapidapi-key"

	errorBodyLimit = 512
)
