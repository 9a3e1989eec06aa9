package config

import "os"

// SessionCookieEnv holds the adventofcode.com session cookie, read from the
// environment or the workspace .env file.
const SessionCookieEnv = "AOC_SESSION_COOKIE"

type FetchConfig struct {
	Host          string
	SessionCookie string
	UserAgent     string
}

func NewFetchConfig() *FetchConfig {
	host := os.Getenv("AOC_HOST")
	if host == "" {
		host = "adventofcode.com"
	}
	return &FetchConfig{
		Host:          host,
		SessionCookie: os.Getenv(SessionCookieEnv),
		UserAgent:     "aockit/1.0 (+gitlab.com/aockit-2025.net)",
	}
}
