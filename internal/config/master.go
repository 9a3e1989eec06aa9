package config

import "os"

type AppConfig struct {
	DebugMode      bool
	DatabaseConfig *DatabaseConfig
	FetchConfig    *FetchConfig
	RunnerConfig   *RunnerConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		DatabaseConfig: NewDatabaseConfig(),
		FetchConfig:    NewFetchConfig(),
		RunnerConfig:   NewRunnerConfig(),
	}
}
