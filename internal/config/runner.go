package config

import (
	"os"
	"strconv"
	"time"
)

type RunnerConfig struct {
	SolutionTimeout time.Duration
	BuildTimeout    time.Duration
}

func NewRunnerConfig() *RunnerConfig {
	solutionTimeoutSec := os.Getenv("SOLUTION_TIMEOUT_SEC")
	buildTimeoutSec := os.Getenv("BUILD_TIMEOUT_SEC")
	varInt, err := strconv.Atoi(solutionTimeoutSec)
	if err != nil {
		varInt = 300
	}
	varInt2, err := strconv.Atoi(buildTimeoutSec)
	if err != nil {
		varInt2 = 120
	}
	return &RunnerConfig{
		SolutionTimeout: time.Duration(varInt) * time.Second,
		BuildTimeout:    time.Duration(varInt2) * time.Second,
	}
}
