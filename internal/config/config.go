package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort           string
	LogLevel           logrus.Level
	OperatorWorkers    int
	OperatorQueueSize  int
	EndOfMonthSchedule string
}

// LoadDotEnv reads a .env file into the environment if one exists. Variables
// already set take precedence.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		HTTPPort:           "9446",
		LogLevel:           logrus.InfoLevel,
		OperatorWorkers:    1,
		OperatorQueueSize:  1000,
		EndOfMonthSchedule: "0 0 1 * *",
	}

	envHTTPPort := os.Getenv("HTTP_PORT")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envOperatorQueueSize := os.Getenv("OPERATOR_QUEUE_SIZE")

	if len(envHTTPPort) != 0 {
		if _, err := strconv.ParseUint(envHTTPPort, 10, 16); err != nil {
			return nil, fmt.Errorf("HTTP_PORT: %w", err)
		}
		env.HTTPPort = envHTTPPort
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		if workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS: must be at least 1, got %d", workers)
		}
		env.OperatorWorkers = workers
	}

	if len(envOperatorQueueSize) != 0 {
		size, err := strconv.Atoi(envOperatorQueueSize)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_QUEUE_SIZE: %w", err)
		}
		if size < 0 {
			return nil, fmt.Errorf("OPERATOR_QUEUE_SIZE: must not be negative, got %d", size)
		}
		env.OperatorQueueSize = size
	}

	// An explicitly empty schedule turns the job off.
	if schedule, ok := os.LookupEnv("END_OF_MONTH_SCHEDULE"); ok {
		env.EndOfMonthSchedule = schedule
	}

	return &env, nil
}
