package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is loaded, when present, before the environment is read. Variables
// already set in the process environment take precedence over the file.
var EnvFile = ".env"

// Environment variables understood by parseEnv.
const (
	EnvGRPCAddr        = "MESSAGELY_GRPC_ADDR"
	EnvDatabaseDSN     = "MESSAGELY_DATABASE_DSN"
	EnvSecretKey       = "MESSAGELY_SECRET_KEY"
	EnvAccessTokenTTL  = "MESSAGELY_ACCESS_TOKEN_TTL"
	EnvRefreshTokenTTL = "MESSAGELY_REFRESH_TOKEN_TTL"
	EnvBcryptCost      = "MESSAGELY_BCRYPT_COST"
	EnvValkeyAddr      = "MESSAGELY_VALKEY_ADDR"
	EnvNotifyChannel   = "MESSAGELY_NOTIFY_CHANNEL"
	EnvNotifyWorkers   = "MESSAGELY_NOTIFY_WORKERS"
	EnvNotifyQueueSize = "MESSAGELY_NOTIFY_QUEUE_SIZE"
	EnvNotifyTimeout   = "MESSAGELY_NOTIFY_TIMEOUT"
	EnvLogFormat       = "MESSAGELY_LOG_FORMAT"
	EnvLogLevel        = "MESSAGELY_LOG_LEVEL"
)

// parseEnv overlays MESSAGELY_* variables onto config. A set but empty
// MESSAGELY_DATABASE_DSN selects the in-memory store. Malformed numbers or
// durations panic.
func parseEnv(config *Config) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", EnvFile, err))
	}

	envString(&config.EndpointAddrGRPC, EnvGRPCAddr)
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	envString(&config.SecretKey, EnvSecretKey)
	envDuration(&config.AccessTokenValidityDuration, EnvAccessTokenTTL)
	envDuration(&config.RefreshTokenValidityDuration, EnvRefreshTokenTTL)
	envInt(&config.BcryptCost, EnvBcryptCost)
	envString(&config.ValkeyAddr, EnvValkeyAddr)
	envString(&config.NotifyChannel, EnvNotifyChannel)
	envInt(&config.NotifyWorkers, EnvNotifyWorkers)
	envInt(&config.NotifyQueueSize, EnvNotifyQueueSize)
	envDuration(&config.NotifyTimeout, EnvNotifyTimeout)
	envString(&config.LogFormat, EnvLogFormat)
	envString(&config.LogLevel, EnvLogLevel)
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = n
}

func envDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}
