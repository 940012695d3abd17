package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/messagely/internal/flagx"
	"github.com/dmitrijs2005/messagely/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "1m" style
// strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  *string        `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	ValkeyAddr                   string         `json:"valkey_addr"`
	NotifyChannel                string         `json:"notify_channel"`
	NotifyWorkers                int            `json:"notify_workers"`
	NotifyQueueSize              int            `json:"notify_queue_size"`
	NotifyTimeout                timex.Duration `json:"notify_timeout"`
	LogFormat                    string         `json:"log_format"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current values; database_dsn may be set to ""
// explicitly to select the in-memory store. An unreadable or malformed file
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.applyTo(config)
}

func (c *JsonConfig) applyTo(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration.Duration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration.Duration)
	setInt(&config.BcryptCost, c.BcryptCost)
	setString(&config.ValkeyAddr, c.ValkeyAddr)
	setString(&config.NotifyChannel, c.NotifyChannel)
	setInt(&config.NotifyWorkers, c.NotifyWorkers)
	setInt(&config.NotifyQueueSize, c.NotifyQueueSize)
	setDuration(&config.NotifyTimeout, c.NotifyTimeout.Duration)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
