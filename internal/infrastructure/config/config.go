package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"afdian_adapter/internal/domain/entities"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "AFDIAN_"
	EnvBots       = "AFDIAN_BOTS"
	EnvConfigFile = "AFDIAN_CONFIG_FILE"
)

var ErrDuplicateBot = errors.New("duplicate bot user_id")

type Config struct {
	Server     ServerConfig             `koanf:"server"`
	APIBase    string                   `koanf:"api_base"`
	APIMethod  string                   `koanf:"api_method"`
	HookSecret string                   `koanf:"hook_secret"`
	Bots       []entities.BotCredential `koanf:"bots"`
	Webhook    WebhookConfig            `koanf:"webhook"`
	Log        LogConfig                `koanf:"log"`
	Deliveries DeliveriesConfig         `koanf:"deliveries"`
	AWS        AWSConfig                `koanf:"aws"`
	API        APIConfig                `koanf:"api"`
}

// APIConfig guards the /v1/bots management API. An empty Token leaves
// those routes unmounted.
type APIConfig struct {
	Token string `koanf:"token"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// WebhookConfig holds the webhook verification policy.
type WebhookConfig struct {
	// HookOnlyBypass lets bots without a token dispatch pushes unverified.
	// When false such pushes are rejected, since nothing can verify them.
	HookOnlyBypass bool `koanf:"hook_only_bypass"`
	// AutoRegisterHookBots registers an unknown user id as a hook-only bot on
	// its first push instead of answering 404.
	AutoRegisterHookBots bool          `koanf:"auto_register_hook_bots"`
	VerifyTimeout        time.Duration `koanf:"verify_timeout"`
	RequestTimeout       time.Duration `koanf:"request_timeout"`
}

type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

type DeliveriesConfig struct {
	Enabled bool   `koanf:"enabled"`
	Table   string `koanf:"table"`
}

type AWSConfig struct {
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

// Load layers defaults, then the optional YAML files, then AFDIAN_ env vars.
// Nested keys use a double underscore: AFDIAN_LOG__LEVEL -> log.level.
// AFDIAN_BOTS holds a JSON list of {"user_id", "token"} objects.
func Load(configPaths ...string) (*Config, error) {
	k := koanf.New(".")

	_ = k.Load(confmap.Provider(map[string]any{
		"server.host":                     "0.0.0.0",
		"server.port":                     8080,
		"api_base":                        "https://afdian.com",
		"api_method":                      http.MethodPost,
		"hook_secret":                     "",
		"webhook.hook_only_bypass":        true,
		"webhook.auto_register_hook_bots": false,
		"webhook.verify_timeout":          "5s",
		"webhook.request_timeout":         "10s",
		"log.level":                       "info",
		"log.format":                      "json",
		"log.max_size_mb":                 100,
		"log.max_backups":                 7,
		"log.max_age_days":                7,
		"log.compress":                    true,
		"deliveries.enabled":              false,
		"deliveries.table":                "webhook_deliveries",
		"aws.region":                      "us-east-1",
		"api.token":                       "",
	}, "."), nil)

	if path := os.Getenv(EnvConfigFile); path != "" {
		configPaths = append(configPaths, path)
	}
	for _, path := range configPaths {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			// A missing file is fine, a broken one is not.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	_ = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(os.Getenv(EnvBots)); raw != "" {
		var bots []entities.BotCredential
		if err := json.Unmarshal([]byte(raw), &bots); err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvBots, err)
		}
		cfg.Bots = bots
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	switch s {
	case EnvBots, EnvConfigFile:
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func (c *Config) normalize() error {
	c.APIBase = strings.TrimRight(strings.TrimSpace(c.APIBase), "/")
	c.APIMethod = strings.ToUpper(strings.TrimSpace(c.APIMethod))
	if c.APIMethod != http.MethodGet {
		c.APIMethod = http.MethodPost
	}
	c.HookSecret = strings.Trim(strings.TrimSpace(c.HookSecret), "/")
	c.API.Token = strings.TrimSpace(c.API.Token)

	seen := make(map[string]struct{}, len(c.Bots))
	bots := make([]entities.BotCredential, 0, len(c.Bots))
	for _, bot := range c.Bots {
		bot.UserID = strings.TrimSpace(bot.UserID)
		bot.Token = strings.TrimSpace(bot.Token)
		if bot.UserID == "" {
			continue
		}
		if _, ok := seen[bot.UserID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBot, bot.UserID)
		}
		seen[bot.UserID] = struct{}{}
		bots = append(bots, bot)
	}
	c.Bots = bots
	return nil
}

// WebhookBasePath is the prefix every bot webhook route hangs from.
func (c *Config) WebhookBasePath() string {
	if c.HookSecret != "" {
		return "/afdian/" + c.HookSecret + "/webhooks"
	}
	return "/afdian/webhooks"
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
