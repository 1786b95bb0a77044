package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"vitaverify/internal/logging"
	"vitaverify/internal/server"
)

// Config is the full runtime configuration.
type Config struct {
	Server  server.Config  `yaml:"server"`
	Keys    KeysConfig     `yaml:"keys"`
	Logging logging.Config `yaml:"logging"`
}

// KeysConfig locates the notary verification key and the issuer signing key.
//
// Exactly one issuer source must be set: a plaintext PEM file, an encrypted
// keystore (with passphrase), or the development ephemeral key.
type KeysConfig struct {
	NotaryKeyFile      string `yaml:"notary_key_file"`
	IssuerKeyFile      string `yaml:"issuer_key_file"`
	IssuerKeystore     string `yaml:"issuer_keystore"`
	DevEphemeralIssuer bool   `yaml:"dev_ephemeral_issuer"`

	// IssuerPassphrase is read from the environment only.
	IssuerPassphrase string `yaml:"-"`
}

// Environment variables that override file settings.
const (
	EnvHost               = "VITA_HOST"
	EnvPort               = "VITA_PORT"
	EnvReadTimeout        = "VITA_READ_TIMEOUT"
	EnvWriteTimeout       = "VITA_WRITE_TIMEOUT"
	EnvShutdownTimeout    = "VITA_SHUTDOWN_TIMEOUT"
	EnvNotaryKeyFile      = "VITA_NOTARY_KEY_FILE"
	EnvIssuerKeyFile      = "VITA_ISSUER_KEY_FILE"
	EnvIssuerKeystore     = "VITA_ISSUER_KEYSTORE"
	EnvIssuerPassphrase   = "VITA_ISSUER_PASSPHRASE"
	EnvDevEphemeralIssuer = "VITA_DEV_EPHEMERAL_ISSUER"
	EnvLogLevel           = "VITA_LOG_LEVEL"
	EnvLogFormat          = "VITA_LOG_FORMAT"
)

// DefaultConfig returns the built-in defaults. Key locations have no default.
func DefaultConfig() *Config {
	return &Config{
		Server:  server.DefaultConfig(),
		Logging: logging.DefaultConfig(),
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.Server.Port = port
	}
	for name, dst := range map[string]*time.Duration{
		EnvReadTimeout:     &c.Server.ReadTimeout,
		EnvWriteTimeout:    &c.Server.WriteTimeout,
		EnvShutdownTimeout: &c.Server.ShutdownTimeout,
	} {
		if v := os.Getenv(name); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = d
		}
	}

	if v := os.Getenv(EnvNotaryKeyFile); v != "" {
		c.Keys.NotaryKeyFile = v
	}
	if v := os.Getenv(EnvIssuerKeyFile); v != "" {
		c.Keys.IssuerKeyFile = v
	}
	if v := os.Getenv(EnvIssuerKeystore); v != "" {
		c.Keys.IssuerKeystore = v
	}
	if v := os.Getenv(EnvIssuerPassphrase); v != "" {
		c.Keys.IssuerPassphrase = v
	}
	if v := os.Getenv(EnvDevEphemeralIssuer); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDevEphemeralIssuer, err)
		}
		c.Keys.DevEphemeralIssuer = b
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return c.Keys.Validate()
}

// Validate checks that the notary key is set and exactly one issuer source is.
func (k KeysConfig) Validate() error {
	if k.NotaryKeyFile == "" {
		return errors.New("keys.notary_key_file is required")
	}
	sources := 0
	if k.IssuerKeyFile != "" {
		sources++
	}
	if k.IssuerKeystore != "" {
		sources++
		if k.IssuerPassphrase == "" {
			return fmt.Errorf("keys.issuer_keystore requires %s", EnvIssuerPassphrase)
		}
	}
	if k.DevEphemeralIssuer {
		sources++
	}
	switch sources {
	case 0:
		return errors.New("no issuer key configured: set issuer_key_file, issuer_keystore or dev_ephemeral_issuer")
	case 1:
		return nil
	default:
		return errors.New("issuer_key_file, issuer_keystore and dev_ephemeral_issuer are mutually exclusive")
	}
}
