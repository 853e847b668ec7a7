package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/annie-elequin/pawgress/pkg/token"
)

const (
	DefaultConfigPath = "/etc/pawgress"
	ConfigFileName    = "pawgress.yml"
)

// Sources of a configuration value.
const (
	SourceDefault     = "default"
	SourceFile        = "file"
	SourceEnvironment = "environment"
)

// ValidLogLevels is the list of accepted log_level values
var ValidLogLevels = []string{"silent", "info", "debug"}

// Config holds all Pawgress configuration settings
type Config struct {
	// JWTSecret signs and verifies session tokens
	JWTSecret string

	// CORSAllowedOrigins lists origins allowed to call the API from a browser
	CORSAllowedOrigins []string

	// BcryptCost is the work factor for password hashes
	BcryptCost int

	// AuditEnabled turns audit events on or off
	AuditEnabled bool

	// LogLevel controls SQL logging (silent, info, debug)
	LogLevel string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// fileConfig is the on-disk shape of pawgress.yml. Pointers distinguish
// "absent" from zero values.
type fileConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	BcryptCost         int      `yaml:"bcrypt_cost"`
	AuditEnabled       *bool    `yaml:"audit_enabled"`
	LogLevel           string   `yaml:"log_level"`
	ReadTimeout        string   `yaml:"read_timeout"`
	WriteTimeout       string   `yaml:"write_timeout"`
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *Config {
	c := &Config{
		JWTSecret:          token.DefaultSecret,
		CORSAllowedOrigins: []string{"*"},
		BcryptCost:         bcrypt.DefaultCost,
		AuditEnabled:       true,
		LogLevel:           "info",
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       15 * time.Second,
		sources:            make(map[string]string),
	}
	for _, name := range attributeNames() {
		c.sources[name] = SourceDefault
	}
	return c
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() *Config {
	return newDefault()
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	configPath := os.Getenv("PAWGRESS_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return LoadFile(filepath.Join(configPath, ConfigFileName))
}

// LoadFile loads configuration from the given file, which may be absent,
// and then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	config := newDefault()
	config.configFilePath = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := config.applyFileConfig(&file); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"jwt_secret", "cors_allowed_origins", "bcrypt_cost",
		"audit_enabled", "log_level", "read_timeout", "write_timeout",
	}
}

func (c *Config) applyFileConfig(file *fileConfig) error {
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = SourceFile
	}
	if len(file.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = file.CORSAllowedOrigins
		c.sources["cors_allowed_origins"] = SourceFile
	}
	if file.BcryptCost != 0 {
		c.BcryptCost = file.BcryptCost
		c.sources["bcrypt_cost"] = SourceFile
	}
	if file.AuditEnabled != nil {
		c.AuditEnabled = *file.AuditEnabled
		c.sources["audit_enabled"] = SourceFile
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = SourceFile
	}
	if file.ReadTimeout != "" {
		d, err := time.ParseDuration(file.ReadTimeout)
		if err != nil {
			return fmt.Errorf("invalid read_timeout: %w", err)
		}
		c.ReadTimeout = d
		c.sources["read_timeout"] = SourceFile
	}
	if file.WriteTimeout != "" {
		d, err := time.ParseDuration(file.WriteTimeout)
		if err != nil {
			return fmt.Errorf("invalid write_timeout: %w", err)
		}
		c.WriteTimeout = d
		c.sources["write_timeout"] = SourceFile
	}
	return nil
}

func (c *Config) applyEnvConfig() error {
	if val := os.Getenv("PAWGRESS_JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = SourceEnvironment
	} else if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = SourceEnvironment
	}
	if val := os.Getenv("PAWGRESS_CORS_ALLOWED_ORIGINS"); val != "" {
		c.CORSAllowedOrigins = splitAndTrim(val)
		c.sources["cors_allowed_origins"] = SourceEnvironment
	}
	if val := os.Getenv("PAWGRESS_BCRYPT_COST"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid PAWGRESS_BCRYPT_COST: %w", err)
		}
		c.BcryptCost = i
		c.sources["bcrypt_cost"] = SourceEnvironment
	}
	if val := os.Getenv("PAWGRESS_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val != "false" && val != "0" && val != "no"
		c.sources["audit_enabled"] = SourceEnvironment
	}
	if val := os.Getenv("PAWGRESS_LOG_LEVEL"); val != "" {
		c.LogLevel = strings.ToLower(val)
		c.sources["log_level"] = SourceEnvironment
	}
	if val := os.Getenv("PAWGRESS_READ_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid PAWGRESS_READ_TIMEOUT: %w", err)
		}
		c.ReadTimeout = d
		c.sources["read_timeout"] = SourceEnvironment
	}
	if val := os.Getenv("PAWGRESS_WRITE_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid PAWGRESS_WRITE_TIMEOUT: %w", err)
		}
		c.WriteTimeout = d
		c.sources["write_timeout"] = SourceEnvironment
	}
	return nil
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return SourceDefault
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// UsingDefaultSecret reports whether tokens are signed with the built-in
// fallback secret.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == token.DefaultSecret
}

// IsDebug reports whether SQL statements should be logged.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid bcrypt_cost %d: must be between %d and %d", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid cors_allowed_origins value: %s", origin)
		}
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	if c.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read_timeout: %s", c.ReadTimeout)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("invalid write_timeout: %s", c.WriteTimeout)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. The signing secret is never printed.
func (c *Config) Attributes() []Attribute {
	secret := "(configured)"
	if c.UsingDefaultSecret() {
		secret = "(built-in default)"
	}
	return []Attribute{
		{Name: "jwt_secret", Value: secret, Source: c.Source("jwt_secret")},
		{Name: "cors_allowed_origins", Value: strings.Join(c.CORSAllowedOrigins, ","), Source: c.Source("cors_allowed_origins")},
		{Name: "bcrypt_cost", Value: strconv.Itoa(c.BcryptCost), Source: c.Source("bcrypt_cost")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "read_timeout", Value: c.ReadTimeout.String(), Source: c.Source("read_timeout")},
		{Name: "write_timeout", Value: c.WriteTimeout.String(), Source: c.Source("write_timeout")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-24s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-24s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-24s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
