package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Agent    AgentConfig    `mapstructure:"agent"`
	Release  ReleaseConfig  `mapstructure:"release"`
	Paths    PathsConfig    `mapstructure:"paths"`
	Tools    ToolsConfig    `mapstructure:"tools"`
	Timeouts TimeoutsConfig `mapstructure:"timeouts"`
	Install  InstallConfig  `mapstructure:"install"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AgentConfig describes how an existing agent is recognized
type AgentConfig struct {
	ControlBinary string `mapstructure:"control_binary"`
	LookupTool    string `mapstructure:"lookup_tool"`
}

// ReleaseConfig pins the vendor endpoint and package table
type ReleaseConfig struct {
	VendorHost string `mapstructure:"vendor_host"`
	Series     string `mapstructure:"series"`
	TableFile  string `mapstructure:"table_file"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	OSRelease string `mapstructure:"os_release"`
	TempDir   string `mapstructure:"temp_dir"`
	LogFile   string `mapstructure:"log_file"`
}

// ToolsConfig names the external programs that are invoked
type ToolsConfig struct {
	Download string `mapstructure:"download"`
	Elevate  string `mapstructure:"elevate"`
	Dpkg     string `mapstructure:"dpkg"`
	Rpm      string `mapstructure:"rpm"`
}

// TimeoutsConfig bounds each external process invocation
type TimeoutsConfig struct {
	Probe    time.Duration `mapstructure:"probe"`
	Download time.Duration `mapstructure:"download"`
	Elevate  time.Duration `mapstructure:"elevate"`
	Install  time.Duration `mapstructure:"install"`
}

// InstallConfig contains install behaviour toggles
type InstallConfig struct {
	Confirm bool `mapstructure:"confirm"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "wazuh-bootstrap"))
	}
	v.AddConfigPath(".")

	return load(v)
}

// LoadFile loads configuration from an explicit TOML file
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Environment variable overrides
	v.SetEnvPrefix("WAZUH_BOOTSTRAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.OSRelease = expandPath(cfg.Paths.OSRelease)
	cfg.Paths.TempDir = expandPath(cfg.Paths.TempDir)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	cfg.Release.TableFile = expandPath(cfg.Release.TableFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	v.SetDefault("agent.control_binary", "wazuhctl")
	v.SetDefault("agent.lookup_tool", "which")

	v.SetDefault("release.vendor_host", "packages.wazuh.com")
	v.SetDefault("release.series", "4.x")
	v.SetDefault("release.table_file", "")

	v.SetDefault("paths.os_release", "/etc/os-release")
	v.SetDefault("paths.temp_dir", "/tmp")
	v.SetDefault("paths.log_file", filepath.Join(homeDir, ".local", "share", "wazuh-bootstrap", "wazuh-bootstrap.log"))

	v.SetDefault("tools.download", "curl")
	v.SetDefault("tools.elevate", "sudo")
	v.SetDefault("tools.dpkg", "dpkg")
	v.SetDefault("tools.rpm", "rpm")

	v.SetDefault("timeouts.probe", 30*time.Second)
	v.SetDefault("timeouts.download", 10*time.Minute)
	v.SetDefault("timeouts.elevate", 2*time.Minute)
	v.SetDefault("timeouts.install", 10*time.Minute)

	v.SetDefault("install.confirm", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
