package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	DataDir      string `yaml:"data_dir" mapstructure:"data_dir"`
	StudentsFile string `yaml:"students_file" mapstructure:"students_file"`
	TeachersFile string `yaml:"teachers_file" mapstructure:"teachers_file"`
	AutoLoad     bool   `yaml:"auto_load" mapstructure:"auto_load"`
	ReportWidth  int    `yaml:"report_width" mapstructure:"report_width"`

	// File is the config file that was read, empty when only defaults,
	// environment and flags apply.
	File string `yaml:"-" mapstructure:"-"`
}

const (
	appName     = "university"
	envPrefix   = "UNIVERSITY"
	minWidth    = 40
	defaultWide = 100
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"data-dir": "data_dir",
	"students": "students_file",
	"teachers": "teachers_file",
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:      ".",
		StudentsFile: "Students.txt",
		TeachersFile: "Teachers.txt",
		AutoLoad:     true,
		ReportWidth:  defaultWide,
	}
}

// Path returns the per-user config file location.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, appName+".yaml")
}

// Load merges defaults, the config file, UNIVERSITY_* environment variables
// and any flags that were set, in increasing order of precedence.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("students_file", cfg.StudentsFile)
	v.SetDefault("teachers_file", cfg.TeachersFile)
	v.SetDefault("auto_load", cfg.AutoLoad)
	v.SetDefault("report_width", cfg.ReportWidth)

	explicit := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")

		// Search paths
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, appName))
		}
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", appName))
	}

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
		// Config file not found; use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StudentsFile) == "" {
		return fmt.Errorf("config: students_file is required")
	}
	if strings.TrimSpace(c.TeachersFile) == "" {
		return fmt.Errorf("config: teachers_file is required")
	}
	if filepath.Clean(c.StudentsFile) == filepath.Clean(c.TeachersFile) {
		return fmt.Errorf("config: students_file and teachers_file must differ (both %q)", c.StudentsFile)
	}
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.ReportWidth < minWidth {
		c.ReportWidth = defaultWide
	}
	return nil
}
