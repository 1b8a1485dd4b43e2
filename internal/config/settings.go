package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds CLI configuration resolved from flags, environment and twtax.yaml.
type Settings struct {
	RulesPath string `mapstructure:"rules"`
	Format    string `mapstructure:"format"`
	OutputDir string `mapstructure:"output_dir"`
	Debug     bool   `mapstructure:"debug"`
}

// Setting keys shared by the CLI flag bindings
const (
	KeyRules     = "rules"
	KeyFormat    = "format"
	KeyOutputDir = "output_dir"
	KeyDebug     = "debug"
)

// NewViper returns a viper instance with the TWTAX_ environment prefix and defaults set.
// configFile may be empty, in which case twtax.yaml is looked up in the working directory.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TWTAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRules, "rules/2025.yaml")
	v.SetDefault(KeyFormat, "console")
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyDebug, false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("twtax")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// LoadSettings reads the optional config file and unmarshals the merged settings.
// A missing twtax.yaml is not an error; an explicitly named file that is missing is.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.RulesPath == "" {
		return nil, fmt.Errorf("rules path is required")
	}
	return &s, nil
}
