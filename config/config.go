package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps viper. Flags win over environment variables (SPELLB_
// prefix), which win over defaults.
type Config struct {
	v *viper.Viper
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("spellb", pflag.ContinueOnError)
	fs.StringP("pool", "p", "",
		"Use this letter pool. A letter pool must be a string containing exactly seven unique English letters. "+
			"If the string contains a capital letter, that letter will be used as the Center (mandatory) letter. "+
			"If the string only contains lowercase letters, the first letter will be used as Center.")
	fs.String("dictionary-path", "/usr/share/dict/words",
		"path to a newline-delimited word list")
	fs.Bool("debug", false, "debug logging on")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("spellb")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }

// SanitizedSettings returns the settings map for the startup log line.
func (c *Config) SanitizedSettings() map[string]any {
	return c.v.AllSettings()
}
