package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/florafly/24-Point-Master/deck"
)

// Config wraps viper with the settings the game front-ends need.
// Flags override environment variables (TWENTYFOUR_* with dashes
// mapped to underscores), which override defaults.
type Config struct {
	v *viper.Viper
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("twentyfour", pflag.ContinueOnError)
	fs.String("difficulty", "easy", "deck difficulty; easy deals ranks up to 10, hard up to 13")
	fs.Int64("seed", 0, "deterministic shuffle seed; 0 seeds from entropy")
	fs.Int("max-attempts", deck.DefaultMaxAttempts, "redraws before falling back to a possibly unsolvable hand")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	c.v.SetEnvPrefix("twentyfour")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// AllSettings is used for the startup log line.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
