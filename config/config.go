// Package config loads iota's settings from defaults, an optional YAML
// config file, IOTA_ environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iotagame/iota/movegen"
)

const (
	ConfigLogLevel        = "log-level"
	ConfigContinuation    = "continuation"
	ConfigPlayers         = "players"
	ConfigAutoplayGames   = "autoplay.games"
	ConfigAutoplayThreads = "autoplay.threads"
	ConfigAutoplaySeed    = "autoplay.seed"
	ConfigAutoplaySeeds   = "autoplay.seed-file"
	ConfigAutoplayTurnLog = "autoplay.turn-log"
	ConfigAutoplayOutput  = "autoplay.summary"

	// ConfigFileName is looked up under the XDG config directories.
	ConfigFileName = "iota/config.yaml"
)

type Config struct {
	viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigContinuation, movegen.ContinueStraight.String())
	c.SetDefault(ConfigPlayers, []string{"exhaustive:falvey", "best-single:derrick"})
	c.SetDefault(ConfigAutoplayGames, 100)
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigAutoplaySeed, "")
	c.SetDefault(ConfigAutoplaySeeds, "")
	c.SetDefault(ConfigAutoplayTurnLog, "")
	c.SetDefault(ConfigAutoplayOutput, "")
}

// Load reads the configuration. An explicit cfgFile must exist; otherwise
// iota/config.yaml is searched for in the XDG config directories and
// skipped if absent. flags, if not nil, are bound so that flags the user
// set win over everything else.
func (c *Config) Load(cfgFile string, flags *pflag.FlagSet) error {
	c.Viper = *viper.New()
	c.setDefaults()
	c.SetEnvPrefix("iota")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.AutomaticEnv()
	c.SetConfigType("yaml")

	if cfgFile == "" {
		if found, err := xdg.SearchConfigFile(ConfigFileName); err == nil {
			cfgFile = found
		}
	}
	if cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", cfgFile, err)
		}
	}
	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok {
				key = f.Name
			}
			if err := c.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return bindErr
		}
	}
	return c.Validate()
}

// flagKeys maps the short flag names of the autoplay command to their
// config keys.
var flagKeys = map[string]string{
	"games":     ConfigAutoplayGames,
	"threads":   ConfigAutoplayThreads,
	"seed":      ConfigAutoplaySeed,
	"seed-file": ConfigAutoplaySeeds,
	"turn-log":  ConfigAutoplayTurnLog,
	"summary":   ConfigAutoplayOutput,
}

var ErrBadConfig = errors.New("invalid configuration")

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.GetString(ConfigLogLevel)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBadConfig, ConfigLogLevel, err)
	}
	if _, err := c.Continuation(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if c.GetInt(ConfigAutoplayThreads) < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrBadConfig, ConfigAutoplayThreads)
	}
	return nil
}

func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.GetString(ConfigLogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c *Config) Continuation() (movegen.ContinuationMode, error) {
	return movegen.ParseContinuationMode(c.GetString(ConfigContinuation))
}
