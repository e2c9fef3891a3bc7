package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iotagame/iota/config"
)

var (
	GitVersion string
)

var (
	cfgFile string
	cfg     = config.DefaultConfig()
)

func setupLogging(level zerolog.Level) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "iota",
		Short:   "Move generation and computer play for the card game Iota",
		Version: GitVersion,
		// every subcommand shares the same config loading
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cfgFile, cmd.Flags()); err != nil {
				return err
			}
			setupLogging(cfg.LogLevel())
			log.Debug().Str("config", cfg.ConfigFileUsed()).Msg("loaded config")
			return nil
		},
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/"+config.ConfigFileName+")")
	pf.String(config.ConfigLogLevel, "info", "log level: debug, info, warn, error")
	pf.String(config.ConfigContinuation, "straight", "how multi-card plays extend: straight or north")

	root.AddCommand(newShellCmd(), newAutoplayCmd(), newGenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
