package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iotagame/iota/automatic"
	"github.com/iotagame/iota/config"
	"github.com/iotagame/iota/rules"
)

func newAutoplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoplay [player...]",
		Short: "Play computer-vs-computer games and summarize the results",
		Long: `Play a batch of games between computer players. Each player is
given as kind[:name], where kind is one of first-legal, best-single
or exhaustive. Without players the configured line-up is used.`,
		RunE: runAutoplay,
	}
	f := cmd.Flags()
	f.Int("games", 100, "number of games to play")
	f.Int("threads", 4, "number of games played at once")
	f.String("seed", "", "base seed; games are reproducible for the same seed")
	f.String("seed-file", "", "file with one hex seed per line; games cycle through them")
	f.String("turn-log", "", "write a CSV log of every turn to this file")
	f.String("summary", "", "write the YAML summary to this file")
	return cmd
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	mode, err := cfg.Continuation()
	if err != nil {
		return err
	}
	opts := automatic.Options{
		Players:      args,
		Games:        cfg.GetInt(config.ConfigAutoplayGames),
		Threads:      cfg.GetInt(config.ConfigAutoplayThreads),
		Seed:         automatic.SeedFromString(cfg.GetString(config.ConfigAutoplaySeed)),
		Oracle:       rules.Standard{},
		Continuation: mode,
	}
	if len(opts.Players) == 0 {
		opts.Players = cfg.GetStringSlice(config.ConfigPlayers)
	}
	if path := cfg.GetString(config.ConfigAutoplaySeeds); path != "" {
		if opts.Seeds, err = automatic.LoadSeeds(path); err != nil {
			return err
		}
	}
	if path := cfg.GetString(config.ConfigAutoplayTurnLog); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts.TurnLog = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Strs("players", opts.Players).Int("games", opts.Games).
		Int("threads", opts.Threads).Msg("starting autoplay")
	sum, err := automatic.StartCompVComp(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), sum.String())
	fmt.Fprint(cmd.OutOrStdout(), sum.WinRecord())

	if path := cfg.GetString(config.ConfigAutoplayOutput); path != "" {
		y, err := sum.YAML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, y, 0o644); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("wrote summary")
	}
	return nil
}
