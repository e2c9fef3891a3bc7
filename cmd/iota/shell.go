package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iotagame/iota/shell"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := shell.NewShellController(cfg)
			if err != nil {
				return err
			}
			quit := make(chan struct{})
			sig := make(chan os.Signal, 1)
			go func() {
				signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
				<-sig
				log.Info().Msg("got quit signal...")
				close(quit)
			}()
			go sc.Loop(sig)
			log.Info().Msg("started loop")
			<-quit
			return nil
		},
	}
}
