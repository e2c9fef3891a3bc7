package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/movegen"
	"github.com/iotagame/iota/rules"
	"github.com/iotagame/iota/shell"
)

func newGenCmd() *cobra.Command {
	var player string
	var limit int
	cmd := &cobra.Command{
		Use:   "gen <board> <hand>",
		Short: "List the legal move-sets for a hand on a board",
		Long: `List the legal move-sets for a hand, best scoring first. The board
is a quoted list of [owner:]CARD@X,Y entries and the hand a quoted
list of cards, for example:

  iota gen "RC1@0,0 GS2@1,0" "RC3 BT1 YX4"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.FromNotation(args[0])
			if err != nil {
				return err
			}
			hand, err := card.HandFromString(args[1])
			if err != nil {
				return err
			}
			mode, err := cfg.Continuation()
			if err != nil {
				return err
			}
			gen := movegen.NewEnumerator(rules.Standard{}, movegen.WithContinuation(mode))
			res, err := gen.Enumerate(b, hand, player)
			if err != nil {
				return err
			}
			ranked := res.Ranked(rules.Standard{}, b)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d move-sets (%s continuation)\n", len(ranked), mode)
			for i, m := range ranked {
				if limit > 0 && i >= limit {
					break
				}
				fmt.Fprintln(out, shell.MoveTableRow(i, m))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "me", "owner recorded on the generated placements")
	cmd.Flags().IntVarP(&limit, "num", "n", 0, "show at most this many move-sets; 0 shows all")
	return cmd
}
