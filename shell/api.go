package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iotagame/iota/ai/player"
	"github.com/iotagame/iota/automatic"
	"github.com/iotagame/iota/config"
	"github.com/iotagame/iota/game"
	"github.com/iotagame/iota/movegen"
	"github.com/iotagame/iota/rules"
)

const defaultGenPlays = 15

func (sc *ShellController) players(args []string, seed [32]byte) ([]game.Player, error) {
	specs := args
	if len(specs) == 0 {
		specs = sc.cfg.GetStringSlice(config.ConfigPlayers)
	}
	ps := make([]game.Player, len(specs))
	for i, spec := range specs {
		kind, name := player.ParseSpec(spec)
		pseed := seed
		pseed[31] ^= byte(i + 1)
		p, err := player.ByName(kind, name, rules.Standard{}, sc.curMode, pseed)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	var opts []game.Option
	var seed [32]byte
	if s, ok := cmd.options["seed"]; ok {
		seed = automatic.DeriveSeed(automatic.SeedFromString(s), 0)
		opts = append(opts, game.WithSeed(seed))
	} else {
		seed = automatic.GenerateSeeds(1)[0]
		opts = append(opts, game.WithSeed(seed))
	}
	players, err := sc.players(cmd.args, seed)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(players, opts...)
	if err != nil {
		return nil, err
	}
	sc.game = g
	sc.genPlays = nil
	return Msg(g.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return Msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) hand(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	name := sc.game.PlayerOnTurn()
	if len(cmd.args) > 0 {
		name = cmd.args[0]
	}
	h := sc.game.HandOf(name)
	if h == nil {
		return nil, fmt.Errorf("no player named %q", name)
	}
	return Msg(fmt.Sprintf("%s: %s", name, h)), nil
}

func moveTableHeader() string {
	return "     Move                               Cards Score"
}

func MoveTableRow(idx int, m movegen.ScoredMoveSet) string {
	return fmt.Sprintf("%3d: %-35s%-6d%-5d", idx+1,
		m.MoveSet.ShortDescription(), m.MoveSet.Len(), m.Score)
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	numPlays := defaultGenPlays
	if len(cmd.args) > 0 {
		var err error
		numPlays, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	name := sc.game.PlayerOnTurn()
	b := sc.game.Board()
	gen := movegen.NewEnumerator(rules.Standard{}, movegen.WithContinuation(sc.curMode))
	res, err := gen.Enumerate(b, sc.game.HandOf(name), name)
	if err != nil {
		return nil, err
	}
	sc.genPlays = res.Ranked(rules.Standard{}, b)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d move-sets for %s (%s)\n", len(sc.genPlays), name, sc.game.HandOf(name))
	sb.WriteString(moveTableHeader() + "\n")
	for i, p := range sc.genPlays {
		if i >= numPlays {
			break
		}
		sb.WriteString(MoveTableRow(i, p) + "\n")
	}
	return Msg(sb.String()), nil
}

func (sc *ShellController) step(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if err := sc.game.Step(); err != nil {
		return nil, err
	}
	sc.genPlays = nil
	return Msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) playOut(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.game.IsOver() {
		return nil, game.ErrGameOver
	}
	sc.game.Play()
	winners := sc.game.Winners()
	var sb strings.Builder
	sb.WriteString(sc.game.ToDisplayText() + "\n")
	if len(winners) > 1 {
		sb.WriteString("Draw between players " + strings.Join(winners, " and ") + ".")
	} else {
		sb.WriteString("Winner is " + winners[0] + ".")
	}
	return Msg(sb.String()), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var sb strings.Builder
	for _, m := range sc.game.History() {
		fmt.Fprintf(&sb, "%3d %-12s %-12s %-35s %d\n", m.Turn(), m.Player(),
			m.Hand(), m.ShortDescription(), m.Score())
	}
	return Msg(sb.String()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	opts := automatic.Options{
		Players:      cmd.args,
		Games:        sc.cfg.GetInt(config.ConfigAutoplayGames),
		Threads:      sc.cfg.GetInt(config.ConfigAutoplayThreads),
		Seed:         automatic.SeedFromString(sc.cfg.GetString(config.ConfigAutoplaySeed)),
		Continuation: sc.curMode,
		Oracle:       rules.Standard{},
	}
	if len(opts.Players) == 0 {
		opts.Players = sc.cfg.GetStringSlice(config.ConfigPlayers)
	}
	var err error
	for k, v := range cmd.options {
		switch k {
		case "games":
			opts.Games, err = strconv.Atoi(v)
		case "threads":
			opts.Threads, err = strconv.Atoi(v)
		case "seed":
			opts.Seed = automatic.SeedFromString(v)
		case "seedfile":
			opts.Seeds, err = automatic.LoadSeeds(v)
		case "log", "summary":
			// files are only created once every option is good
		default:
			err = errors.New("option " + k + " not recognized")
		}
		if err != nil {
			return nil, err
		}
	}
	if path, ok := cmd.options["log"]; ok {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		opts.TurnLog = f
	}

	sum, err := automatic.StartCompVComp(context.Background(), opts)
	if err != nil {
		return nil, err
	}
	if path, ok := cmd.options["summary"]; ok {
		y, err := sum.YAML()
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, y, 0o644); err != nil {
			return nil, err
		}
	}

	var sb strings.Builder
	sb.WriteString(sum.String())
	sb.WriteString("\n" + sum.WinRecord())
	// a histogram needs some spread to bin
	if len(sum.Players) > 0 && sum.Players[0].MinScore < sum.Players[0].MaxScore {
		first := sum.Players[0].Name
		sb.WriteString("\nScore distribution for " + first + ":\n")
		hist := histogram.Hist(15, sum.Scores(first))
		if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
			return nil, err
		}
	}
	return Msg(sb.String()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	switch cmd.args[0] {
	case config.ConfigContinuation:
		m, err := movegen.ParseContinuationMode(cmd.args[1])
		if err != nil {
			return nil, err
		}
		sc.curMode = m
		sc.cfg.Set(config.ConfigContinuation, m.String())
	case config.ConfigLogLevel:
		lvl, err := zerolog.ParseLevel(cmd.args[1])
		if err != nil {
			return nil, err
		}
		zerolog.SetGlobalLevel(lvl)
		sc.cfg.Set(config.ConfigLogLevel, cmd.args[1])
	default:
		return nil, errors.New("no such option: " + cmd.args[0])
	}
	log.Debug().Str("option", cmd.args[0]).Str("value", cmd.args[1]).Msg("set")
	return Msg(cmd.args[0] + " set to " + cmd.args[1]), nil
}
