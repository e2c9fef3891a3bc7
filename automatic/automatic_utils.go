package automatic

// Computer vs computer play: many games at once, with an optional turn log.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/iotagame/iota/movegen"
	"github.com/iotagame/iota/rules"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")
	ErrNoGames        = errors.New("number of games must be positive")
)

// running guards against overlapping runs; IsPlaying mirrors it for expvar.
var running atomic.Bool

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Options describes a batch of games.
type Options struct {
	// Players are "kind[:name]" descriptions, in the order given.
	Players []string
	Games   int
	Threads int
	// Seed is the base every game's seed is derived from. Seeds, when set,
	// are used instead, one per game, and cycled if there are fewer than
	// Games.
	Seed  uint64
	Seeds [][32]byte

	Oracle       rules.Oracle
	Continuation movegen.ContinuationMode
	// TurnLog receives a CSV record per turn when not nil.
	TurnLog io.Writer
}

func (o *Options) seedFor(n int) [32]byte {
	if len(o.Seeds) > 0 {
		return o.Seeds[n%len(o.Seeds)]
	}
	return DeriveSeed(o.Seed, n)
}

// StartCompVComp plays opts.Games games with up to opts.Threads of them
// running at once and returns the summary. Cancelling ctx stops the run;
// the games finished by then are not summarized.
func StartCompVComp(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Games <= 0 {
		return nil, ErrNoGames
	}
	if opts.Threads <= 0 {
		opts.Threads = 1
	}
	if opts.Oracle == nil {
		opts.Oracle = rules.Standard{}
	}
	if !running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	IsPlaying.Set(1)
	defer func() {
		IsPlaying.Set(0)
		running.Store(false)
	}()
	CVCCounter.Set(0)

	log.Debug().Int("games", opts.Games).Int("threads", opts.Threads).
		Strs("players", opts.Players).Msg("starting games")

	var logChan chan []string
	writer := errgroup.Group{}
	if opts.TurnLog != nil {
		logChan = make(chan []string, 100)
		w := csv.NewWriter(opts.TurnLog)
		writer.Go(func() error {
			// the channel is always drained, or games would block on it
			werr := w.Write(TurnLogHeader)
			for rec := range logChan {
				if werr == nil {
					werr = w.Write(rec)
				}
			}
			if werr != nil {
				log.Error().Err(werr).Msg("writing turn log")
				return werr
			}
			w.Flush()
			log.Debug().Msg("turn logger exiting")
			return w.Error()
		})
	}

	results := make([]*GameResult, opts.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Threads)
	for i := 0; i < opts.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			r := NewGameRunner(logChan, opts.Players, opts.Oracle, opts.Continuation)
			res, err := r.PlayGame(gctx, opts.seedFor(i))
			if err != nil {
				return err
			}
			results[i] = res
			CVCCounter.Add(1)
			if n := CVCCounter.Value(); n%1000 == 0 {
				log.Info().Int64("games", n).Msg("games finished")
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if logChan != nil {
		close(logChan)
	}
	if werr := writer.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("games", opts.Games).Msg("all games finished")
	return Summarize(opts, results), nil
}
