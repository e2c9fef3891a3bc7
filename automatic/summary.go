package automatic

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iotagame/iota/ai/player"
	"github.com/iotagame/iota/stats"
)

// PlayerSummary is one player's record over a run. Every player sharing
// the top score of a game is credited with a win, as well as a draw if
// there was more than one.
type PlayerSummary struct {
	Name           string  `yaml:"name"`
	Kind           string  `yaml:"kind"`
	Wins           int     `yaml:"wins"`
	Draws          int     `yaml:"draws"`
	WentFirst      int     `yaml:"went_first"`
	WinsGoingFirst int     `yaml:"wins_going_first"`
	MeanScore      float64 `yaml:"mean_score"`
	Stdev          float64 `yaml:"stdev"`
	CI95Low        float64 `yaml:"ci95_low"`
	CI95High       float64 `yaml:"ci95_high"`
	MinScore       float64 `yaml:"min_score"`
	MaxScore       float64 `yaml:"max_score"`

	scores []float64
}

// Summary is the outcome of a batch of games.
type Summary struct {
	Games        int             `yaml:"games"`
	Seed         uint64          `yaml:"seed"`
	Continuation string          `yaml:"continuation"`
	MeanTurns    float64         `yaml:"mean_turns"`
	Players      []PlayerSummary `yaml:"players"`
}

// Summarize builds the summary of finished games. Nil results are skipped.
func Summarize(opts Options, results []*GameResult) *Summary {
	s := &Summary{Seed: opts.Seed, Continuation: opts.Continuation.String()}
	byName := map[string]int{}
	scoreStats := make([]*stats.Statistic, len(opts.Players))
	for i, spec := range opts.Players {
		kind, name := player.ParseSpec(spec)
		byName[name] = i
		s.Players = append(s.Players, PlayerSummary{Name: name, Kind: kind})
		scoreStats[i] = &stats.Statistic{}
	}

	turns := &stats.Statistic{}
	for _, res := range results {
		if res == nil {
			continue
		}
		s.Games++
		turns.Push(float64(res.Turns))
		for name, score := range res.Scores {
			i := byName[name]
			scoreStats[i].Push(float64(score))
			s.Players[i].scores = append(s.Players[i].scores, float64(score))
		}
		s.Players[byName[res.First]].WentFirst++
		for _, w := range res.Winners {
			i := byName[w]
			s.Players[i].Wins++
			if len(res.Winners) > 1 {
				s.Players[i].Draws++
			}
			if w == res.First {
				s.Players[i].WinsGoingFirst++
			}
		}
	}
	s.MeanTurns = turns.Mean()
	for i := range s.Players {
		st := scoreStats[i]
		p := &s.Players[i]
		p.MeanScore = st.Mean()
		p.Stdev = st.Stdev()
		p.CI95Low, p.CI95High = st.ConfidenceInterval(95)
		p.MinScore, p.MaxScore = st.Min(), st.Max()
	}
	return s
}

// Scores returns every final score of the named player, in game order.
func (s *Summary) Scores(name string) []float64 {
	for _, p := range s.Players {
		if p.Name == name {
			return p.scores
		}
	}
	return nil
}

func (s *Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// WinRecord lists each player's wins, by name.
func (s *Summary) WinRecord() string {
	players := make([]PlayerSummary, len(s.Players))
	copy(players, s.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	var sb strings.Builder
	for _, p := range players {
		fmt.Fprintf(&sb, "%s: %d\n", p.Name, p.Wins)
	}
	return sb.String()
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d (mean %.1f turns)\n", s.Games, s.MeanTurns)
	for _, p := range s.Players {
		fmt.Fprintf(&sb, "%-12s %-12s wins: %d (%.3f%%) draws: %d went first: %d\n",
			p.Name, p.Kind, p.Wins, 100*float64(p.Wins)/float64(max(s.Games, 1)),
			p.Draws, p.WentFirst)
		fmt.Fprintf(&sb, "%-12s mean score: %.3f stdev: %.3f 95%% CI: [%.3f, %.3f]\n",
			"", p.MeanScore, p.Stdev, p.CI95Low, p.CI95High)
	}
	return sb.String()
}
