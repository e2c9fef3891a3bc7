package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/iotagame/iota/config"
	"github.com/iotagame/iota/movegen"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -log /path/to/log.txt",
			&shellcmd{"autoplay", nil, map[string]string{"log": "/path/to/log.txt"}},
			nil},
		{"new dave falvey",
			&shellcmd{"new", []string{"dave", "falvey"}, map[string]string{}},
			nil},
		{"autoplay exhaustive:falvey 'best-single:d k' -games 10 ",
			&shellcmd{"autoplay",
				[]string{"exhaustive:falvey", "best-single:d k"},
				map[string]string{"games": "10"}},
			nil,
		},
		{"autoplay dave derrick -games",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController() (*ShellController, *bytes.Buffer) {
	var buf bytes.Buffer
	return &ShellController{out: &buf, cfg: config.DefaultConfig()}, &buf
}

func TestNeedsAGame(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController()
	for _, line := range []string{"board", "hand", "gen", "step", "play", "history"} {
		_, err := sc.handle(line)
		is.Equal(err, errNoGame)
	}
	_, err := sc.handle("castle")
	is.True(err != nil)
}

func TestGameCommands(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController()

	resp, err := sc.handle("new dave:alice falvey:bob -seed 7")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "alice"))

	resp, err = sc.handle("hand")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, sc.game.PlayerOnTurn()+": "))

	_, err = sc.handle("hand nobody")
	is.True(err != nil)

	resp, err = sc.handle("gen 3")
	is.NoErr(err)
	is.True(len(sc.genPlays) > 0)
	is.True(strings.Contains(resp.message, "  1: "))
	is.True(!strings.Contains(resp.message, "  4: "))

	_, err = sc.handle("step")
	is.NoErr(err)
	is.Equal(sc.game.Turn(), 1)

	resp, err = sc.handle("play")
	is.NoErr(err)
	is.True(sc.game.IsOver())
	is.True(strings.Contains(resp.message, "Winner is") || strings.Contains(resp.message, "Draw"))

	resp, err = sc.handle("history")
	is.NoErr(err)
	is.Equal(strings.Count(resp.message, "\n"), sc.game.Turn())

	_, err = sc.handle("play")
	is.True(err != nil)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController()
	_, err := sc.handle("set continuation north")
	is.NoErr(err)
	is.Equal(sc.curMode, movegen.ContinueNorthAfterFirst)
	is.Equal(sc.cfg.GetString(config.ConfigContinuation), "north")

	_, err = sc.handle("set continuation sideways")
	is.True(err != nil)
	_, err = sc.handle("set colour red")
	is.True(err != nil)
}

func TestAutoplay(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController()
	resp, err := sc.handle("autoplay dave derrick -games 4 -threads 2 -seed 5")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Games played: 4"))
	is.True(strings.Contains(resp.message, "dave: "))

	_, err = sc.handle("autoplay dave derrick -games 4 -bogus 1")
	is.True(err != nil)
}

func TestAutoplayBadOptionLeavesNoLog(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController()
	logPath := filepath.Join(t.TempDir(), "turns.csv")
	_, err := sc.handle("autoplay dave derrick -log " + logPath + " -games x")
	is.True(err != nil)
	_, err = os.Stat(logPath)
	is.True(os.IsNotExist(err))

	_, err = sc.handle("autoplay dave derrick -log " + logPath + " -games 2 -threads 1")
	is.NoErr(err)
	dat, err := os.ReadFile(logPath)
	is.NoErr(err)
	is.True(strings.HasPrefix(string(dat), "playerID,gameID,turn"))
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, buf := newTestController()
	_, err := sc.handle("help")
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), "autoplay"))
	buf.Reset()
	_, err = sc.handle("help gen")
	is.NoErr(err)
	is.True(strings.HasPrefix(buf.String(), "gen [n]"))
	buf.Reset()
	_, err = sc.handle("help nothing")
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), "no help text"))
}
