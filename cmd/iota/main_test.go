package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenCommand(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "gen", "--log-level", "warn", "RC2@0,0", "RC1 RC3")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "32 move-sets (straight continuation)"))
	is.True(strings.Contains(out, "  1: "))
}

func TestGenLimit(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "gen", "-n", "2", "--continuation", "north", "RC2@0,0", "RC1 RC3")
	is.NoErr(err)
	is.True(strings.Contains(out, "north continuation"))
	is.True(strings.Contains(out, "  2: "))
	is.True(!strings.Contains(out, "  3: "))
}

func TestGenBadInput(t *testing.T) {
	is := is.New(t)
	_, err := run(t, "gen", "RC2@0", "RC1")
	is.True(err != nil)
	_, err = run(t, "gen", "RC2@0,0", "QQ1")
	is.True(err != nil)
	_, err = run(t, "gen", "--continuation", "sideways", "RC2@0,0", "RC1")
	is.True(err != nil)
}

func TestAutoplayCommand(t *testing.T) {
	is := is.New(t)
	out, err := run(t, "autoplay", "--games", "2", "--threads", "2", "--seed", "cmd",
		"dave", "derrick")
	is.NoErr(err)
	is.True(strings.Contains(out, "Games played: 2"))
	is.True(strings.Contains(out, "derrick: "))
}
