package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)

	cfg := &Config{}
	is.NoErr(cfg.Load(nil))

	is.Equal(cfg.GetString("difficulty"), "easy")
	is.Equal(cfg.GetInt64("seed"), int64(0))
	is.Equal(cfg.GetInt("max-attempts"), 100)
	is.Equal(cfg.GetBool("debug"), false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{
		"--difficulty", "hard",
		"--seed", "12345",
		"--max-attempts", "5",
		"--debug",
	}))

	is.Equal(cfg.GetString("difficulty"), "hard")
	is.Equal(cfg.GetInt64("seed"), int64(12345))
	is.Equal(cfg.GetInt("max-attempts"), 5)
	is.Equal(cfg.GetBool("debug"), true)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)

	t.Setenv("TWENTYFOUR_DIFFICULTY", "hard")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetString("difficulty"), "hard")
}
