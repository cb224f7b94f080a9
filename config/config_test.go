package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"-p", "tAserin", "--debug"})
	is.NoErr(err)
	is.Equal(cfg.GetString("pool"), "tAserin")
	is.True(cfg.GetBool("debug"))
	is.Equal(cfg.GetString("dictionary-path"), "/usr/share/dict/words")
}

func TestLoadEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("SPELLB_DICTIONARY_PATH", "/tmp/words.txt")
	cfg := &Config{}
	err := cfg.Load(nil)
	is.NoErr(err)
	is.Equal(cfg.GetString("dictionary-path"), "/tmp/words.txt")
}
