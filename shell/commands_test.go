package shell

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestResolveCommand(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		input  string
		expCmd string
		expErr error
	}
	cases := []testdata{
		{"h", "help", nil},
		{"help", "help", nil},
		{"l", "list", nil},
		{"sc", "score", nil},
		{"q", "quit", nil},
		{"t", "target", nil},
		{"x", "", ErrInvalidCommand},
		{"helpme", "", ErrInvalidCommand},
		// hidden commands require an exact match
		{"c", "", ErrInvalidCommand},
		{"chea", "", ErrInvalidCommand},
		{"cheat", "cheat", nil},
	}
	for _, c := range cases {
		cmd, err := resolveCommand(c.input)
		is.Equal(cmd, c.expCmd)
		is.Equal(err, c.expErr)
	}
}

func TestResolveCommandAmbiguous(t *testing.T) {
	is := is.New(t)

	_, err := resolveCommand("s")
	var amb *AmbiguousCommandError
	is.True(errors.As(err, &amb))
	is.Equal(amb.Candidates, []string{"score", "show", "shuffle"})

	_, err = resolveCommand("sh")
	is.True(errors.As(err, &amb))
	is.Equal(amb.Candidates, []string{"show", "shuffle"})

	// the bare colon matches every visible command
	_, err = resolveCommand("")
	is.True(errors.As(err, &amb))
	is.Equal(len(amb.Candidates), len(commands)-1)
}
