package shell

import (
	"errors"
	"strings"
)

// command is one entry in the colon-command table. Hidden commands never
// take part in prefix matching; they must be typed out in full.
type command struct {
	name   string
	help   string
	hidden bool
}

var commands = []command{
	{"cheat", "", true},
	{"help", "Show this help", false},
	{"list", "Show words found so far", false},
	{"score", "Show current score", false},
	{"show", "Show available letters (in case they've scrolled out of view)", false},
	{"shuffle", "Shuffle letters, for inspiration", false},
	{"quit", "Quit game", false},
	{"target", "Show highest score and letter count possible for given set of letters", false},
}

var ErrInvalidCommand = errors.New("invalid command")

type AmbiguousCommandError struct {
	Candidates []string
}

func (e *AmbiguousCommandError) Error() string {
	return "ambiguous command: " + strings.Join(e.Candidates, ", ")
}

// resolveCommand matches input against the command table. Visible commands
// resolve by any prefix that identifies exactly one of them; hidden
// commands resolve only on an exact match.
func resolveCommand(input string) (string, error) {
	var candidates []string
	for _, c := range commands {
		if c.hidden {
			if c.name == input {
				return c.name, nil
			}
			continue
		}
		if strings.HasPrefix(c.name, input) {
			candidates = append(candidates, c.name)
		}
	}
	switch len(candidates) {
	case 0:
		return "", ErrInvalidCommand
	case 1:
		return candidates[0], nil
	}
	return "", &AmbiguousCommandError{Candidates: candidates}
}
