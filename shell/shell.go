// Package shell is the interactive front end: a readline loop that treats
// colon-prefixed lines as commands and everything else as word
// submissions against the game session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/michalfabik/spellb/game"
)

const (
	green  = "\033[92m"
	yellow = "\033[93m"
	endClr = "\033[0m"
)

type ShellController struct {
	l       *readline.Instance
	session *game.Session
	sig     chan os.Signal
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(session *game.Session, sig chan os.Signal) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mspellb>\033[0m ",
		HistoryFile:     "/tmp/spellb_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, session: session, sig: sig}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

// Loop blocks on one line of input at a time until the session ends.
// Empty line, EOF and interrupt all terminate; soft rejections never do.
func (sc *ShellController) Loop() {
	defer sc.l.Close()

	sc.showMessage(`Type words. Type ":help" for more info. Type ":quit" to quit.`)
	sc.displayLetterPool()

	for sc.session.State() == game.Active {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			break
		}
		if strings.HasPrefix(line, ":") {
			sc.executeCommand(line[1:])
			continue
		}
		sc.submitWord(line)
	}
	sc.session.Terminate()
	log.Debug().Msg("exiting readline loop")
	sc.sig <- syscall.SIGINT
}

func (sc *ShellController) submitWord(word string) {
	points, verdict := sc.session.Submit(word)
	display := strconv.Itoa(points)
	if points > 0 {
		display = green + display + endClr
	}
	message := verdict.Message()
	if verdict == game.Pangram {
		message = green + message + endClr
	}
	sc.showMessage(fmt.Sprintf("+%s %s", display, message))
}

func (sc *ShellController) executeCommand(name string) {
	cmd, err := resolveCommand(name)
	if err != nil {
		var amb *AmbiguousCommandError
		if errors.As(err, &amb) {
			sc.showMessage("Ambiguous command: " + strings.Join(amb.Candidates, ", "))
		} else {
			sc.showMessage("Invalid command")
		}
		return
	}
	switch cmd {
	case "cheat":
		sc.showMessage(strings.Join(sc.session.Words(), " "))
	case "help":
		sc.usage()
	case "list":
		words := sc.session.FoundWords()
		sort.Strings(words)
		sc.showMessage(fmt.Sprintf("%s\n%d words", strings.Join(words, " "), len(words)))
	case "score":
		sc.showMessage(strconv.Itoa(sc.session.Score()))
	case "show":
		sc.displayLetterPool()
	case "shuffle":
		sc.session.ShufflePetals()
		sc.displayLetterPool()
	case "quit":
		sc.session.Terminate()
	case "target":
		sc.showMessage(fmt.Sprintf("%d words, %d points",
			len(sc.session.Words()), sc.session.BestPossibleScore()))
	}
}

// displayLetterPool prints the pool as a flower: petals green around a
// yellow center.
func (sc *ShellController) displayLetterPool() {
	letters := strings.ToUpper(sc.session.Pool().String())
	sc.showMessage(fmt.Sprintf(
		"%s  %c   %c%s\n%s%c   %s%c   %s%c%s\n%s  %c   %c%s\n",
		green, letters[1], letters[2], endClr,
		green, letters[3], yellow, letters[0], green, letters[4], endClr,
		green, letters[5], letters[6], endClr))
}
