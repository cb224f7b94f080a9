// Package lexicon loads the flat word list that the game draws from. The
// list is read once per session and never retained as an open handle.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Vowels is the character class for the obscure-word heuristic. Playable
// words and pool candidates must contain at least one of these.
const Vowels = "aeiouy"

type Dictionary []string

// Load reads a newline-delimited word list. Entries are trimmed but not
// case-folded; capitalized entries (proper nouns in most system word lists)
// simply never match a lowercase letter pool.
func Load(path string) (Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()

	var words Dictionary
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded dictionary")
	return words, nil
}

// HasVowel reports whether the word contains a vowel or y.
func HasVowel(word string) bool {
	return strings.ContainsAny(word, Vowels)
}

// Alphabetic reports whether the word is nonempty and consists only of
// lowercase ASCII letters.
func Alphabetic(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
