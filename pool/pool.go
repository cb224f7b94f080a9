// Package pool produces and validates the seven-letter pool a session is
// played with.
package pool

import (
	"errors"
	"strings"

	"lukechampine.com/frand"

	"github.com/michalfabik/spellb/lexicon"
)

// PoolSize is the number of distinct letters in a pool. Like the vowel
// heuristic, this is a tuning constant, not a law of nature.
const PoolSize = 7

var (
	ErrInvalidCharacters = errors.New("invalid characters in letter pool, only English letters are allowed of which at most one can be uppercase")
	ErrAmbiguousCenter   = errors.New("invalid letter pool format, at most one letter can be uppercase")
	ErrWrongLetterCount  = errors.New("a letter pool must contain exactly seven unique letters")
	ErrNoCandidates      = errors.New("dictionary contains no suitable pool candidates")
)

// LetterPool holds the seven distinct lowercase letters of a session.
// Index 0 is the center (mandatory) letter; indexes 1-6 are the petals, in
// display order. Membership is fixed for the session; only petal order may
// be permuted.
type LetterPool [PoolSize]byte

func (p LetterPool) Center() byte { return p[0] }

func (p LetterPool) Petals() []byte {
	petals := make([]byte, PoolSize-1)
	copy(petals, p[1:])
	return petals
}

func (p LetterPool) Contains(c byte) bool {
	for _, l := range p {
		if l == c {
			return true
		}
	}
	return false
}

// String returns the canonical form: center letter first, then petals in
// display order. Validate accepts this form and reproduces the same pool.
func (p LetterPool) String() string {
	return string(p[:])
}

// SubsetMatch reports whether every character of word is a pool letter.
// Repeats are allowed; this is set membership, not an anagram check.
func (p LetterPool) SubsetMatch(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !p.Contains(word[i]) {
			return false
		}
	}
	return true
}

// Shuffle permutes the petal letters in place. The center stays put.
func (p *LetterPool) Shuffle(rng *frand.RNG) {
	rng.Shuffle(PoolSize-1, func(i, j int) {
		p[i+1], p[j+1] = p[j+1], p[i+1]
	})
}

// Generate picks a pool from the dictionary. A word seeds a pool if it is
// at least PoolSize letters long, has exactly PoolSize distinct letters,
// contains a vowel-or-y and is entirely lowercase alphabetic. One seed is
// chosen uniformly; the center is whichever of its letters lands first
// after the shuffle, which makes the center pick uniform too.
func Generate(dict lexicon.Dictionary, rng *frand.RNG) (LetterPool, error) {
	var candidates [][]byte
	for _, word := range dict {
		if len(word) < PoolSize {
			continue
		}
		if !lexicon.Alphabetic(word) || !lexicon.HasVowel(word) {
			continue
		}
		distinct := distinctLetters(word)
		if len(distinct) != PoolSize {
			continue
		}
		candidates = append(candidates, distinct)
	}
	if len(candidates) == 0 {
		return LetterPool{}, ErrNoCandidates
	}
	letters := candidates[rng.Intn(len(candidates))]
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	var p LetterPool
	copy(p[:], letters)
	return p, nil
}

// Validate builds a pool from a user-supplied string. At most one letter
// may be uppercase and marks the center; with no uppercase letter the
// first character is the center. The string must contain exactly PoolSize
// distinct letters.
func Validate(input string) (LetterPool, error) {
	if input == "" {
		return LetterPool{}, ErrInvalidCharacters
	}
	var center byte
	uppercase := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			uppercase++
			center = c + ('a' - 'A')
		default:
			return LetterPool{}, ErrInvalidCharacters
		}
	}
	if uppercase > 1 {
		return LetterPool{}, ErrAmbiguousCenter
	}
	lowered := strings.ToLower(input)
	if uppercase == 0 {
		center = lowered[0]
	}
	distinct := distinctLetters(lowered)
	if len(distinct) != PoolSize {
		return LetterPool{}, ErrWrongLetterCount
	}
	var p LetterPool
	p[0] = center
	i := 1
	for _, c := range distinct {
		if c != center {
			p[i] = c
			i++
		}
	}
	return p, nil
}

func distinctLetters(word string) []byte {
	var seen [26]bool
	var letters []byte
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' || seen[c-'a'] {
			continue
		}
		seen[c-'a'] = true
		letters = append(letters, c)
	}
	return letters
}
