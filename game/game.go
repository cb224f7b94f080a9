// Package game holds the word list preparation and scoring engine. A
// Session owns the solution set for one letter pool and the accumulated
// play state; everything here is pure computation over data loaded at
// startup.
package game

import (
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/michalfabik/spellb/lexicon"
	"github.com/michalfabik/spellb/pool"
)

const (
	// MinWordLength is the shortest playable word.
	MinWordLength = 4
	// PangramBonus is added when a word uses every pool letter.
	PangramBonus = 7
)

// Verdict classifies the outcome of a word evaluation. Rejections are
// values rather than errors; they leave session state untouched.
type Verdict int

const (
	OK Verdict = iota
	Pangram
	InvalidCharacters
	CenterLetterMissing
	TooShort
	NotAWord
	AlreadyFound
)

// Message returns the user-facing text for a verdict. OK has none.
func (v Verdict) Message() string {
	switch v {
	case Pangram:
		return "Pangram!"
	case InvalidCharacters:
		return "Invalid characters in word"
	case CenterLetterMissing:
		return "Center letter not used"
	case TooShort:
		return "Too short"
	case NotAWord:
		return "Invalid word"
	case AlreadyFound:
		return "Already found"
	}
	return ""
}

type State int

const (
	Active State = iota
	Terminated
)

// Session is the per-process game state. Exactly one exists per run; it is
// built once the pool is known and discarded on exit.
type Session struct {
	pool    pool.LetterPool
	words   []string            // solution set, dictionary order
	wordSet map[string]struct{} // membership index over words

	foundWords []string // insertion order
	found      map[string]struct{}

	score             int
	bestPossibleScore int
	state             State
	rng               *frand.RNG
}

// NewSession filters the dictionary down to the solution set for p and
// precomputes the best possible score: the sum of each solution word's
// isolated score. The found-words history is empty at that point, so the
// already-found rejection can never fire during the precomputation.
func NewSession(p pool.LetterPool, dict lexicon.Dictionary, rng *frand.RNG) *Session {
	s := &Session{
		pool:  p,
		found: make(map[string]struct{}),
		rng:   rng,
	}
	s.prepareWordList(dict)
	s.bestPossibleScore = lo.SumBy(s.words, func(w string) int {
		points, _ := s.EvaluateWord(w)
		return points
	})
	return s
}

// prepareWordList keeps the dictionary entries playable for the pool:
// length at least MinWordLength, center letter present, all letters drawn
// from the pool (repeats fine) and at least one vowel-or-y. The vowel rule
// weeds out the obscure all-consonant entries generic word lists carry.
func (s *Session) prepareWordList(dict lexicon.Dictionary) {
	s.wordSet = make(map[string]struct{})
	for _, word := range dict {
		if len(word) < MinWordLength {
			continue
		}
		if strings.IndexByte(word, s.pool.Center()) < 0 {
			continue
		}
		if !s.pool.SubsetMatch(word) {
			continue
		}
		if !lexicon.HasVowel(word) {
			continue
		}
		s.words = append(s.words, word)
		s.wordSet[word] = struct{}{}
	}
}

// EvaluateWord scores a candidate word without mutating state. The checks
// short-circuit in a fixed order; the first failure decides the verdict.
// A 4-letter word scores 1 point, longer words score their length, and a
// word using all seven pool letters earns the pangram bonus on top.
func (s *Session) EvaluateWord(word string) (int, Verdict) {
	if !lexicon.Alphabetic(word) {
		return 0, InvalidCharacters
	}
	if strings.IndexByte(word, s.pool.Center()) < 0 {
		return 0, CenterLetterMissing
	}
	if len(word) < MinWordLength {
		return 0, TooShort
	}
	if _, ok := s.wordSet[word]; !ok {
		return 0, NotAWord
	}
	if _, ok := s.found[word]; ok {
		return 0, AlreadyFound
	}
	points := len(word)
	if len(word) == MinWordLength {
		points = 1
	}
	if s.isPangram(word) {
		return points + PangramBonus, Pangram
	}
	return points, OK
}

// Submit evaluates word and, on success, records it and adds its points.
func (s *Session) Submit(word string) (int, Verdict) {
	points, verdict := s.EvaluateWord(word)
	if points > 0 {
		s.score += points
		s.foundWords = append(s.foundWords, word)
		s.found[word] = struct{}{}
	}
	return points, verdict
}

func (s *Session) isPangram(word string) bool {
	if len(word) < pool.PoolSize {
		return false
	}
	for _, l := range s.pool {
		if strings.IndexByte(word, l) < 0 {
			return false
		}
	}
	return true
}

func (s *Session) Pool() pool.LetterPool { return s.pool }

// Words returns the solution set in dictionary order. Callers must not
// modify it.
func (s *Session) Words() []string { return s.words }

// FoundWords returns a copy of the found words in insertion order.
func (s *Session) FoundWords() []string {
	out := make([]string, len(s.foundWords))
	copy(out, s.foundWords)
	return out
}

func (s *Session) Score() int { return s.score }

// BestPossibleScore is a static property of pool plus dictionary; it never
// changes after NewSession.
func (s *Session) BestPossibleScore() int { return s.bestPossibleScore }

// ShufflePetals permutes the pool's petal display order. Membership and
// center are untouched.
func (s *Session) ShufflePetals() {
	s.pool.Shuffle(s.rng)
}

func (s *Session) Terminate() { s.state = Terminated }

func (s *Session) State() State { return s.state }
