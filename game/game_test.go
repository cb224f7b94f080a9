package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/michalfabik/spellb/lexicon"
	"github.com/michalfabik/spellb/pool"
)

// Pool "taserin": center t, petals a s e r i n.
var testDict = lexicon.Dictionary{
	"tea",     // too short
	"rest",    // 1 point
	"nest",    // 1 point
	"tears",   // 5 points
	"tarts",   // 5 points
	"resin",   // no center letter
	"astern",  // 6 points
	"rattens", // 7 letters but no i: 7 points, no bonus
	"retains", // pangram: 7 + 7
	"strain",  // 6 points
	"Tessa",   // capitalized, never subset-matches
	"attire",  // 6 points
}

func testSession(t *testing.T) *Session {
	t.Helper()
	p, err := pool.Validate("taserin")
	assert.NoError(t, err)
	return NewSession(p, testDict, frand.NewCustom(make([]byte, 32), 1024, 12))
}

func TestPrepareWordList(t *testing.T) {
	s := testSession(t)
	assert.Equal(t, []string{
		"rest", "nest", "tears", "tarts", "astern", "rattens",
		"retains", "strain", "attire",
	}, s.Words())
}

func TestEvaluateWordRejections(t *testing.T) {
	s := testSession(t)
	cases := []struct {
		word    string
		verdict Verdict
	}{
		{"tea4", InvalidCharacters},
		{"Rest", InvalidCharacters},
		{"it's", InvalidCharacters},
		{"resin", CenterLetterMissing},
		{"tat", TooShort},
		{"tuna", NotAWord}, // u is not a pool letter
		{"tart", NotAWord}, // pool letters only, but not in the dictionary
	}
	for _, c := range cases {
		points, verdict := s.EvaluateWord(c.word)
		assert.Zero(t, points, c.word)
		assert.Equal(t, c.verdict, verdict, c.word)
	}
}

func TestEvaluateWordScoring(t *testing.T) {
	s := testSession(t)
	cases := []struct {
		word    string
		points  int
		verdict Verdict
	}{
		{"rest", 1, OK},
		{"tears", 5, OK},
		{"astern", 6, OK},
		{"rattens", 7, OK},       // length 7, missing i: no bonus
		{"retains", 14, Pangram}, // 7 + 7
	}
	for _, c := range cases {
		points, verdict := s.EvaluateWord(c.word)
		assert.Equal(t, c.points, points, c.word)
		assert.Equal(t, c.verdict, verdict, c.word)
	}
}

func TestSubmitAlreadyFound(t *testing.T) {
	s := testSession(t)
	points, verdict := s.Submit("tears")
	assert.Equal(t, 5, points)
	assert.Equal(t, OK, verdict)

	points, verdict = s.Submit("tears")
	assert.Zero(t, points)
	assert.Equal(t, AlreadyFound, verdict)

	assert.Equal(t, 5, s.Score())
	assert.Equal(t, []string{"tears"}, s.FoundWords())
}

func TestSubmitRejectionLeavesStateUnchanged(t *testing.T) {
	s := testSession(t)
	points, verdict := s.Submit("resin")
	assert.Zero(t, points)
	assert.Equal(t, CenterLetterMissing, verdict)
	assert.Zero(t, s.Score())
	assert.Empty(t, s.FoundWords())
}

func TestBestPossibleScore(t *testing.T) {
	s := testSession(t)
	// 1 + 1 + 5 + 5 + 6 + 7 + 14 + 6 + 6
	assert.Equal(t, 51, s.BestPossibleScore())

	// a static property of pool + dictionary: submissions never move it
	s.Submit("retains")
	s.Submit("rest")
	assert.Equal(t, 51, s.BestPossibleScore())

	fresh := testSession(t)
	sum := 0
	for _, w := range fresh.Words() {
		points, _ := fresh.EvaluateWord(w)
		sum += points
	}
	assert.Equal(t, sum, s.BestPossibleScore())
}

func TestShufflePetalsKeepsMembership(t *testing.T) {
	s := testSession(t)
	before := s.Pool()
	s.ShufflePetals()
	after := s.Pool()
	assert.Equal(t, before.Center(), after.Center())
	for _, l := range before {
		assert.True(t, after.Contains(l))
	}
}

func TestSessionState(t *testing.T) {
	s := testSession(t)
	assert.Equal(t, Active, s.State())
	s.Terminate()
	assert.Equal(t, Terminated, s.State())
}
