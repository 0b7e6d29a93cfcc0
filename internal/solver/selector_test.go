package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCands(t *testing.T, list ...string) *Candidates {
	t.Helper()
	c, err := NewCandidates(list, 5)
	require.NoError(t, err)
	return c
}

func TestPickEmpty(t *testing.T) {
	c := newCands(t, "crane")
	c.Filter("crane", allMissMarks())
	sel := NewSelector("soare", rand.New(rand.NewSource(1)))
	assert.Equal(t, "", sel.Pick(c, false))
}

func TestPickOpener(t *testing.T) {
	sel := NewSelector("soare", rand.New(rand.NewSource(1)))

	t.Run("used on first attempt", func(t *testing.T) {
		c := newCands(t, "crane", "slate", "soare", "trace")
		assert.Equal(t, "soare", sel.Pick(c, true))
	})
	t.Run("skipped on later attempts", func(t *testing.T) {
		c := newCands(t, "crane", "slate", "soare", "trace")
		assert.NotEqual(t, "soare", sel.Pick(c, false))
	})
	t.Run("skipped when not a candidate", func(t *testing.T) {
		c := newCands(t, "crane", "slate", "trace")
		got := sel.Pick(c, true)
		assert.Contains(t, c.Words(), got)
	})
	t.Run("disabled when empty", func(t *testing.T) {
		none := NewSelector("", rand.New(rand.NewSource(1)))
		c := newCands(t, "crane", "slate", "soare", "trace")
		got := none.Pick(c, true)
		assert.Contains(t, c.Words(), got)
	})
}

func TestPickSmallSetIsRandomMember(t *testing.T) {
	c := newCands(t, "crane", "slate")
	sel := NewSelector("soare", rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		assert.Contains(t, c.Words(), sel.Pick(c, false))
	}

	// Same seed, same sequence of picks.
	a := NewSelector("soare", rand.New(rand.NewSource(7)))
	b := NewSelector("soare", rand.New(rand.NewSource(7)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(c, false), b.Pick(c, false))
	}
}

func TestPickFrequencyScoring(t *testing.T) {
	// Letter popularity over {aaaaa, abbbb, ccccc}:
	//   a: 2 words, b: 1 word, c: 1 word.
	// Scores: aaaaa={a}=2, abbbb={a,b}=3, ccccc={c}=1.
	c := newCands(t, "aaaaa", "abbbb", "ccccc")
	sel := NewSelector("", rand.New(rand.NewSource(1)))
	assert.Equal(t, "abbbb", sel.Pick(c, false))
}

func TestPickDeterministicOutsideSmallSet(t *testing.T) {
	c := newCands(t, "crane", "slate", "trace", "brace", "stare")
	sel := NewSelector("", rand.New(rand.NewSource(1)))
	first := sel.Pick(c, false)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, sel.Pick(c, false))
	}
}

func TestPickTieBreakIsFirstEncountered(t *testing.T) {
	// Anagrams share a letter set, so they always score identically;
	// the earlier candidate must win.
	c := newCands(t, "least", "slate", "steal", "tales")
	sel := NewSelector("", rand.New(rand.NewSource(1)))
	assert.Equal(t, "least", sel.Pick(c, false))
}
