package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukeerthilangu08/Wordle-llm/internal/feedback"
)

func TestNewCandidatesValidation(t *testing.T) {
	t.Run("empty list rejected", func(t *testing.T) {
		_, err := NewCandidates(nil, 5)
		assert.Error(t, err)
	})
	t.Run("wrong length rejected", func(t *testing.T) {
		_, err := NewCandidates([]string{"crane", "cranes"}, 5)
		assert.Error(t, err)
	})
	t.Run("copies input", func(t *testing.T) {
		list := []string{"crane", "slate"}
		c, err := NewCandidates(list, 5)
		require.NoError(t, err)
		list[0] = "xxxxx"
		assert.Equal(t, []string{"crane", "slate"}, c.Words())
	})
}

func TestFilterScenario(t *testing.T) {
	c, err := NewCandidates([]string{"crane", "slate", "trace", "brace"}, 5)
	require.NoError(t, err)

	// Guessing "crane" against secret "brace".
	marks := feedback.Score("crane", "brace")
	n := c.Filter("crane", marks)
	// "trace" scores identically to "brace" for this guess, so both survive.
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"trace", "brace"}, c.Words())

	// A second probe separates them.
	n = c.Filter("trace", feedback.Score("trace", "brace"))
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"brace"}, c.Words())
}

func TestFilterMonotonicity(t *testing.T) {
	list := []string{"crane", "slate", "trace", "brace", "crate", "stare"}
	for _, guess := range list {
		for _, secret := range list {
			c, err := NewCandidates(list, 5)
			require.NoError(t, err)
			before := c.Len()
			after := c.Filter(guess, feedback.Score(guess, secret))
			assert.LessOrEqual(t, after, before)
		}
	}
}

// If feedback was computed against the true secret, filtering must never
// remove it.
func TestFilterSoundness(t *testing.T) {
	list := []string{"crane", "slate", "trace", "brace", "crate", "stare", "sassy", "llama"}
	for _, guess := range list {
		for _, secret := range list {
			c, err := NewCandidates(list, 5)
			require.NoError(t, err)
			c.Filter(guess, feedback.Score(guess, secret))
			assert.Contains(t, c.Words(), secret,
				"secret %q dropped after guessing %q", secret, guess)
		}
	}
}

func TestFilterInconsistentFeedbackEmptiesSet(t *testing.T) {
	c, err := NewCandidates([]string{"crane"}, 5)
	require.NoError(t, err)
	allMiss := []feedback.Mark{
		feedback.MarkMiss, feedback.MarkMiss, feedback.MarkMiss,
		feedback.MarkMiss, feedback.MarkMiss,
	}
	assert.Equal(t, 0, c.Filter("crane", allMiss))
	assert.Equal(t, 0, c.Len())
}
