// internal/solver/selector.go
//
// Guess selection policy, in order:
//   1. No candidates → no guess.
//   2. First attempt → the configured opener, if it is still a candidate.
//   3. Two or fewer candidates → a uniform random pick; scoring cannot
//      separate them and a direct guess may win outright.
//   4. Otherwise → the candidate whose distinct letters appear in the most
//      remaining candidates (greedy letter-frequency heuristic, a cheap
//      stand-in for information gain).
//
// Randomness is injected so runs are reproducible under a fixed seed.

package solver

import (
	"math/rand"
	"time"
)

// DefaultOpener is a strong precomputed first guess.
const DefaultOpener = "soare"

// Selector picks the next probe word from the surviving candidates.
type Selector struct {
	opener string
	rng    *rand.Rand
}

// NewSelector constructs a Selector. An empty opener disables the
// fixed-opening special case. A nil rng falls back to a time-seeded
// source; tests pass a fixed seed for reproducible small-set picks.
func NewSelector(opener string, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{opener: opener, rng: rng}
}

// Pick returns the next guess, or "" when no candidates remain.
func (s *Selector) Pick(c *Candidates, firstAttempt bool) string {
	words := c.Words()
	if len(words) == 0 {
		return ""
	}
	if firstAttempt && s.opener != "" && contains(words, s.opener) {
		return s.opener
	}
	if len(words) <= 2 {
		return words[s.rng.Intn(len(words))]
	}

	// Corpus-wide letter popularity: for each letter, the number of
	// candidates containing it at least once.
	var popularity [26]int
	for _, w := range words {
		for _, j := range distinctLetters(w) {
			popularity[j]++
		}
	}

	// Highest-scoring candidate wins; ties go to the earlier word so the
	// choice is deterministic.
	best, bestScore := "", -1
	for _, w := range words {
		score := 0
		for _, j := range distinctLetters(w) {
			score += popularity[j]
		}
		if score > bestScore {
			best, bestScore = w, score
		}
	}
	return best
}

// distinctLetters returns the letter indexes (0..25) occurring in w,
// each at most once.
func distinctLetters(w string) []int {
	var seen [26]bool
	out := make([]int, 0, len(w))
	for i := 0; i < len(w); i++ {
		j := int(w[i] - 'a')
		if j >= 0 && j < 26 && !seen[j] {
			seen[j] = true
			out = append(out, j)
		}
	}
	return out
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
