// internal/solver/candidates.go
//
// The working set of words still consistent with every piece of feedback
// received so far. Created fresh per solving session from the shared word
// list; only ever shrinks.

package solver

import (
	"errors"
	"fmt"

	"github.com/sukeerthilangu08/Wordle-llm/internal/feedback"
)

// Candidates holds the words still consistent with all feedback so far.
type Candidates struct {
	words []string
}

// NewCandidates copies list into a fresh candidate set.
// Returns an error if the list is empty or contains a word whose length
// is not length.
func NewCandidates(list []string, length int) (*Candidates, error) {
	if len(list) == 0 {
		return nil, errors.New("candidates: empty word list")
	}
	words := make([]string, len(list))
	for i, w := range list {
		if len(w) != length {
			return nil, fmt.Errorf("candidates: word %q is not %d letters", w, length)
		}
		words[i] = w
	}
	return &Candidates{words: words}, nil
}

// Filter keeps exactly the candidates for which scoring guess against
// them reproduces marks, and returns the new size. A candidate that would
// have produced different feedback cannot be the answer.
//
// Marks are assumed validated by the caller; Filter itself never fails.
func (c *Candidates) Filter(guess string, marks []feedback.Mark) int {
	kept := c.words[:0]
	for _, w := range c.words {
		if feedback.Equal(feedback.Score(guess, w), marks) {
			kept = append(kept, w)
		}
	}
	c.words = kept
	return len(kept)
}

// Words returns the current candidates in stable order.
// Callers must treat the slice as read-only.
func (c *Candidates) Words() []string { return c.words }

// Len returns the number of remaining candidates.
func (c *Candidates) Len() int { return len(c.words) }
