// internal/feedback/feedback.go
//
// Per-letter scoring for Wordle guesses.
// Responsibilities:
//   - Mark: the evaluation result for a single letter (hit/present/miss).
//   - Score: the classic two-pass scoring algorithm, duplicate-safe.
//   - Equal/AllHit: small predicates used by filtering and the solve loop.
//
// Score is the oracle the candidate filter relies on: it must produce
// exactly the feedback the game server would for the same (guess, answer)
// pair, or filtering silently discards the true secret.

package feedback

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// This ensures correct behavior with repeated letters in both answer and
// guess: a letter is never credited beyond its count in the answer.
// Inputs are assumed to be equal-length lowercase a–z words.
func Score(guess, answer string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	guessRunes := []rune(guess)
	answerRunes := []rune(answer)

	// Letter frequency for the non-hit positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guessRunes[i] == answerRunes[i] {
			res[i] = MarkHit
		} else {
			counts[idx(answerRunes[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// idx maps a lowercase ASCII letter rune to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(r rune) int { return int(r - 'a') }

// AllHit returns true if all marks are MarkHit.
func AllHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}

// Equal reports whether two mark sequences are identical.
func Equal(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
