// internal/feedback/alphabet.go
//
// Wire codec between the game server's feedback letters and Marks.
// The server answers each guess with one letter per position (e.g. "GYRRG").
// The letter used for a miss varies between server deployments, so the
// whole alphabet is configuration rather than hardcoded constants.

package feedback

import (
	"errors"
	"fmt"
)

// Alphabet maps the server's per-position feedback letters onto Marks.
type Alphabet struct {
	Hit     byte // letter for a correctly placed guess letter
	Present byte // letter for a misplaced guess letter
	Miss    byte // letter for a letter not in the answer
}

// Default is the observed server alphabet: G=hit, Y=present, R=miss.
var Default = Alphabet{Hit: 'G', Present: 'Y', Miss: 'R'}

// ParseAlphabet builds an Alphabet from a three-letter string in
// hit/present/miss order, e.g. "GYR".
func ParseAlphabet(s string) (Alphabet, error) {
	if len(s) != 3 {
		return Alphabet{}, fmt.Errorf("feedback alphabet must be 3 letters, got %q", s)
	}
	if s[0] == s[1] || s[1] == s[2] || s[0] == s[2] {
		return Alphabet{}, fmt.Errorf("feedback alphabet letters must be distinct, got %q", s)
	}
	return Alphabet{Hit: s[0], Present: s[1], Miss: s[2]}, nil
}

// Parse translates a raw server feedback string into Marks.
// Returns an error if the string is not exactly length letters or contains
// a symbol outside the alphabet. Malformed feedback must never reach the
// candidate filter.
func (a Alphabet) Parse(raw string, length int) ([]Mark, error) {
	if len(raw) != length {
		return nil, fmt.Errorf("feedback length %d, want %d (%q)", len(raw), length, raw)
	}
	out := make([]Mark, length)
	for i := 0; i < length; i++ {
		switch raw[i] {
		case a.Hit:
			out[i] = MarkHit
		case a.Present:
			out[i] = MarkPresent
		case a.Miss:
			out[i] = MarkMiss
		default:
			return nil, fmt.Errorf("feedback symbol %q at position %d not in alphabet", raw[i], i)
		}
	}
	return out, nil
}

// Render converts Marks back into the server's feedback letters.
// Used by the practice server to answer guesses on the wire.
func (a Alphabet) Render(marks []Mark) (string, error) {
	out := make([]byte, len(marks))
	for i, m := range marks {
		switch m {
		case MarkHit:
			out[i] = a.Hit
		case MarkPresent:
			out[i] = a.Present
		case MarkMiss:
			out[i] = a.Miss
		default:
			return "", errors.New("unknown mark " + string(m))
		}
	}
	return string(out), nil
}
