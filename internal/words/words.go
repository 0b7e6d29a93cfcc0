// internal/words/words.go
//
// Word list loading for the solver and the practice server.
//
// Responsibilities:
//   - Load a list from a file (one word per line) or fall back to the
//     embedded default list.
//   - Normalize to lowercase and keep only words of the required length
//     made of ASCII letters a–z.
//
// The list is loaded once at startup and shared read-only; each solving
// session copies it into its own candidate set.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// List is an immutable word list. All words share one length.
type List []string

// Load reads one word per line from path, lowercases and trims each line,
// and keeps only words of exactly length alphabetic letters.
// Returns an error if the file is unreadable or yields no usable words.
func Load(path string, length int) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var out List
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("word list %s has no %d-letter words", path, length)
	}
	return out, nil
}

// Embedded returns the built-in default list filtered to length.
// Ensures the bot runs even when no word file is configured.
func Embedded(length int) (List, error) {
	var out List
	for _, line := range strings.Split(embeddedWords, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("embedded word list has no %d-letter words", length)
	}
	return out, nil
}

// Contains reports whether w is in the list.
func (l List) Contains(w string) bool {
	for _, x := range l {
		if x == w {
			return true
		}
	}
	return false
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
