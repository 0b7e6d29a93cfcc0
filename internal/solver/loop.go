// internal/solver/loop.go
//
// The attempt-bounded solve loop for one game session.
// Responsibilities:
//   - Drive pick → submit → validate → filter for up to MaxAttempts turns.
//   - Translate raw server feedback through the configured alphabet before
//     it touches the candidate set.
//   - End in exactly one of four terminal outcomes (won, exhausted,
//     no candidates, invalid feedback); transport failures are returned
//     as errors instead.
//
// Attempts are strictly sequential: each guess depends on the feedback of
// the previous one, so there is nothing to parallelize.

package solver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/sukeerthilangu08/Wordle-llm/internal/feedback"
)

// GameClient is the transport the solver plays through.
// Implementations own networking concerns (timeouts, endpoints); the
// solver only sees opaque session ids and raw feedback strings.
type GameClient interface {
	// StartSession registers with the server and creates a game,
	// returning the session id for subsequent guesses.
	StartSession(ctx context.Context) (string, error)

	// SubmitGuess plays guess in the given session and returns the raw
	// feedback string in the server's alphabet.
	SubmitGuess(ctx context.Context, sessionID, guess string) (string, error)
}

// Outcome is the terminal state of a solving session.
type Outcome string

const (
	OutcomeWon             Outcome = "won"
	OutcomeExhausted       Outcome = "exhausted"
	OutcomeNoCandidates    Outcome = "no_candidates"
	OutcomeInvalidFeedback Outcome = "invalid_feedback"
)

// Attempt is one played guess and the feedback it received.
type Attempt struct {
	Guess string
	Raw   string
	Marks []feedback.Mark
}

// Result describes how a session ended.
type Result struct {
	Outcome   Outcome
	Guess     string // winning guess, or the guess that drew bad feedback
	Attempts  int    // attempts actually played
	SessionID string
	History   []Attempt
}

// Config holds the solver's tunables. Zero values select the defaults.
type Config struct {
	WordLength  int               // default 5
	MaxAttempts int               // default 6
	Opener      string            // default DefaultOpener; "-" disables
	Alphabet    feedback.Alphabet // default feedback.Default
}

func (c Config) withDefaults() Config {
	if c.WordLength == 0 {
		c.WordLength = 5
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 6
	}
	if c.Opener == "" {
		c.Opener = DefaultOpener
	} else if c.Opener == "-" {
		c.Opener = ""
	}
	if c.Alphabet == (feedback.Alphabet{}) {
		c.Alphabet = feedback.Default
	}
	return c
}

// Solver plays one game session against a GameClient.
type Solver struct {
	client GameClient
	cfg    Config
	cands  *Candidates
	sel    *Selector
}

// New constructs a Solver over its own copy of list.
// Fails if the list is empty or contains words of the wrong length.
func New(client GameClient, list []string, cfg Config, rng *rand.Rand) (*Solver, error) {
	cfg = cfg.withDefaults()
	cands, err := NewCandidates(list, cfg.WordLength)
	if err != nil {
		return nil, err
	}
	return &Solver{
		client: client,
		cfg:    cfg,
		cands:  cands,
		sel:    NewSelector(cfg.Opener, rng),
	}, nil
}

// Solve runs the session to a terminal outcome.
// Transport failures from the client are returned as errors; everything
// else ends as one of the four Outcome values in the Result.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	sessionID, err := s.client.StartSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	log.Info().Str("session", sessionID).Int("candidates", s.cands.Len()).Msg("session started")

	res := &Result{SessionID: sessionID}
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		guess := s.sel.Pick(s.cands, attempt == 1)
		if guess == "" {
			// Oracle and server disagree, or the secret is outside the
			// word list. Stop cleanly instead of guessing blindly.
			res.Outcome = OutcomeNoCandidates
			res.Attempts = attempt - 1
			log.Warn().Int("attempts", res.Attempts).Msg("no candidates left")
			return res, nil
		}

		raw, err := s.client.SubmitGuess(ctx, sessionID, guess)
		if err != nil {
			return nil, fmt.Errorf("submit guess %q: %w", guess, err)
		}

		marks, perr := s.cfg.Alphabet.Parse(raw, s.cfg.WordLength)
		if perr != nil {
			res.Outcome = OutcomeInvalidFeedback
			res.Guess = guess
			res.Attempts = attempt
			log.Warn().Err(perr).Str("guess", guess).Msg("invalid feedback from server")
			return res, nil
		}
		res.History = append(res.History, Attempt{Guess: guess, Raw: raw, Marks: marks})

		if feedback.AllHit(marks) {
			res.Outcome = OutcomeWon
			res.Guess = guess
			res.Attempts = attempt
			log.Info().Str("word", guess).Int("attempts", attempt).Msg("solved")
			return res, nil
		}

		before := s.cands.Len()
		after := s.cands.Filter(guess, marks)
		log.Info().
			Int("attempt", attempt).
			Str("guess", guess).
			Str("feedback", raw).
			Int("before", before).
			Int("after", after).
			Msg("filtered candidates")
	}

	res.Outcome = OutcomeExhausted
	res.Attempts = s.cfg.MaxAttempts
	log.Warn().Int("attempts", res.Attempts).Msg("out of attempts")
	return res, nil
}
