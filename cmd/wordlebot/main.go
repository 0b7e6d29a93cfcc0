// cmd/wordlebot/main.go
//
// Solver bot entrypoint.
// Wiring order:
//   1. Load .env + log level.
//   2. Load the word list (file via WORDS_FILE, or the embedded default).
//   3. Build the HTTP game client and the solver.
//   4. Solve one game, record the result in the history DB, report.
//
// Configuration (env, all optional):
//   WORDLE_BASE_URL        game API base URL
//   WORDLE_PLAYER          registered player name
//   WORDS_FILE             path to a word list (one word per line)
//   WORD_LENGTH            letters per word (default 5)
//   MAX_ATTEMPTS           guesses per game (default 6)
//   OPENER_WORD            fixed first guess ("-" disables)
//   FEEDBACK_ALPHABET      server letters in hit/present/miss order (default GYR)
//   FEEDBACK_MISS_ALIASES  extra miss letters normalized away (default B)
//   HISTORY_DB             SQLite path ("" disables history)
//   RANDOM_SEED            fixed seed for reproducible runs
//   LOG_LEVEL              zerolog level (default info)

package main

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sukeerthilangu08/Wordle-llm/internal/client"
	"github.com/sukeerthilangu08/Wordle-llm/internal/feedback"
	"github.com/sukeerthilangu08/Wordle-llm/internal/history"
	"github.com/sukeerthilangu08/Wordle-llm/internal/solver"
	"github.com/sukeerthilangu08/Wordle-llm/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	length := getEnvInt("WORD_LENGTH", 5)
	list, err := loadWords(length)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", len(list)).Msg("word list loaded")

	alpha, err := feedback.ParseAlphabet(getEnv("FEEDBACK_ALPHABET", "GYR"))
	if err != nil {
		log.Fatal().Err(err).Msg("bad feedback alphabet")
	}

	cl := client.New(client.Config{
		BaseURL:     getEnv("WORDLE_BASE_URL", client.DefaultBaseURL),
		Player:      getEnv("WORDLE_PLAYER", "wordlebot"),
		Alphabet:    alpha,
		MissAliases: getEnv("FEEDBACK_MISS_ALIASES", "B"),
	})

	seed := time.Now().UnixNano()
	if v := os.Getenv("RANDOM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}

	s, err := solver.New(cl, list, solver.Config{
		WordLength:  length,
		MaxAttempts: getEnvInt("MAX_ATTEMPTS", 6),
		Opener:      getEnv("OPENER_WORD", solver.DefaultOpener),
		Alphabet:    alpha,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build solver")
	}

	started := time.Now().UTC()
	res, err := s.Solve(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}

	recordHistory(res, started)

	if res.Outcome == solver.OutcomeWon {
		log.Info().Str("word", res.Guess).Int("attempts", res.Attempts).Msg("game won")
		return
	}
	log.Warn().Str("outcome", string(res.Outcome)).Int("attempts", res.Attempts).Msg("game not solved")
	os.Exit(1)
}

// loadWords loads WORDS_FILE when set, otherwise the embedded default list.
func loadWords(length int) (words.List, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return words.Load(path, length)
	}
	return words.Embedded(length)
}

// recordHistory writes the finished session to the history DB, best effort.
func recordHistory(res *solver.Result, started time.Time) {
	dsn := getEnv("HISTORY_DB", "data/history.db")
	if dsn == "" {
		return
	}
	db, err := history.Open(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("history db unavailable")
		return
	}
	defer db.Close()
	err = history.NewStore(db).Record(context.Background(), history.Row{
		SessionID:  res.SessionID,
		Outcome:    string(res.Outcome),
		Guesses:    res.Attempts,
		FinalGuess: res.Guess,
		StartedAt:  started.Format(time.RFC3339),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Warn().Err(err).Msg("record solve")
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses k as an int, falling back to def.
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
