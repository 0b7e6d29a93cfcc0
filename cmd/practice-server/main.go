// cmd/practice-server/main.go
//
// Local practice opponent entrypoint. Serves the same /register, /create,
// /guess API the bot expects, so it can be pointed at
// http://localhost:<PORT> via WORDLE_BASE_URL.
//
// Configuration (env, all optional):
//   PORT             listen port (default 5175)
//   WORDS_FILE       word list path (embedded default otherwise)
//   WORD_LENGTH      letters per word (default 5)
//   MAX_ATTEMPTS     guesses per game (default 6)
//   SESSION_SECRET   signing key for session tokens
//   PRACTICE_ANSWER  fixed answer for every game (testing)
//   LOG_LEVEL        zerolog level (default info)

package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sukeerthilangu08/Wordle-llm/internal/practice"
	"github.com/sukeerthilangu08/Wordle-llm/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	length := getEnvInt("WORD_LENGTH", 5)
	var list words.List
	var err error
	if path := os.Getenv("WORDS_FILE"); path != "" {
		list, err = words.Load(path, length)
	} else {
		list, err = words.Embedded(length)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	srv := practice.New(list, practice.Config{
		Secret:      getEnv("SESSION_SECRET", "dev_secret_change_me"),
		MaxAttempts: getEnvInt("MAX_ATTEMPTS", 6),
		WordLength:  length,
		FixedAnswer: os.Getenv("PRACTICE_ANSWER"),
	})

	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("words", len(list)).Msg("starting practice-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
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
