// internal/client/client.go
//
// HTTP client for the remote Wordle game API.
// Endpoints (all JSON over POST):
//   - /register {mode, name}      → {id}
//   - /create   {id, overwrite}   → game created/reset
//   - /guess    {guess, id}       → {feedback}
//
// The session id is an opaque string; the client never interprets it.
// Feedback is returned raw except for miss-letter normalization: some
// server deployments answer a miss with "B" instead of "R", so configured
// alias letters are rewritten to the alphabet's miss letter before the
// solver sees the string.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sukeerthilangu08/Wordle-llm/internal/feedback"
)

// DefaultBaseURL is the public game server.
const DefaultBaseURL = "https://wordle.we4shakthi.in/game"

// TransportError wraps network/HTTP failures talking to the game server.
type TransportError struct {
	Op     string // endpoint name, e.g. "register"
	Status int    // HTTP status when the server responded, else 0
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("wordle api %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("wordle api %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Config holds client settings. Zero values select the defaults.
type Config struct {
	BaseURL     string            // default DefaultBaseURL
	Player      string            // registered player name, default "wordlebot"
	Mode        string            // game mode, default "wordle"
	Alphabet    feedback.Alphabet // target alphabet for normalization
	MissAliases string            // letters rewritten to Alphabet.Miss, default "B"
	Timeout     time.Duration     // per-request timeout, default 15s
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Player == "" {
		c.Player = "wordlebot"
	}
	if c.Mode == "" {
		c.Mode = "wordle"
	}
	if c.Alphabet == (feedback.Alphabet{}) {
		c.Alphabet = feedback.Default
	}
	if c.MissAliases == "" {
		c.MissAliases = "B"
	}
	if c.Timeout == 0 {
		c.Timeout = 15 * time.Second
	}
	return c
}

// Client implements the solver's GameClient over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// New constructs a Client with its own http.Client and timeout.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type registerReq struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
}
type registerRes struct {
	ID string `json:"id"`
}
type createReq struct {
	ID        string `json:"id"`
	Overwrite bool   `json:"overwrite"`
}
type guessReq struct {
	Guess string `json:"guess"`
	ID    string `json:"id"`
}
type guessRes struct {
	Feedback string `json:"feedback"`
}

// StartSession registers the player and creates a fresh game.
// Returns the server-issued session id.
func (c *Client) StartSession(ctx context.Context) (string, error) {
	var reg registerRes
	if err := c.post(ctx, "register", registerReq{Mode: c.cfg.Mode, Name: c.cfg.Player}, &reg); err != nil {
		return "", err
	}
	if reg.ID == "" {
		return "", &TransportError{Op: "register", Err: errors.New("no session id in response")}
	}
	log.Debug().Str("session", reg.ID).Str("player", c.cfg.Player).Msg("registered")

	if err := c.post(ctx, "create", createReq{ID: reg.ID, Overwrite: true}, nil); err != nil {
		return "", err
	}
	return reg.ID, nil
}

// SubmitGuess plays guess and returns the normalized feedback string.
func (c *Client) SubmitGuess(ctx context.Context, sessionID, guess string) (string, error) {
	var res guessRes
	if err := c.post(ctx, "guess", guessReq{Guess: guess, ID: sessionID}, &res); err != nil {
		return "", err
	}
	fb := res.Feedback
	for i := 0; i < len(c.cfg.MissAliases); i++ {
		fb = strings.ReplaceAll(fb, string(c.cfg.MissAliases[i]), string(c.cfg.Alphabet.Miss))
	}
	log.Debug().Str("guess", guess).Str("feedback", fb).Msg("guess submitted")
	return fb, nil
}

// post sends payload to endpoint and decodes the JSON response into out
// (skipped when out is nil). Non-2xx statuses and transport failures are
// returned as *TransportError.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &TransportError{Op: endpoint, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &TransportError{
			Op:     endpoint,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("server said %q", strings.TrimSpace(string(snippet))),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
