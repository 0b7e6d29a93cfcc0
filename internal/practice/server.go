// internal/practice/server.go
//
// Local practice opponent speaking the same wire API as the remote game
// server, so the bot can play offline and the full stack can be
// integration-tested against a real HTTP surface.
//
// Endpoints (all JSON):
//   - POST /register {mode, name}    → {id}   (id is a signed session token)
//   - POST /create   {id, overwrite} → {created: true}
//   - POST /guess    {guess, id}     → {feedback}
//   - GET  /health                   → {ok: true}
//
// Session ids are HS256 JWTs carrying the player name. The token is opaque
// to clients; signing just stops a guessed/forged id from reaching the
// session store.

package practice

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/sukeerthilangu08/Wordle-llm/internal/feedback"
	"github.com/sukeerthilangu08/Wordle-llm/internal/words"
)

// Config holds practice server settings. Zero values select the defaults.
type Config struct {
	Secret      string            // session token signing key
	MaxAttempts int               // guesses per game, default 6
	WordLength  int               // default 5
	Alphabet    feedback.Alphabet // feedback letters on the wire
	FixedAnswer string            // when set, every game uses this answer (testing)
}

func (c Config) withDefaults() Config {
	if c.Secret == "" {
		c.Secret = "dev_secret_change_me"
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 6
	}
	if c.WordLength == 0 {
		c.WordLength = 5
	}
	if c.Alphabet == (feedback.Alphabet{}) {
		c.Alphabet = feedback.Default
	}
	return c
}

// Server hosts the practice game API.
type Server struct {
	r        *chi.Mux
	cfg      Config
	list     words.List
	sessions *sessionStore
}

// New constructs a Server, installs middleware, and registers routes.
// list provides both the answer pool and the allowed-guess check.
func New(list words.List, cfg Config) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg.withDefaults(),
		list:     list,
		sessions: newSessionStore(),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Post("/register", s.handleRegister)
	s.r.Post("/create", s.handleCreate)
	s.r.Post("/guess", s.handleGuess)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

type registerReq struct {
	Mode string `json:"mode"`
	Name string `json:"name"`
}

// handleRegister issues a signed session token for the player.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, `{"error":"name required"}`, http.StatusBadRequest)
		return
	}
	tok, err := s.signSession(req.Name)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("player", req.Name).Msg("registered")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": tok})
}

type createReq struct {
	ID        string `json:"id"`
	Overwrite bool   `json:"overwrite"`
}

// handleCreate starts a fresh game for the session.
// An existing game is only replaced when overwrite is set.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	name, err := s.verifySession(req.ID)
	if err != nil {
		http.Error(w, `{"error":"invalid session id"}`, http.StatusUnauthorized)
		return
	}
	if s.sessions.exists(req.ID) && !req.Overwrite {
		http.Error(w, `{"error":"game exists"}`, http.StatusConflict)
		return
	}
	answer := s.cfg.FixedAnswer
	if answer == "" {
		answer = s.randomAnswer()
	}
	s.sessions.save(req.ID, &game{Answer: answer})
	log.Info().Str("player", name).Msg("game created")
	_ = json.NewEncoder(w).Encode(map[string]bool{"created": true})
}

type guessReq struct {
	Guess string `json:"guess"`
	ID    string `json:"id"`
}

// handleGuess validates and scores a guess for the session's game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if _, err := s.verifySession(req.ID); err != nil {
		http.Error(w, `{"error":"invalid session id"}`, http.StatusUnauthorized)
		return
	}
	g, err := s.sessions.get(req.ID)
	if err != nil {
		http.Error(w, `{"error":"no game, call /create first"}`, http.StatusNotFound)
		return
	}
	if g.Finished {
		http.Error(w, `{"error":"game finished"}`, http.StatusBadRequest)
		return
	}
	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if len(guess) != s.cfg.WordLength || !isAlpha(guess) {
		http.Error(w, `{"error":"invalid guess"}`, http.StatusBadRequest)
		return
	}
	if !s.list.Contains(guess) {
		http.Error(w, `{"error":"not in word list"}`, http.StatusBadRequest)
		return
	}

	marks := feedback.Score(guess, g.Answer)
	g.Guesses++
	if feedback.AllHit(marks) {
		g.Finished, g.Won = true, true
	} else if g.Guesses >= s.cfg.MaxAttempts {
		g.Finished = true
	}
	s.sessions.save(req.ID, g)

	fb, err := s.cfg.Alphabet.Render(marks)
	if err != nil {
		http.Error(w, `{"error":"render_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"feedback": fb})
}

// ------------------------------ helpers ------------------------------------

// signSession creates an HS256 session token carrying the player name.
func (s *Server) signSession(name string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": name,
		"iat":  time.Now().Unix(),
		"jti":  randomID(),
	})
	return t.SignedString([]byte(s.cfg.Secret))
}

// verifySession checks the token signature and returns the player name.
func (s *Server) verifySession(token string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	name, _ := claims["name"].(string)
	if name == "" {
		return "", errors.New("invalid token")
	}
	return name, nil
}

// randomAnswer picks a cryptographically random answer from the list.
func (s *Server) randomAnswer() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(s.list))))
	return s.list[nBig.Int64()]
}

// randomID returns a short random token id.
func randomID() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
	return nBig.Text(36)
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
