package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIStub serves the three game endpoints with canned behavior.
func newAPIStub(t *testing.T, feedbacks map[string]string, registerID string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Mode string `json:"mode"`
			Name string `json:"name"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "wordle", body.Mode)
		assert.NotEmpty(t, body.Name)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": registerID})
	})
	mux.HandleFunc("/create", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID        string `json:"id"`
			Overwrite bool   `json:"overwrite"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, registerID, body.ID)
		assert.True(t, body.Overwrite)
		_ = json.NewEncoder(w).Encode(map[string]bool{"created": true})
	})
	mux.HandleFunc("/guess", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Guess string `json:"guess"`
			ID    string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(map[string]string{"feedback": feedbacks[body.Guess]})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStartSession(t *testing.T) {
	srv := newAPIStub(t, nil, "abc123")
	c := New(Config{BaseURL: srv.URL, Player: "tester"})

	id, err := c.StartSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestStartSessionMissingID(t *testing.T) {
	srv := newAPIStub(t, nil, "")
	c := New(Config{BaseURL: srv.URL})

	_, err := c.StartSession(context.Background())
	require.Error(t, err)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "register", te.Op)
}

func TestSubmitGuessNormalizesMissLetter(t *testing.T) {
	srv := newAPIStub(t, map[string]string{"crane": "GYBRB"}, "abc123")
	c := New(Config{BaseURL: srv.URL})

	fb, err := c.SubmitGuess(context.Background(), "abc123", "crane")
	require.NoError(t, err)
	// Server's alternate miss letter "B" is rewritten to "R".
	assert.Equal(t, "GYRRR", fb)
}

func TestSubmitGuessCustomAliases(t *testing.T) {
	srv := newAPIStub(t, map[string]string{"crane": "GWXRW"}, "abc123")
	c := New(Config{BaseURL: srv.URL, MissAliases: "WX"})

	fb, err := c.SubmitGuess(context.Background(), "abc123", "crane")
	require.NoError(t, err)
	assert.Equal(t, "GRRRR", fb)
}

func TestServerErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL})

	_, err := c.SubmitGuess(context.Background(), "abc123", "crane")
	require.Error(t, err)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.Status)
	assert.Equal(t, "guess", te.Op)
}

func TestUnreachableServer(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.StartSession(context.Background())
	require.Error(t, err)
	var te *TransportError
	assert.ErrorAs(t, err, &te)
}
