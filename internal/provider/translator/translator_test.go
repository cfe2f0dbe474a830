package translator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Translate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "es", q.Get("to"))
		assert.Equal(t, "en", q.Get("from"))
		assert.Equal(t, "plain", q.Get("textType"))
		assert.Equal(t, "3.0", q.Get("api-version"))

		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, rapidAPIHost, r.Header.Get("X-RapidAPI-Host"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"Text":"dog"},{"Text":"cat"}]`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"translations":[{"text":"perro","to":"es"}]},
			{"translations":[{"text":"gato","to":"es"},{"text":"minino","to":"es"}]}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", testutil.NewTestLogger())

	translated, err := client.Translate(context.Background(), []string{"dog", "cat"}, domain.LangEnglish, domain.LangSpanish)
	require.NoError(t, err)
	assert.Equal(t, []string{"perro", "gato"}, translated)
}

func TestClient_Translate_ShortResponsePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []requestItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&items))
		assert.Len(t, items, 3)

		w.Write([]byte(`[{"translations":[{"text":"chien","to":"fr"}]}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", testutil.NewTestLogger())

	translated, err := client.Translate(context.Background(), []string{"dog", "cat", "sun"}, domain.LangEnglish, domain.LangFrench)
	require.NoError(t, err)
	assert.Equal(t, []string{"chien"}, translated)
}

func TestClient_Translate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Invalid API key"}`},
		{name: "invalid json", status: http.StatusOK, body: `not json`},
		{name: "missing translations", status: http.StatusOK, body: `[{"translations":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "test-key", testutil.NewTestLogger())

			translated, err := client.Translate(context.Background(), []string{"dog"}, domain.LangEnglish, domain.LangJapanese)
			assert.Error(t, err)
			assert.Nil(t, translated)
		})
	}
}

func TestClient_Translate_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Translate(ctx, []string{"dog"}, domain.LangEnglish, domain.LangHindi)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_DefaultURL(t *testing.T) {
	client := NewClient("", "key", testutil.NewTestLogger())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "short", input: "error", n: 10, expected: "error"},
		{name: "exact", input: "error", n: 5, expected: "error"},
		{name: "ascii cut", input: "internal error", n: 8, expected: "internal..."},
		{name: "cut inside cyrillic rune", input: "ошибка", n: 3, expected: "о..."},
		{name: "cut inside emoji", input: "ab🔥cd", n: 4, expected: "ab..."},
		{name: "cut on rune boundary", input: "ошибка", n: 4, expected: "ош..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate([]byte(tt.input), tt.n)
			assert.Equal(t, tt.expected, result)
			assert.True(t, utf8.ValidString(result))
		})
	}
}
