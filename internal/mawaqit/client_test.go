package mawaqit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

const searchResponse = `[
	{"uuid": "aaa", "name": "Moschee Eins", "city": "Mannheim", "countryCode": "DE",
	 "times": ["05:01", "06:31", "12:31", "15:46", "18:21", "19:51"]},
	{"uuid": "bbb", "name": "Moschee Zwei", "city": "Heidelberg", "countryCode": "DE",
	 "times": ["05:02", "06:32", "12:32", "15:47", "18:22"]},
	{"uuid": "ccc", "name": "Kurz", "times": ["05:03", "06:33"]}
]`

func newServer(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var words []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mosque/search", r.URL.Path)
		words = append(words, r.URL.Query().Get("word"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &words
}

func TestSearch(t *testing.T) {
	srv, words := newServer(t, http.StatusOK, searchResponse)
	c := NewClient(srv.URL, time.Second)

	mosques, err := c.Search(context.Background(), "Moschee")
	require.NoError(t, err)
	require.Len(t, mosques, 3)
	assert.Equal(t, Mosque{
		UUID: "aaa", Name: "Moschee Eins", City: "Mannheim", CountryCode: "DE",
		Times: []string{"05:01", "06:31", "12:31", "15:46", "18:21", "19:51"},
	}, mosques[0])
	assert.Equal(t, []string{"Moschee"}, *words)
}

func TestFetch_MatchesUUID(t *testing.T) {
	srv, words := newServer(t, http.StatusOK, searchResponse)
	c := NewClient(srv.URL, time.Second)

	s, err := c.Fetch(context.Background(), Selection{ID: "bbb", Name: "Moschee Zwei Heidelberg"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Moschee Zw"}, *words, "search term is the first ten characters")
	assert.True(t, s.Valid)
	assert.Equal(t, "Moschee Zwei Heidelberg", s.Label)
	assert.Equal(t, "12:32", s.Time(prayer.Dhuhr))
	assert.Equal(t, "00:00", s.Times[prayer.Isha], "missing isha becomes midnight")
}

func TestFetch_FallsBackToFirstResult(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, searchResponse)
	c := NewClient(srv.URL, time.Second)

	s, err := c.Fetch(context.Background(), Selection{ID: "zzz", Name: "Moschee"})
	require.NoError(t, err)
	assert.Equal(t, "05:01", s.Time(prayer.Fajr))
}

func TestFetch_IncompleteMatchFallsBackToFirstResult(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, searchResponse)
	c := NewClient(srv.URL, time.Second)

	s, err := c.Fetch(context.Background(), Selection{ID: "ccc", Name: "Kurz"})
	require.NoError(t, err)
	assert.Equal(t, "05:01", s.Time(prayer.Fajr))
	assert.Equal(t, "Kurz", s.Label)
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		sel    Selection
		want   error
	}{
		{"no mosque", http.StatusOK, "[]", Selection{}, ErrNoMosque},
		{"empty result", http.StatusOK, "[]", Selection{Name: "x"}, ErrNotFound},
		{"too few times", http.StatusOK, `[{"uuid": "ccc", "name": "Kurz", "times": ["05:03", "06:33"]}]`, Selection{ID: "ccc", Name: "Kurz"}, ErrIncomplete},
		{"server error", http.StatusInternalServerError, "", Selection{Name: "x"}, ErrBadResponse},
		{"not json", http.StatusOK, "<html>", Selection{Name: "x"}, ErrBadResponse},
		{"not an array", http.StatusOK, `{"error":"x"}`, Selection{Name: "x"}, ErrBadResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			c := NewClient(srv.URL, time.Second)

			s, err := c.Fetch(context.Background(), tt.sel)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, s.Valid)
		})
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, searchResponse)
	c := NewClient(srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx, Selection{Name: "Moschee"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearchWord(t *testing.T) {
	assert.Equal(t, "Short", searchWord("Short"))
	assert.Equal(t, "Çamlıca Ca", searchWord("Çamlıca Camii Istanbul"))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("", time.Second).baseURL)
}
