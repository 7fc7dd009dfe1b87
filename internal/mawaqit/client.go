// Package mawaqit fetches prayer times from the Mawaqit API.
package mawaqit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://mawaqit.net/api/2.0"

// searchWordLen is the number of leading characters of the mosque name sent
// as the search term; longer terms miss mosques whose names are abbreviated.
const searchWordLen = 10

// minTimes is the number of entries a usable times array must hold; a
// missing Isha is filled with midnight.
const minTimes = 5

const (
	missingIsha     = "00:00"
	maxResponseSize = 4 << 20
)

var (
	ErrNoMosque    = errors.New("no mosque configured")
	ErrNotFound    = errors.New("mosque not found")
	ErrIncomplete  = errors.New("incomplete prayer times")
	ErrBadResponse = errors.New("unexpected response")
)

// Selection identifies the mosque to display.
type Selection struct {
	ID   string
	Name string
}

// Mosque is one search result.
type Mosque struct {
	UUID        string   `json:"uuid"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	CountryCode string   `json:"countryCode"`
	Times       []string `json:"times"`
}

// Client talks to the Mawaqit API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client; an empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Search returns the mosques matching word.
func (c *Client) Search(ctx context.Context, word string) ([]Mosque, error) {
	body, err := c.get(ctx, "/mosque/search", url.Values{"word": {word}})
	if err != nil {
		return nil, err
	}
	return parseSearch(body)
}

// Fetch returns today's schedule of the selected mosque. The search is run
// on the first characters of the name; the result whose uuid matches the
// selection wins. When no result matches, or the match has too few times,
// the first result is used.
func (c *Client) Fetch(ctx context.Context, sel Selection) (prayer.Schedule, error) {
	if sel.Name == "" {
		return prayer.Schedule{}, ErrNoMosque
	}
	mosques, err := c.Search(ctx, searchWord(sel.Name))
	if err != nil {
		return prayer.Schedule{}, err
	}
	if len(mosques) == 0 {
		return prayer.Schedule{}, fmt.Errorf("%w: %q", ErrNotFound, sel.Name)
	}
	if m, ok := byUUID(mosques, sel.ID); ok {
		if s, err := m.Schedule(sel.Name); err == nil {
			return s, nil
		}
	}
	return mosques[0].Schedule(sel.Name)
}

// Schedule converts the result's times. label overrides the mosque name
// when set.
func (m Mosque) Schedule(label string) (prayer.Schedule, error) {
	if len(m.Times) < minTimes {
		return prayer.Schedule{}, fmt.Errorf("%w: %d entries", ErrIncomplete, len(m.Times))
	}
	var times [prayer.Count]string
	copy(times[:], m.Times)
	if len(m.Times) < prayer.Count {
		times[prayer.Isha] = missingIsha
	}
	if label == "" {
		label = m.Name
	}
	return prayer.NewSchedule(times, label), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}

func parseSearch(body []byte) ([]Mosque, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrBadResponse)
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrBadResponse)
	}

	var mosques []Mosque
	res.ForEach(func(_, v gjson.Result) bool {
		m := Mosque{
			UUID:        v.Get("uuid").String(),
			Name:        v.Get("name").String(),
			City:        v.Get("city").String(),
			CountryCode: v.Get("countryCode").String(),
		}
		for _, t := range v.Get("times").Array() {
			m.Times = append(m.Times, t.String())
		}
		mosques = append(mosques, m)
		return true
	})
	return mosques, nil
}

func byUUID(mosques []Mosque, id string) (Mosque, bool) {
	if id == "" {
		return Mosque{}, false
	}
	for _, m := range mosques {
		if m.UUID == id {
			return m, true
		}
	}
	return Mosque{}, false
}

func searchWord(name string) string {
	r := []rune(name)
	if len(r) > searchWordLen {
		r = r[:searchWordLen]
	}
	return string(r)
}
