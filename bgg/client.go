// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bgg

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mbickford/boardshelf/models"
)

const (
	// BGG queues collection exports and answers 202 until ready.
	maxQueueRetries = 10
	// thing requests accept at most ~100 ids per call.
	thingBatchSize = 100
)

var (
	ErrQueued   = errors.New("bgg: collection export still queued")
	ErrNotFound = errors.New("bgg: no such user or empty collection")
)

// Client talks to the BGG XML API v2. BGG throttles unauthenticated
// clients hard, so every request goes through a shared rate limiter.
type Client struct {
	base    string
	httpc   *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client enforcing at most one request per
// minInterval. A non-positive interval disables throttling.
func NewClient(base string, minInterval time.Duration) *Client {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Collection fetches a user's owned collection with stats, then fills in
// average weight and the suggested_numplayers poll from batched thing
// requests.
func (c *Client) Collection(ctx context.Context, username string) ([]models.CollectionItem, error) {
	items, err := c.fetchCollection(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	ids := make([]int, len(items))
	byID := make(map[int]*models.CollectionItem, len(items))
	for i := range items {
		ids[i] = items[i].ID
		byID[items[i].ID] = &items[i]
	}

	for start := 0; start < len(ids); start += thingBatchSize {
		end := min(start+thingBatchSize, len(ids))
		details, err := c.fetchThings(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		for id, d := range details {
			it, ok := byID[id]
			if !ok {
				continue
			}
			it.AverageWeight = d.weight
			it.Polls = d.polls
		}
	}

	slog.Info("collection fetched", "username", username, "items", len(items))
	return items, nil
}

func (c *Client) fetchCollection(ctx context.Context, username string) ([]models.CollectionItem, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("own", "1")
	q.Set("stats", "1")

	var body []byte
	for attempt := 0; ; attempt++ {
		if attempt >= maxQueueRetries {
			return nil, ErrQueued
		}
		b, status, err := c.get(ctx, "/collection?"+q.Encode())
		if err != nil {
			return nil, err
		}
		if status == http.StatusAccepted {
			continue
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("bgg: collection request failed with status %d", status)
		}
		body = b
		break
	}

	var doc collectionDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("bgg: failed to parse collection: %w", err)
	}

	// A user who owns several copies of a game gets one <item> per copy,
	// all sharing an objectid. Keep the first.
	seen := make(map[int]bool, len(doc.Items))
	items := make([]models.CollectionItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		if seen[it.ObjectID] {
			continue
		}
		seen[it.ObjectID] = true
		items = append(items, models.CollectionItem{
			ItemInfo: models.ItemInfo{
				ID:            it.ObjectID,
				Name:          it.Name,
				Type:          it.Subtype,
				MinPlayers:    it.Stats.MinPlayers,
				MaxPlayers:    it.Stats.MaxPlayers,
				MinPlaytime:   it.Stats.MinPlaytime,
				MaxPlaytime:   it.Stats.MaxPlaytime,
				UserRating:    parseRating(it.Stats.Rating.Value),
				AverageRating: it.Stats.Rating.Average.Value,
			},
		})
	}
	return items, nil
}

type thingDetail struct {
	weight float64
	polls  []models.PollEntry
}

func (c *Client) fetchThings(ctx context.Context, ids []int) (map[int]thingDetail, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	body, status, err := c.get(ctx, "/thing?stats=1&id="+strings.Join(parts, ","))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("bgg: thing request failed with status %d", status)
	}

	var doc thingDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("bgg: failed to parse thing response: %w", err)
	}

	details := make(map[int]thingDetail, len(doc.Items))
	for _, it := range doc.Items {
		d := thingDetail{weight: it.Statistics.Ratings.AverageWeight.Value}
		for _, poll := range it.Polls {
			if poll.Name != "suggested_numplayers" {
				continue
			}
			d.polls = pollEntries(poll)
		}
		details[it.ID] = d
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("bgg: failed to build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("bgg: request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("bgg: failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// pollEntries derives the comparable poll records from the raw vote
// counts of one suggested_numplayers poll.
func pollEntries(poll thingPoll) []models.PollEntry {
	entries := make([]models.PollEntry, 0, len(poll.Results))
	for _, res := range poll.Results {
		var best, rec, notRec int
		for _, r := range res.Result {
			switch r.Value {
			case "Best":
				best = r.NumVotes
			case "Recommended":
				rec = r.NumVotes
			case "Not Recommended":
				notRec = r.NumVotes
			}
		}
		entry := models.PollEntry{
			NumPlayers:       res.NumPlayers,
			PlayerCountValue: playerCountValue(res.NumPlayers),
			SortScore:        float64(2*best + rec - notRec),
		}
		if total := best + rec + notRec; total > 0 {
			pct := 100 * float64(notRec) / float64(total)
			entry.NotRecommendedPercent = &pct
		}
		entries = append(entries, entry)
	}
	return entries
}

// playerCountValue maps a poll label to a comparable count. Open-ended
// labels like "4+" map to the label value plus one.
func playerCountValue(label string) int {
	if n, ok := strings.CutSuffix(label, "+"); ok {
		v, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return v + 1
	}
	v, err := strconv.Atoi(label)
	if err != nil {
		return 0
	}
	return v
}

func parseRating(raw string) *float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// "N/A" for unrated games
		return nil
	}
	return &v
}
