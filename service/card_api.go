package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"decklab/models"
	log "github.com/sirupsen/logrus"
)

// HTTPCardFetcher looks up card metadata from the remote card database
// API (ygoprodeck-compatible cardinfo endpoint).
type HTTPCardFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCardFetcher creates a fetcher against the given API base URL
func NewHTTPCardFetcher(baseURL string) *HTTPCardFetcher {
	return &HTTPCardFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type cardInfoResponse struct {
	Data []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Desc string `json:"desc"`
	} `json:"data"`
}

// FetchCards looks up metadata for the given card ids in one request
func (f *HTTPCardFetcher) FetchCards(ctx context.Context, ids []int64) ([]*models.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idList := make([]string, len(ids))
	for i, id := range ids {
		idList[i] = strconv.FormatInt(id, 10)
	}
	url := fmt.Sprintf("%s/cardinfo.php?id=%s", f.baseURL, strings.Join(idList, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build card API request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("card API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("card API returned status %d", resp.StatusCode)
	}

	var payload cardInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode card API response: %w", err)
	}

	log.WithFields(log.Fields{
		"requested": len(ids),
		"returned":  len(payload.Data),
	}).Debug("Fetched card metadata from remote API")

	cards := make([]*models.Card, 0, len(payload.Data))
	for _, entry := range payload.Data {
		cards = append(cards, &models.Card{
			ID:          entry.ID,
			Name:        entry.Name,
			Type:        entry.Type,
			Description: entry.Desc,
		})
	}

	return cards, nil
}
