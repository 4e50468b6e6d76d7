package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"ragtask/models"
)

// Client is a minimal REST adapter over the ingestion subsystem's search
// endpoint. Embedding and indexing live on the collaborator side; this side
// only posts the query text against a named collection.
type Client struct {
	url        string
	collection string
	client     *http.Client
}

type Config struct {
	URL        string
	Collection string
	Timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		url:        cfg.URL,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	Collection string `json:"collection"`
	TopK       int    `json:"top_k"`
}

type searchResponse struct {
	Results []struct {
		Text  string  `json:"text"`
		Score float64 `json:"score"`
	} `json:"results"`
}

// Retrieve returns at most k fragments ordered by descending score. Ties keep
// the collaborator's original order.
func (c *Client) Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedChunk, error) {
	if k <= 0 {
		k = 3
	}

	body, err := json.Marshal(searchRequest{Query: query, Collection: c.collection, TopK: k})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retrieval request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("retrieval request failed: status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("retrieval response decode failed: %w", err)
	}

	chunks := make([]models.RetrievedChunk, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		chunks = append(chunks, models.RetrievedChunk{Text: r.Text, Score: r.Score})
	}
	sort.SliceStable(chunks, func(i, j int) bool { return chunks[i].Score > chunks[j].Score })
	if len(chunks) > k {
		chunks = chunks[:k]
	}
	return chunks, nil
}
