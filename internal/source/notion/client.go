package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound is returned when a single-record retrieve resolves to nothing.
// Individual missing relations should not abort a batch, so callers check for
// it with errors.Is instead of treating it as a hard failure.
var ErrNotFound = errors.New("notion: record not found")

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Config holds Notion client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Version string
	Timeout time.Duration

	// RequestInterval is the flat minimum delay between requests. Notion's
	// documented limit is ~3 requests/second.
	RequestInterval time.Duration
}

// Client issues rate-limited requests against the Notion API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	version    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a new Notion client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		version: cfg.Version,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		logger:  logger.With("source", "notion"),
	}
}

// QueryDatabase returns every page of the database matching the query,
// following pagination cursors until exhausted.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q Query) ([]Page, error) {
	var all []Page

	body := q
	if body.PageSize == 0 {
		body.PageSize = 100
	}

	for {
		var resp queryResponse
		path := fmt.Sprintf("/databases/%s/query", databaseID)
		if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
			return nil, fmt.Errorf("query database %s: %w", databaseID, err)
		}

		all = append(all, resp.Results...)

		c.logger.Debug("fetched database page",
			"database_id", databaseID,
			"records", len(resp.Results),
			"total", len(all),
		)

		if !resp.HasMore || resp.NextCursor == nil {
			return all, nil
		}
		body.StartCursor = *resp.NextCursor
	}
}

// RetrievePage fetches a single record by identifier. A missing record is
// reported as ErrNotFound.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("retrieve page %s: %w", pageID, err)
	}
	return &page, nil
}

// PageBlocks fetches the full block tree of a page, descending into blocks
// that report children.
func (c *Client) PageBlocks(ctx context.Context, pageID string) ([]Block, error) {
	return c.blockChildren(ctx, pageID)
}

func (c *Client) blockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var all []Block
	cursor := ""

	for {
		path := fmt.Sprintf("/blocks/%s/children?page_size=100", blockID)
		if cursor != "" {
			path += "&start_cursor=" + cursor
		}

		var resp blocksResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, fmt.Errorf("block children %s: %w", blockID, err)
		}

		for _, block := range resp.Results {
			if block.HasChildren {
				children, err := c.blockChildren(ctx, block.ID)
				if err != nil {
					return nil, err
				}
				block.Children = children
			}
			all = append(all, block)
		}

		if !resp.HasMore || resp.NextCursor == nil {
			return all, nil
		}
		cursor = *resp.NextCursor
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{
			Status:  resp.StatusCode,
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
