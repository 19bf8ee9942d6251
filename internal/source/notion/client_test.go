package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(Config{
		APIKey:          "secret-key",
		BaseURL:         serverURL,
		Version:         "2022-06-28",
		Timeout:         5 * time.Second,
		RequestInterval: time.Millisecond,
	}, logger)
}

func TestQueryDatabasePagination(t *testing.T) {
	var gotAuth, gotVersion string
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/databases/db-1/query", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")

		var q Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))

		calls++
		if q.StartCursor == "" {
			cursor := "cursor-1"
			json.NewEncoder(w).Encode(queryResponse{
				Results:    []Page{{ID: "page-1"}, {ID: "page-2"}},
				HasMore:    true,
				NextCursor: &cursor,
			})
			return
		}

		require.Equal(t, "cursor-1", q.StartCursor)
		json.NewEncoder(w).Encode(queryResponse{
			Results: []Page{{ID: "page-3"}},
		})
	}))
	defer server.Close()

	pages, err := testClient(server.URL).QueryDatabase(context.Background(), "db-1", Query{})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	require.Len(t, pages, 3)
	assert.Equal(t, "page-1", pages[0].ID)
	assert.Equal(t, "page-3", pages[2].ID)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "2022-06-28", gotVersion)
}

func TestQueryDatabaseSendsFilterAndSorts(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(queryResponse{})
	}))
	defer server.Close()

	_, err := testClient(server.URL).QueryDatabase(context.Background(), "db-1", Query{
		Filter: &Filter{
			Property: "Status",
			Select:   &TextCondition{Equals: "Published"},
		},
		Sorts: []Sort{{Property: "Date", Direction: SortDescending}},
	})
	require.NoError(t, err)

	filter, ok := body["filter"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Status", filter["property"])

	sel, ok := filter["select"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Published", sel["equals"])

	sorts, ok := body["sorts"].([]any)
	require.True(t, ok)
	require.Len(t, sorts, 1)
}

func TestQueryDatabaseAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(apiErrorBody{Code: "unauthorized", Message: "API token is invalid."})
	}))
	defer server.Close()

	_, err := testClient(server.URL).QueryDatabase(context.Background(), "db-1", Query{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "unauthorized", apiErr.Code)
}

func TestRetrievePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pages/page-1", r.URL.Path)
		json.NewEncoder(w).Encode(Page{ID: "page-1"})
	}))
	defer server.Close()

	page, err := testClient(server.URL).RetrievePage(context.Background(), "page-1")
	require.NoError(t, err)
	assert.Equal(t, "page-1", page.ID)
}

func TestRetrievePageNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).RetrievePage(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageBlocksRecursesIntoChildren(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blocks/page-1/children":
			fmt.Fprint(w, `{
				"results": [
					{"id": "b1", "type": "paragraph", "has_children": false,
					 "paragraph": {"rich_text": [{"type": "text", "plain_text": "hello"}]}},
					{"id": "b2", "type": "bulleted_list_item", "has_children": true,
					 "bulleted_list_item": {"rich_text": [{"type": "text", "plain_text": "parent"}]}}
				],
				"has_more": false
			}`)
		case "/blocks/b2/children":
			fmt.Fprint(w, `{
				"results": [
					{"id": "b3", "type": "bulleted_list_item", "has_children": false,
					 "bulleted_list_item": {"rich_text": [{"type": "text", "plain_text": "child"}]}}
				],
				"has_more": false
			}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	blocks, err := testClient(server.URL).PageBlocks(context.Background(), "page-1")
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	assert.Equal(t, "paragraph", blocks[0].Type)
	require.Len(t, blocks[1].Children, 1)
	assert.Equal(t, "child", blocks[1].Children[0].BulletedListItem.RichText[0].PlainText)
}

func TestPageBlocksPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start_cursor") == "" {
			cursor := "c2"
			json.NewEncoder(w).Encode(blocksResponse{
				Results:    []Block{{ID: "b1", Type: "paragraph"}},
				HasMore:    true,
				NextCursor: &cursor,
			})
			return
		}
		json.NewEncoder(w).Encode(blocksResponse{
			Results: []Block{{ID: "b2", Type: "paragraph"}},
		})
	}))
	defer server.Close()

	blocks, err := testClient(server.URL).PageBlocks(context.Background(), "page-1")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "b2", blocks[1].ID)
}

func TestRateLimiterSpacesRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Page{ID: "page-1"})
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := NewClient(Config{
		APIKey:          "k",
		BaseURL:         server.URL,
		Version:         "2022-06-28",
		Timeout:         5 * time.Second,
		RequestInterval: 50 * time.Millisecond,
	}, logger)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.RetrievePage(context.Background(), "page-1")
		require.NoError(t, err)
	}

	// Three calls with a 50ms minimum interval: at least 100ms total.
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}
