package readarr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LookupAuthor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.Equal(t, "/api/v1/author/lookup", r.URL.Path)
		require.Equal(t, "frank herbert", r.URL.Query().Get("term"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Author{
			{AuthorName: "Frank Herbert", ForeignAuthorID: "herbert-f"},
		})
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	authors, err := client.LookupAuthor(context.Background(), "frank herbert")

	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Frank Herbert", authors[0].AuthorName)
	assert.Equal(t, "herbert-f", authors[0].ForeignAuthorID)
}

func TestClient_LookupAuthor_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL, "wrong-key")
	_, err := client.LookupAuthor(context.Background(), "anyone")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_LookupAuthor_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	_, err := client.LookupAuthor(context.Background(), "anyone")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "upstream exploded", statusErr.Body)
}

func TestClient_LookupEdition_FlattensBookResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/book/lookup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title": "Dune", "editions": [
				{"title": "Dune (40th Anniversary)", "foreignEditionId": "edit-1"},
				{"title": "Dune (Paperback)", "foreignEditionId": "edit-2"}
			]},
			{"title": "Dune Messiah", "foreignEditionId": "edit-3"},
			{"title": "No Identifiers At All"}
		]`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	editions, err := client.LookupEdition(context.Background(), "Dune")

	require.NoError(t, err)
	require.Len(t, editions, 3)
	assert.Equal(t, "edit-1", editions[0].ForeignEditionID)
	assert.Equal(t, "edit-2", editions[1].ForeignEditionID)
	// Book without an edition list but with its own identifier becomes a candidate.
	assert.Equal(t, "edit-3", editions[2].ForeignEditionID)
	assert.Equal(t, "Dune Messiah", editions[2].Title)
}

func TestClient_AddBook(t *testing.T) {
	var received AddBookRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/book", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(AddedBook{ID: 42, Title: "Dune"})
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	added, err := client.AddBook(context.Background(), &AddBookRequest{
		Monitored:  true,
		AddOptions: AddOptions{SearchForNewBook: true},
		Author: AddAuthor{
			QualityProfileID:  1,
			MetadataProfileID: 1,
			ForeignAuthorID:   "herbert-f",
			RootFolderPath:    "/books",
		},
		Editions: []Edition{{Title: "Dune", ForeignEditionID: "edit-1", Monitored: true, ManualAdd: true}},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, added.ID)
	assert.Equal(t, "Dune", added.Title)

	assert.True(t, received.Monitored)
	assert.True(t, received.AddOptions.SearchForNewBook)
	assert.False(t, received.Author.Monitored)
	assert.Equal(t, "herbert-f", received.Author.ForeignAuthorID)
}

func TestClient_AddBook_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"errorMessage": "This book has already been added"}]`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	_, err := client.AddBook(context.Background(), &AddBookRequest{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "already been added")
}

func TestClient_QualityProfiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/qualityprofile", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]QualityProfile{{ID: 3, Name: "eBook"}})
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	profiles, err := client.QualityProfiles(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, 3, profiles[0].ID)
}

func TestClient_RootFolders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/rootfolder", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]RootFolder{{ID: 1, Path: "/books"}})
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	folders, err := client.RootFolders(context.Background())

	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "/books", folders[0].Path)
}

func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL, "test-key")
	_, err := client.LookupBook(ctx, "anything")

	assert.True(t, errors.Is(err, context.Canceled))
}
