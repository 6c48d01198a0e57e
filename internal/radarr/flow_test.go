package radarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrbridge/arrbridge/internal/upstream"
)

// fakeRadarr is a minimal Radarr v3 instance for flow tests.
func fakeRadarr(t *testing.T, lookup []Movie, profiles []QualityProfile, folders []RootFolder, added **Movie) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/movie/lookup":
			_ = json.NewEncoder(w).Encode(lookup)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/qualityprofile":
			_ = json.NewEncoder(w).Encode(profiles)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/rootfolder":
			_ = json.NewEncoder(w).Encode(folders)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v3/movie":
			var m Movie
			require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
			m.ID = 42
			*added = &m
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(m)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestFlow_AddMovie(t *testing.T) {
	var added *Movie
	server := fakeRadarr(t,
		[]Movie{
			{Title: "Dune: Part Two", Year: 2024, TmdbID: 693134},
			{Title: "Dune", Year: 2021, TmdbID: 438631},
			{Title: "Dune", Year: 1984, TmdbID: 841},
		},
		[]QualityProfile{{ID: 4, Name: "HD-1080p"}},
		[]RootFolder{{ID: 1, Path: "/movies"}},
		&added,
	)
	defer server.Close()

	flow := NewFlow(New(server.URL, "test-key"), nil)
	result, err := flow.AddMovie(context.Background(), AddRequest{Term: "Dune"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "Dune")

	require.NotNil(t, added)
	assert.Equal(t, "Dune", added.Title)
	assert.Equal(t, 438631, added.TmdbID)
	assert.Equal(t, 4, added.QualityProfileID)
	assert.Equal(t, "/movies", added.RootFolderPath)
	assert.True(t, added.Monitored)
	require.NotNil(t, added.AddOptions)
	assert.True(t, added.AddOptions.SearchForMovie)
}

func TestFlow_AddMovie_CallerOverridesSkipDefaults(t *testing.T) {
	var added *Movie
	server := fakeRadarr(t,
		[]Movie{{Title: "Blade Runner", Year: 1982, TmdbID: 78}},
		nil, nil, // profile/folder listings must not be hit
		&added,
	)
	defer server.Close()

	monitored := false
	flow := NewFlow(New(server.URL, "test-key"), nil)
	_, err := flow.AddMovie(context.Background(), AddRequest{
		Term:             "Blade Runner",
		QualityProfileID: 7,
		RootFolderPath:   "/mnt/movies",
		Monitored:        &monitored,
	})

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, 7, added.QualityProfileID)
	assert.Equal(t, "/mnt/movies", added.RootFolderPath)
	assert.False(t, added.Monitored)
}

func TestFlow_AddMovie_NoSimilarTitle(t *testing.T) {
	var added *Movie
	server := fakeRadarr(t,
		[]Movie{{Title: "Completely Unrelated Documentary", TmdbID: 9}},
		nil, nil, &added,
	)
	defer server.Close()

	flow := NewFlow(New(server.URL, "test-key"), nil)
	_, err := flow.AddMovie(context.Background(), AddRequest{Term: "Dune"})

	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Nil(t, added)
}

func TestFlow_AddMovie_EmptyLookup(t *testing.T) {
	var added *Movie
	server := fakeRadarr(t, nil, nil, nil, &added)
	defer server.Close()

	flow := NewFlow(New(server.URL, "test-key"), nil)
	_, err := flow.AddMovie(context.Background(), AddRequest{Term: "Dune"})

	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFlow_AddMovie_NoQualityProfiles(t *testing.T) {
	var added *Movie
	server := fakeRadarr(t,
		[]Movie{{Title: "Dune", TmdbID: 438631}},
		nil, nil, &added,
	)
	defer server.Close()

	flow := NewFlow(New(server.URL, "test-key"), nil)
	_, err := flow.AddMovie(context.Background(), AddRequest{Term: "Dune"})

	assert.ErrorIs(t, err, ErrNoQualityProfile)
	assert.Nil(t, added)
}

func TestClient_Add_Rejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"errorMessage": "This movie has already been added"}]`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	_, err := client.Add(context.Background(), &Movie{Title: "Dune", TmdbID: 438631})

	var statusErr *upstream.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "already been added")
}

func TestClient_Lookup_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL, "wrong-key")
	_, err := client.Lookup(context.Background(), "anything")

	assert.ErrorIs(t, err, upstream.ErrUnauthorized)
}
