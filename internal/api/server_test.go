package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arrbridge/arrbridge/internal/overseerr"
	"github.com/arrbridge/arrbridge/internal/radarr"
	"github.com/arrbridge/arrbridge/internal/readarr"
	"github.com/arrbridge/arrbridge/internal/resolve"
	"github.com/arrbridge/arrbridge/internal/sonarr"
	"github.com/arrbridge/arrbridge/internal/upstream"
	"github.com/arrbridge/arrbridge/internal/workflow"
	"github.com/arrbridge/arrbridge/internal/workflow/mocks"
)

type fakeBooks struct {
	addBook func(ctx context.Context, req workflow.Request) (*workflow.Result, error)
}

func (f *fakeBooks) AddBook(ctx context.Context, req workflow.Request) (*workflow.Result, error) {
	return f.addBook(ctx, req)
}

type fakeMovies struct {
	addMovie func(ctx context.Context, req radarr.AddRequest) (*radarr.AddResult, error)
	lookup   func(ctx context.Context, term string) ([]radarr.Movie, error)
}

func (f *fakeMovies) AddMovie(ctx context.Context, req radarr.AddRequest) (*radarr.AddResult, error) {
	return f.addMovie(ctx, req)
}

func (f *fakeMovies) Lookup(ctx context.Context, term string) ([]radarr.Movie, error) {
	return f.lookup(ctx, term)
}

type fakeSeries struct {
	addSeries func(ctx context.Context, req sonarr.AddRequest) (*sonarr.AddResult, error)
	lookup    func(ctx context.Context, term string) ([]sonarr.Series, error)
}

func (f *fakeSeries) AddSeries(ctx context.Context, req sonarr.AddRequest) (*sonarr.AddResult, error) {
	return f.addSeries(ctx, req)
}

func (f *fakeSeries) Lookup(ctx context.Context, term string) ([]sonarr.Series, error) {
	return f.lookup(ctx, term)
}

type fakeRequests struct {
	submit func(ctx context.Context, mr *overseerr.MediaRequest) (*overseerr.RequestResult, error)
}

func (f *fakeRequests) SubmitRequest(ctx context.Context, mr *overseerr.MediaRequest) (*overseerr.RequestResult, error) {
	return f.submit(ctx, mr)
}

func newTestServer(deps Deps) *Server {
	return New(deps, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postProxy(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/proxy", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	handler := newTestServer(Deps{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestServer_UnknownService(t *testing.T) {
	handler := newTestServer(Deps{}).Router()

	rec := postProxy(t, handler, `{"service": "lidarr", "action": "add"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown service")
}

func TestServer_MissingServiceOrAction(t *testing.T) {
	handler := newTestServer(Deps{}).Router()

	rec := postProxy(t, handler, `{"service": "readarr"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
}

func TestServer_UnconfiguredService(t *testing.T) {
	handler := newTestServer(Deps{}).Router()

	rec := postProxy(t, handler, `{"service": "readarr", "action": "add_book", "data": {"term": "Dune"}}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestServer_AddBook(t *testing.T) {
	ctrl := gomock.NewController(t)

	var got workflow.Request
	deps := Deps{
		Books: &fakeBooks{addBook: func(_ context.Context, req workflow.Request) (*workflow.Result, error) {
			got = req
			return &workflow.Result{Success: true, Message: `Added "Dune" to the library`}, nil
		}},
		Readarr: mocks.NewMockUpstream(ctrl),
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "readarr", "action": "add_book", "data": {"term": "Dune", "qualityProfileId": 1}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dune", got.Term)
	assert.Equal(t, 1, got.QualityProfileID)

	var result workflow.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "Dune")
}

func TestServer_AddBook_EditionDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)

	deps := Deps{
		Books: &fakeBooks{addBook: func(_ context.Context, _ workflow.Request) (*workflow.Result, error) {
			return nil, &resolve.NoValidEditionError{
				Term:        "Dune",
				Title:       "Dune",
				AuthorName:  "Frank Herbert",
				Identifiers: map[string]string{"isbn13": "9780441013593"},
			}
		}},
		Readarr: mocks.NewMockUpstream(ctrl),
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "readarr", "action": "add_book", "data": {"term": "Dune"}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success     bool           `json:"success"`
		Error       string         `json:"error"`
		Diagnostics map[string]any `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Dune", body.Diagnostics["term"])
	assert.Equal(t, "Frank Herbert", body.Diagnostics["authorName"])
}

func TestServer_AddBook_UpstreamRejection(t *testing.T) {
	ctrl := gomock.NewController(t)

	deps := Deps{
		Books: &fakeBooks{addBook: func(_ context.Context, _ workflow.Request) (*workflow.Result, error) {
			return nil, &upstream.StatusError{Op: "add book", StatusCode: 400, Body: "already added"}
		}},
		Readarr: mocks.NewMockUpstream(ctrl),
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "readarr", "action": "add_book", "data": {"term": "Dune"}}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstreamStatus")
}

func TestServer_ReadarrLookupPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	readarrMock := mocks.NewMockUpstream(ctrl)
	readarrMock.EXPECT().
		LookupBook(gomock.Any(), "dune").
		Return([]readarr.Book{{Title: "Dune"}}, nil)

	deps := Deps{
		Books:   &fakeBooks{addBook: func(context.Context, workflow.Request) (*workflow.Result, error) { return nil, nil }},
		Readarr: readarrMock,
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "readarr", "action": "lookup", "data": {"term": "dune"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Dune"`)
}

func TestServer_AddMovie(t *testing.T) {
	deps := Deps{
		Movies: &fakeMovies{
			addMovie: func(_ context.Context, req radarr.AddRequest) (*radarr.AddResult, error) {
				return &radarr.AddResult{Success: true, Message: `Added "` + req.Term + `" to the library`}, nil
			},
		},
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "radarr", "action": "add_movie", "data": {"term": "Dune"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
}

func TestServer_AddMovie_RequiresTerm(t *testing.T) {
	deps := Deps{
		Movies: &fakeMovies{
			addMovie: func(_ context.Context, _ radarr.AddRequest) (*radarr.AddResult, error) {
				t.Fatal("should not be called")
				return nil, nil
			},
		},
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "radarr", "action": "add_movie", "data": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AddSeries_NoMatch(t *testing.T) {
	deps := Deps{
		Series: &fakeSeries{
			addSeries: func(_ context.Context, _ sonarr.AddRequest) (*sonarr.AddResult, error) {
				return nil, errors.New("no matching series found")
			},
		},
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "sonarr", "action": "add_series", "data": {"term": "Nope"}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServer_OverseerrRequest(t *testing.T) {
	var got *overseerr.MediaRequest
	deps := Deps{
		Requests: &fakeRequests{submit: func(_ context.Context, mr *overseerr.MediaRequest) (*overseerr.RequestResult, error) {
			got = mr
			result := &overseerr.RequestResult{ID: 9, Type: "movie"}
			result.Media.TmdbID = mr.MediaID
			return result, nil
		}},
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "overseerr", "action": "request", "data": {"mediaType": "movie", "mediaId": 438631}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "movie", got.MediaType)
	assert.Equal(t, 438631, got.MediaID)
}

func TestServer_UnknownAction(t *testing.T) {
	deps := Deps{
		Movies: &fakeMovies{},
	}
	handler := newTestServer(deps).Router()

	rec := postProxy(t, handler, `{"service": "radarr", "action": "delete_everything"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown radarr action")
}

func TestServer_AddBook_DefaultsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)

	var got workflow.Request
	deps := Deps{
		Books: &fakeBooks{addBook: func(_ context.Context, req workflow.Request) (*workflow.Result, error) {
			got = req
			return &workflow.Result{Success: true}, nil
		}},
		Readarr:  mocks.NewMockUpstream(ctrl),
		Defaults: Defaults{RootFolder: "/books", QualityProfileID: 3, MetadataProfileID: 2},
	}
	handler := newTestServer(deps).Router()

	// Caller-supplied values win; omitted ones fall back to configuration.
	rec := postProxy(t, handler, `{"service": "readarr", "action": "add_book", "data": {"term": "Dune", "qualityProfileId": 9}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 9, got.QualityProfileID)
	assert.Equal(t, 2, got.MetadataProfileID)
	assert.Equal(t, "/books", got.RootFolderPath)
}

func TestServer_CORSPreflight(t *testing.T) {
	handler := newTestServer(Deps{}).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/proxy", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
