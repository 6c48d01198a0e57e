package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arrbridge/arrbridge/internal/overseerr"
	"github.com/arrbridge/arrbridge/internal/radarr"
	"github.com/arrbridge/arrbridge/internal/sonarr"
	"github.com/arrbridge/arrbridge/internal/workflow"
)

// decodeData unmarshals the envelope's data field, treating an absent field
// as an empty object.
func decodeData(data json.RawMessage, out any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (s *Server) dispatchReadarr(w http.ResponseWriter, r *http.Request, env envelope, log *slog.Logger) {
	if s.deps.Books == nil || s.deps.Readarr == nil {
		writeError(w, http.StatusServiceUnavailable, "readarr is not configured", nil)
		return
	}
	ctx := r.Context()

	switch env.Action {
	case "add_book":
		var req workflow.Request
		if err := decodeData(env.Data, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid add_book data: "+err.Error(), nil)
			return
		}
		if req.QualityProfileID == 0 {
			req.QualityProfileID = s.deps.Defaults.QualityProfileID
		}
		if req.MetadataProfileID == 0 {
			req.MetadataProfileID = s.deps.Defaults.MetadataProfileID
		}
		if req.RootFolderPath == "" {
			req.RootFolderPath = s.deps.Defaults.RootFolder
		}
		result, err := s.deps.Books.AddBook(ctx, req)
		if err != nil {
			log.Warn("add_book failed", "error", err)
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "lookup":
		var req struct {
			Term string `json:"term"`
		}
		if err := decodeData(env.Data, &req); err != nil || req.Term == "" {
			writeError(w, http.StatusBadRequest, "lookup requires a term", nil)
			return
		}
		books, err := s.deps.Readarr.LookupBook(ctx, req.Term)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "results": books})

	case "profiles":
		quality, err := s.deps.Readarr.QualityProfiles(ctx)
		if err != nil {
			writeActionError(w, err)
			return
		}
		metadata, err := s.deps.Readarr.MetadataProfiles(ctx)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":          true,
			"qualityProfiles":  quality,
			"metadataProfiles": metadata,
		})

	case "rootfolders":
		folders, err := s.deps.Readarr.RootFolders(ctx)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "rootFolders": folders})

	default:
		writeError(w, http.StatusBadRequest, "unknown readarr action: "+env.Action, nil)
	}
}

func (s *Server) dispatchRadarr(w http.ResponseWriter, r *http.Request, env envelope, log *slog.Logger) {
	if s.deps.Movies == nil {
		writeError(w, http.StatusServiceUnavailable, "radarr is not configured", nil)
		return
	}
	ctx := r.Context()

	switch env.Action {
	case "add_movie":
		var req radarr.AddRequest
		if err := decodeData(env.Data, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid add_movie data: "+err.Error(), nil)
			return
		}
		if req.Term == "" {
			writeError(w, http.StatusBadRequest, "add_movie requires a term", nil)
			return
		}
		if req.QualityProfileID == 0 {
			req.QualityProfileID = s.deps.Defaults.QualityProfileID
		}
		if req.RootFolderPath == "" {
			req.RootFolderPath = s.deps.Defaults.RootFolder
		}
		result, err := s.deps.Movies.AddMovie(ctx, req)
		if err != nil {
			log.Warn("add_movie failed", "error", err)
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "lookup":
		var req struct {
			Term string `json:"term"`
		}
		if err := decodeData(env.Data, &req); err != nil || req.Term == "" {
			writeError(w, http.StatusBadRequest, "lookup requires a term", nil)
			return
		}
		movies, err := s.deps.Movies.Lookup(ctx, req.Term)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "results": movies})

	default:
		writeError(w, http.StatusBadRequest, "unknown radarr action: "+env.Action, nil)
	}
}

func (s *Server) dispatchSonarr(w http.ResponseWriter, r *http.Request, env envelope, log *slog.Logger) {
	if s.deps.Series == nil {
		writeError(w, http.StatusServiceUnavailable, "sonarr is not configured", nil)
		return
	}
	ctx := r.Context()

	switch env.Action {
	case "add_series":
		var req sonarr.AddRequest
		if err := decodeData(env.Data, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid add_series data: "+err.Error(), nil)
			return
		}
		if req.Term == "" {
			writeError(w, http.StatusBadRequest, "add_series requires a term", nil)
			return
		}
		if req.QualityProfileID == 0 {
			req.QualityProfileID = s.deps.Defaults.QualityProfileID
		}
		if req.RootFolderPath == "" {
			req.RootFolderPath = s.deps.Defaults.RootFolder
		}
		result, err := s.deps.Series.AddSeries(ctx, req)
		if err != nil {
			log.Warn("add_series failed", "error", err)
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "lookup":
		var req struct {
			Term string `json:"term"`
		}
		if err := decodeData(env.Data, &req); err != nil || req.Term == "" {
			writeError(w, http.StatusBadRequest, "lookup requires a term", nil)
			return
		}
		series, err := s.deps.Series.Lookup(ctx, req.Term)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "results": series})

	default:
		writeError(w, http.StatusBadRequest, "unknown sonarr action: "+env.Action, nil)
	}
}

func (s *Server) dispatchOverseerr(w http.ResponseWriter, r *http.Request, env envelope, log *slog.Logger) {
	if s.deps.Requests == nil {
		writeError(w, http.StatusServiceUnavailable, "overseerr is not configured", nil)
		return
	}

	switch env.Action {
	case "request":
		var req overseerr.MediaRequest
		if err := decodeData(env.Data, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request data: "+err.Error(), nil)
			return
		}
		result, err := s.deps.Requests.SubmitRequest(r.Context(), &req)
		if err != nil {
			log.Warn("media request failed", "error", err)
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "request": result})

	default:
		writeError(w, http.StatusBadRequest, "unknown overseerr action: "+env.Action, nil)
	}
}
