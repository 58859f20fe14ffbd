package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/FocuswithJustin/uddf/core/cas"
	"github.com/FocuswithJustin/uddf/core/codec"
	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/logbook"
	"github.com/FocuswithJustin/uddf/core/resolve"
	"github.com/FocuswithJustin/uddf/core/validate"
	"github.com/FocuswithJustin/uddf/internal/fileguard"
	"github.com/FocuswithJustin/uddf/internal/logging"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	JobsEnabled bool   `json:"jobs_enabled"`
	Jobs        int    `json:"jobs"`
	Clients     int    `json:"websocket_clients"`
	CachedItems int    `json:"cached_reports"`
}

// ValidateResponse is returned by POST /validate.
type ValidateResponse struct {
	Digest    cas.Digest       `json:"digest"`
	Version   string           `json:"version"`
	Generator string           `json:"generator,omitempty"`
	Dives     int              `json:"dives"`
	Valid     bool             `json:"valid"`
	Options   validate.Options `json:"options"`
	Result    *validate.Result `json:"result"`
	Cached    bool             `json:"cached"`
}

// ResolveResponse is returned by POST /resolve.
type ResolveResponse struct {
	Digest      cas.Digest                `json:"digest"`
	Version     string                    `json:"version"`
	Valid       bool                      `json:"valid"`
	Identifiers int                       `json:"identifiers"`
	ByKind      map[resolve.Kind][]string `json:"by_kind"`
	Errors      []ReferenceIssue          `json:"errors,omitempty"`
}

// ReferenceIssue is a dangling reference.
type ReferenceIssue struct {
	Ref      string `json:"ref"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Version:     s.cfg.Version,
		Uptime:      time.Since(s.started).Round(time.Second).String(),
		JobsEnabled: s.cfg.Root != "",
		Jobs:        s.jobs.Len(),
		Clients:     s.hub.ClientCount(),
		CachedItems: s.reports.Len(),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_OPTION", err.Error())
		return
	}

	data, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	digest := cas.Sum(data)
	key := reportKey(digest.BLAKE3, opts)
	if cached, ok := s.reports.Get(key); ok {
		logging.DebugContext(r.Context(), "report cache hit", "blake3", digest.BLAKE3)
		cached.Cached = true
		respond(w, http.StatusOK, cached)
		return
	}

	doc, res, err := logbook.ParseAndValidate(data, opts)
	if err != nil {
		decodeFailed(w, r, err)
		return
	}

	resp := ValidateResponse{
		Digest:    digest,
		Version:   doc.Version,
		Generator: doc.Generator.Name,
		Dives:     doc.DiveCount(),
		Valid:     res.IsValid(),
		Options:   opts,
		Result:    res,
	}
	s.reports.Set(key, resp)

	logging.ValidationSummary("upload", len(res.Errors), len(res.Warnings),
		"blake3", digest.BLAKE3,
		"request_id", logging.GetRequestID(r.Context()))
	logging.InfoContext(r.Context(), "report cached", "blake3", digest.BLAKE3, "entries", s.reports.Len())
	respond(w, http.StatusOK, resp)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	doc, res, err := logbook.ParseAndResolve(data)
	var dup *errors.DuplicateIDError
	switch {
	case err == nil, errors.Is(err, errors.ErrUnresolvedReference):
	case errors.As(err, &dup):
		respondError(w, http.StatusUnprocessableEntity, "DUPLICATE_ID", err.Error())
		return
	default:
		decodeFailed(w, r, err)
		return
	}

	resp := ResolveResponse{
		Digest:      cas.Sum(data),
		Version:     doc.Version,
		Valid:       res.IsValid(),
		Identifiers: res.Registry.Len(),
		ByKind:      res.Registry.ByKind(),
	}
	for _, e := range res.Errors {
		resp.Errors = append(resp.Errors, ReferenceIssue{Ref: e.Ref, Location: e.Location, Message: e.Message})
	}
	respond(w, http.StatusOK, resp)
}

// readDocument reads the request body, enforcing the upload limit, and
// decompresses xz uploads. It writes the error response itself.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := fileguard.ReadLimited(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, fileguard.ErrFileTooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE",
				fmt.Sprintf("document exceeds %d bytes", s.cfg.MaxBodyBytes))
			return nil, false
		}
		respondError(w, http.StatusBadRequest, "READ_FAILED", err.Error())
		return nil, false
	}
	if len(data) == 0 {
		respondError(w, http.StatusBadRequest, "EMPTY_BODY", "request body is empty")
		return nil, false
	}

	data, err = codec.Decompress(data)
	if err != nil {
		if errors.Is(err, fileguard.ErrFileTooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", err.Error())
			return nil, false
		}
		respondError(w, http.StatusUnprocessableEntity, "DECOMPRESS_FAILED", err.Error())
		return nil, false
	}
	return data, true
}

func decodeFailed(w http.ResponseWriter, r *http.Request, err error) {
	logging.WarnContext(r.Context(), "decode failed", "path", r.URL.Path, "error", err.Error())
	code := "PARSE_ERROR"
	if errors.Is(err, errors.ErrUnsupported) {
		code = "UNSUPPORTED"
	}
	respondError(w, http.StatusUnprocessableEntity, code, err.Error())
}

// parseOptions reads the strict, ranges and references query parameters on
// top of validate.DefaultOptions.
func parseOptions(q url.Values) (validate.Options, error) {
	opts := validate.DefaultOptions()
	for name, target := range map[string]*bool{
		"strict":     &opts.StrictMode,
		"ranges":     &opts.ValidateRanges,
		"references": &opts.ValidateReferences,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %q is not a boolean", name, v)
		}
		*target = b
	}
	return opts, nil
}

func reportKey(blake3 string, opts validate.Options) string {
	return fmt.Sprintf("%s:%t:%t:%t", blake3, opts.ValidateRanges, opts.ValidateReferences, opts.StrictMode)
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta:    &APIMeta{Timestamp: time.Now().UTC().Format(time.RFC3339)},
	})
}

func respondList(w http.ResponseWriter, data interface{}, total int) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    &APIMeta{Total: total, Timestamp: time.Now().UTC().Format(time.RFC3339)},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
		Meta:    &APIMeta{Timestamp: time.Now().UTC().Format(time.RFC3339)},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}
