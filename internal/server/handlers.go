package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/sells-group/compintel/internal/pipeline"
	"github.com/sells-group/compintel/internal/sample"
)

const maxDemoAnalyses = 3

// Handler serves the analysis API over a pipeline Service.
type Handler struct {
	svc *pipeline.Service
}

// NewHandler creates a Handler.
func NewHandler(svc *pipeline.Service) *Handler {
	return &Handler{svc: svc}
}

// demo reports whether the service has no live completion credential
// and must serve canned payloads.
func (h *Handler) demo() bool {
	return !h.svc.Gateway().Live()
}

// validateSiteURL accepts absolute http(s) URLs only.
func validateSiteURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be a valid http(s) URL", field)
	}
	return nil
}

type analyzeSiteRequest struct {
	URL string `json:"url"`
}

// AnalyzeSite handles POST /api/analyze-site.
func (h *Handler) AnalyzeSite(w http.ResponseWriter, r *http.Request) {
	var req analyzeSiteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateSiteURL("url", req.URL); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.demo() {
		zap.L().Info("demo mode: serving sample site profile")
		profile := sample.SiteProfile()
		profile.URL = req.URL
		writeJSON(w, http.StatusOK, profile)
		return
	}

	profile, err := h.svc.ClassifySite(r.Context(), req.URL)
	if err != nil {
		h.writePipelineError(w, "analyze-site", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type suggestRequest struct {
	UserSite      string `json:"userSite"`
	Industry      string `json:"industry"`
	BusinessModel string `json:"businessModel"`
}

// SuggestCompetitors handles POST /api/suggest-competitors.
func (h *Handler) SuggestCompetitors(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateSiteURL("userSite", req.UserSite); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.demo() {
		zap.L().Info("demo mode: serving sample competitor candidates")
		writeJSON(w, http.StatusOK, sample.Candidates())
		return
	}

	candidates, err := h.svc.SuggestCompetitors(r.Context(), req.UserSite, req.Industry, req.BusinessModel)
	if err != nil {
		h.writePipelineError(w, "suggest-competitors", err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

type analyzeCompetitorsRequest struct {
	Competitors []string `json:"competitors"`
}

// AnalyzeCompetitors handles POST /api/analyze-competitors.
func (h *Handler) AnalyzeCompetitors(w http.ResponseWriter, r *http.Request) {
	var req analyzeCompetitorsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Competitors) == 0 {
		writeError(w, http.StatusBadRequest, "competitors is required")
		return
	}
	for _, c := range req.Competitors {
		if err := validateSiteURL("competitors", c); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if h.demo() {
		n := len(req.Competitors)
		if n > maxDemoAnalyses {
			n = maxDemoAnalyses
		}
		zap.L().Info("demo mode: serving sample analyses", zap.Int("count", n))
		writeJSON(w, http.StatusOK, sample.Analyses(n))
		return
	}

	analyses, err := h.svc.AnalyzeCompetitors(r.Context(), req.Competitors)
	if err != nil {
		h.writePipelineError(w, "analyze-competitors", err)
		return
	}
	writeJSON(w, http.StatusOK, analyses)
}

// writePipelineError maps pipeline failures onto the envelope. All of
// them are server-side conditions; the distinction is in the logs, not
// the status code.
func (h *Handler) writePipelineError(w http.ResponseWriter, op string, err error) {
	log := zap.L().With(zap.String("op", op))

	var malformed *pipeline.MalformedOutputError
	switch {
	case errors.Is(err, pipeline.ErrNoAnalyses):
		log.Error("batch exhausted", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &malformed):
		log.Error("malformed model output", zap.Error(err), zap.String("raw", malformed.Raw))
		writeError(w, http.StatusInternalServerError, "model returned malformed output")
	default:
		log.Error("pipeline failure", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "analysis failed")
	}
}
