package report

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/fact-atlas/pkg/models/api"
	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/services/fact"
)

// Service is the report surface the handler queries.
type Service interface {
	Facts() []*fact.Fact
	Fact(id string) (*fact.Fact, bool)
	AlignedFacts(f *fact.Fact, cov domain.Coverage) []*fact.Fact
	Duplicates(f *fact.Fact) []*fact.Fact
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListFacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	facts := h.svc.Facts()
	response := make([]api.FactSummary, 0, len(facts))
	for _, f := range facts {
		response = append(response, summarize(f))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode facts")
	}
}

func (h *Handler) GetFact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	f, ok := h.svc.Fact(id)
	if !ok {
		writeError(w, logger, http.StatusNotFound, "fact not found")
		return
	}

	if err := json.NewEncoder(w).Encode(detail(f)); err != nil {
		logger.Error().
			Err(err).
			Str("fact", id).
			Msg("failed to encode fact")
	}
}

func (h *Handler) GetDuplicates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	f, ok := h.svc.Fact(id)
	if !ok {
		writeError(w, logger, http.StatusNotFound, "fact not found")
		return
	}

	if err := json.NewEncoder(w).Encode(alignmentResponse(h.svc.Duplicates(f))); err != nil {
		logger.Error().
			Err(err).
			Str("fact", id).
			Msg("failed to encode duplicates")
	}
}

func (h *Handler) PostAlignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	f, ok := h.svc.Fact(id)
	if !ok {
		writeError(w, logger, http.StatusNotFound, "fact not found")
		return
	}

	var cov domain.Coverage
	if err := json.NewDecoder(r.Body).Decode(&cov); err != nil {
		writeError(w, logger, http.StatusBadRequest, "invalid coverage specification")
		return
	}

	if err := json.NewEncoder(w).Encode(alignmentResponse(h.svc.AlignedFacts(f, cov))); err != nil {
		logger.Error().
			Err(err).
			Str("fact", id).
			Msg("failed to encode alignment")
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Message: msg}); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode error response")
	}
}

func summarize(f *fact.Fact) api.FactSummary {
	s := api.FactSummary{
		ID:      f.ID(),
		Concept: f.ConceptName(),
		Value:   f.ReadableValue(),
	}
	if p, ok := f.Aspect(domain.AspectPeriod); ok {
		s.Period = p.RawValue()
	}
	if u, ok := f.Aspect(domain.AspectUnit); ok {
		s.Unit = u.RawValue()
	}
	return s
}

func detail(f *fact.Fact) api.FactDetail {
	d := api.FactDetail{
		ID:               f.ID(),
		ConceptLabel:     conceptLabel(f),
		Value:            f.ReadableValue(),
		Accuracy:         f.ReadableAccuracy(),
		Monetary:         f.IsMonetary(),
		Nil:              f.IsNil(),
		Hidden:           f.IsHidden(),
		WiderConcepts:    f.WiderConcepts(),
		NarrowerConcepts: f.NarrowerConcepts(),
	}
	for _, a := range f.Aspects() {
		d.Aspects = append(d.Aspects, api.AspectView{
			Key:   a.Key(),
			Name:  a.Name(),
			Raw:   a.RawValue(),
			Label: a.ValueLabel(),
		})
	}
	if dims := f.Dimensions(); len(dims) > 0 {
		d.Dimensions = dims
	}
	for _, item := range f.Footnotes() {
		d.Footnotes = append(d.Footnotes, item.ID())
	}
	return d
}

func conceptLabel(f *fact.Fact) string {
	if a, ok := f.Aspect(domain.AspectConcept); ok {
		return a.ValueLabel()
	}
	return f.ConceptName()
}

func alignmentResponse(facts []*fact.Fact) api.AlignmentResponse {
	resp := api.AlignmentResponse{FactIDs: []string{}}
	for _, f := range facts {
		resp.FactIDs = append(resp.FactIDs, f.ID())
	}
	return resp
}
