package report

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/de-tools/profit-atlas/pkg/adapters"
	"github.com/de-tools/profit-atlas/pkg/models/api"
	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/models/store"
	"github.com/de-tools/profit-atlas/pkg/services/breakdown"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Generator is the slice of the report service the handlers need.
type Generator interface {
	Generate(ctx context.Context, period domain.TimePeriod, dims []breakdown.Dimension) (domain.Report, error)
}

// ConfigStore covers the user-edited cost configuration.
type ConfigStore interface {
	Load(ctx context.Context) (store.CostConfig, error)
	SaveSKUCosts(ctx context.Context, rows []store.SKUCostRow) error
}

type Handler struct {
	reports Generator
	config  ConfigStore
}

func NewHandler(reports Generator, config ConfigStore) *Handler {
	return &Handler{reports: reports, config: config}
}

func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	period, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	rep, err := h.reports.Generate(ctx, period, nil)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate kpi report")
		http.Error(w, "report generation failed", http.StatusBadGateway)
		return
	}

	writeJSON(ctx, w, adapters.MapReportDomainToApi(rep))
}

func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	dim := breakdown.Dimension(chi.URLParam(r, "dimension"))

	if _, err := breakdown.ByDimension(dim); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	period, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	rep, err := h.reports.Generate(ctx, period, []breakdown.Dimension{dim})
	if err != nil {
		logger.Error().Err(err).Str("dimension", string(dim)).Msg("failed to generate breakdown")
		http.Error(w, "report generation failed", http.StatusBadGateway)
		return
	}

	writeJSON(ctx, w, adapters.MapBreakdownRowsDomainToApi(rep.Breakdowns[string(dim)]))
}

func (h *Handler) GetSKUCosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	cfg, err := h.config.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load cost config")
		http.Error(w, "config unavailable", http.StatusInternalServerError)
		return
	}

	rows := make([]api.SKUCost, 0, len(cfg.SKUCosts))
	for _, row := range cfg.SKUCosts {
		rows = append(rows, adapters.MapSKUCostDomainToApi(adapters.MapSKUCostStoreToDomain(row)))
	}
	writeJSON(ctx, w, rows)
}

func (h *Handler) PutSKUCosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var rows []api.SKUCost
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	storeRows := make([]store.SKUCostRow, 0, len(rows))
	for _, row := range rows {
		storeRows = append(storeRows, adapters.MapSKUCostDomainToStore(adapters.MapSKUCostApiToDomain(row)))
	}

	if err := h.config.SaveSKUCosts(ctx, storeRows); err != nil {
		logger.Error().Err(err).Msg("failed to save sku costs")
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// periodFromQuery parses the inclusive from/to window. Both bounds are
// required; the pipeline itself does no date filtering.
func periodFromQuery(w http.ResponseWriter, r *http.Request) (domain.TimePeriod, bool) {
	from, err1 := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	to, err2 := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err1 != nil || err2 != nil {
		http.Error(w, "from and to are required (YYYY-MM-DD)", http.StatusBadRequest)
		return domain.TimePeriod{}, false
	}
	return domain.TimePeriod{Start: from, End: to}, true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
