package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mauirilio/etf-tracker/internal/domain/dashboard"
	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	syncDomain "github.com/mauirilio/etf-tracker/internal/domain/sync"
	"github.com/mauirilio/etf-tracker/pkg/chart"
	"github.com/mauirilio/etf-tracker/pkg/logger"
)

// Server represents an HTTP server with all routes configured.
type Server struct {
	dashboardUc dashboard.Usecase
	syncUc      syncDomain.Usecase
	logger      logger.Interface
	mux         *http.ServeMux
	server      *http.Server
}

// wrappedValue mirrors the provider's {value: n} numeric envelope; the
// dashboard consumes current-metrics numerics in that shape.
type wrappedValue struct {
	Value float64 `json:"value"`
}

// snapshotResponse is one per-ticker record of the current endpoint.
type snapshotResponse struct {
	Ticker         string       `json:"ticker"`
	Institute      string       `json:"institute"`
	Date           string       `json:"date"`
	TotalNetInflow wrappedValue `json:"totalNetInflow"`
	DailyNetInflow wrappedValue `json:"dailyNetInflow"`
	NetAssets      wrappedValue `json:"netAssets"`
	Volume         wrappedValue `json:"volume"`
	MarketPrice    wrappedValue `json:"marketPrice"`
}

// NewServer creates a new HTTP server with configured routes.
func NewServer(addr string, dashboardUc dashboard.Usecase, syncUc syncDomain.Usecase, logger logger.Interface) *Server {
	mux := http.NewServeMux()

	server := &Server{
		dashboardUc: dashboardUc,
		syncUc:      syncUc,
		logger:      logger,
		mux:         mux,
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	server.registerRoutes()

	return server
}

// registerRoutes configures all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/api/etf/current", s.handleCurrent)
	s.mux.HandleFunc("/api/etf/history", s.handleHistory)
	s.mux.HandleFunc("/api/etf/chart", s.handleChart)
	s.mux.HandleFunc("/api/sync", s.handleSync)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// handleCurrent serves the per-ticker rows of the latest synced day.
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	assetType, ok := s.assetTypeParam(w, r)
	if !ok {
		return
	}

	snapshots, err := s.dashboardUc.CurrentSnapshots(r.Context(), assetType)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err, logger.NewField("path", r.URL.Path))
		s.writeError(w, http.StatusInternalServerError, "failed to load current snapshots")
		return
	}

	list := make([]snapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		list = append(list, snapshotResponse{
			Ticker:         snapshot.Ticker,
			Institute:      snapshot.Institute,
			Date:           snapshot.Date.Format(etf.DateFormat),
			TotalNetInflow: wrappedValue{snapshot.TotalNetInflow},
			DailyNetInflow: wrappedValue{snapshot.DailyNetInflow},
			NetAssets:      wrappedValue{snapshot.NetAssets},
			Volume:         wrappedValue{snapshot.Volume},
			MarketPrice:    wrappedValue{snapshot.MarketPrice},
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"list": list})
}

// handleHistory serves the full daily series for an asset class.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	assetType, ok := s.assetTypeParam(w, r)
	if !ok {
		return
	}

	entries, err := s.dashboardUc.HistorySeries(r.Context(), assetType)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err, logger.NewField("path", r.URL.Path))
		s.writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}

// handleChart serves the bucketed flow series driving the dashboard chart.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	assetType, ok := s.assetTypeParam(w, r)
	if !ok {
		return
	}

	rangeParam := r.URL.Query().Get("range")
	if rangeParam == "" {
		rangeParam = string(chart.GranularityDay)
	}
	granularity, err := chart.ParseGranularity(rangeParam)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := chart.Query{Granularity: granularity, Window: chart.DefaultDailyWindow}
	if granularity == chart.GranularityRange {
		start, err := time.ParseInLocation(etf.DateFormat, r.URL.Query().Get("start"), time.UTC)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid start date, want YYYY-MM-DD")
			return
		}
		end, err := time.ParseInLocation(etf.DateFormat, r.URL.Query().Get("end"), time.UTC)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid end date, want YYYY-MM-DD")
			return
		}
		q.Start, q.End = start, end
	}

	buckets, err := s.dashboardUc.ChartSeries(r.Context(), assetType, q)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err, logger.NewField("path", r.URL.Path))
		s.writeError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"data": buckets})
}

// handleSync triggers a full sync pass in the background.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// detached from the request lifetime, the pass outlives the response
	go s.syncUc.RunFullSync(context.Background())

	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "sync started"})
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// assetTypeParam parses the required type query parameter, writing a 400 on
// failure.
func (s *Server) assetTypeParam(w http.ResponseWriter, r *http.Request) (etf.AssetType, bool) {
	assetType, err := etf.ParseAssetType(r.URL.Query().Get("type"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return assetType, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
