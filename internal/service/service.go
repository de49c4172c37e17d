// Package service provides the girlmath HTTP scoring API.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/girlmathhq/girlmath/internal/engine"
	"github.com/girlmathhq/girlmath/internal/punchline"
	"github.com/girlmathhq/girlmath/internal/shop"
	"github.com/girlmathhq/girlmath/internal/whatif"
)

// Config controls the service runtime behavior.
type Config struct {
	Addr string
	Seed int64
}

// ScoreResponse is served at /v1/score.
type ScoreResponse struct {
	Metrics   engine.Metrics    `json:"metrics"`
	Punchline string            `json:"punchline"`
	Insight   string            `json:"insight"`
	Scenarios []whatif.Scenario `json:"scenarios"`
}

// PunchlineResponse is served at /v1/punchline.
type PunchlineResponse struct {
	Punchline  string   `json:"punchline"`
	Alternates []string `json:"alternates"`
}

// OffersResponse is served at /v1/offers.
type OffersResponse struct {
	Item     shop.Item    `json:"item"`
	Estimate string       `json:"estimate"`
	Offers   []shop.Offer `json:"offers"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time `json:"started_at"`
	UptimeSec    int64     `json:"uptime_sec"`
	Evaluations  int64     `json:"evaluations"`
	LastScore    int       `json:"last_score,omitempty"`
	LastVerdict  string    `json:"last_verdict,omitempty"`
	LastScoredAt time.Time `json:"last_scored_at,omitzero"`
}

// Service runs the scoring API on top of a shared engine.
type Service struct {
	cfg Config
	eng *engine.Engine

	rngMu sync.Mutex
	rng   *rand.Rand

	mu           sync.RWMutex
	startedAt    time.Time
	evaluations  int64
	lastScore    int
	lastVerdict  string
	lastScoredAt time.Time
}

// New returns a new scoring service. A nil engine uses the default ruleset.
func New(cfg Config, eng *engine.Engine) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if eng == nil {
		eng = engine.New(nil)
	}

	return &Service{
		cfg:       cfg,
		eng:       eng,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		startedAt: time.Now(),
	}
}

// Handler returns the HTTP handler serving the API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/score", s.handleScore)
	mux.HandleFunc("/v1/punchline", s.handlePunchline)
	mux.HandleFunc("/v1/offers", s.handleOffers)
	return mux
}

// Run serves the API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("girlmath http server: %w", err)
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	status := Status{
		StartedAt:    s.startedAt,
		UptimeSec:    int64(time.Since(s.startedAt).Seconds()),
		Evaluations:  s.evaluations,
		LastScore:    s.lastScore,
		LastVerdict:  s.lastVerdict,
		LastScoredAt: s.lastScoredAt,
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, status)
}

func (s *Service) handleScore(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	m := s.eng.Evaluate(in)

	s.rngMu.Lock()
	line := punchline.Generate(m, s.rng)
	insight := punchline.Insight(m, s.rng)
	s.rngMu.Unlock()

	resp := ScoreResponse{
		Metrics:   m,
		Punchline: line,
		Insight:   insight,
		Scenarios: whatif.Scenarios(s.eng, in),
	}

	s.mu.Lock()
	s.evaluations++
	s.lastScore = m.Score
	s.lastVerdict = string(m.Verdict)
	s.lastScoredAt = time.Now()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handlePunchline(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	m := s.eng.Evaluate(in)

	s.rngMu.Lock()
	line := punchline.Generate(m, s.rng)
	alternates := punchline.Alternates(m, s.rng, 3)
	s.rngMu.Unlock()

	writeJSON(w, http.StatusOK, PunchlineResponse{Punchline: line, Alternates: alternates})
}

func (s *Service) handleOffers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	name := q.Get("item")
	if name == "" {
		http.Error(w, "missing item parameter", http.StatusBadRequest)
		return
	}

	item := shop.Item{
		Name:     name,
		Brand:    q.Get("brand"),
		Currency: q.Get("currency"),
	}
	if v, err := strconv.ParseFloat(q.Get("low"), 64); err == nil {
		item.PriceLow = v
	}
	if v, err := strconv.ParseFloat(q.Get("high"), 64); err == nil {
		item.PriceHigh = v
	}

	offers := shop.MockOffers(item)
	writeJSON(w, http.StatusOK, OffersResponse{
		Item:     item,
		Estimate: item.EstimateLabel(),
		Offers:   offers,
	})
}

func decodeInput(w http.ResponseWriter, r *http.Request) (engine.PurchaseInput, bool) {
	var in engine.PurchaseInput
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return in, false
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return in, false
	}
	return in, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
