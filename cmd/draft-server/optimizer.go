package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"draftassist-backend/services/optimizer"
	"draftassist-backend/services/roster"
)

type OptimizerConfig struct {
	SolverUrl    string `json:"solver_url"`
	Budget       int    `json:"budget"`
	K            int    `json:"k"`
	QuiescenceMs int    `json:"quiescence_ms"`
}

func InitOptimizer(mux *http.ServeMux, cfg OptimizerConfig, rosterService *roster.Service) *optimizer.Orchestrator {
	client := optimizer.NewClient(optimizer.ClientOptions{BaseUrl: cfg.SolverUrl})
	orch := optimizer.NewOrchestrator(optimizer.OrchestratorOptions{
		Solver:     client,
		Players:    rosterService.Players,
		Quiescence: time.Duration(cfg.QuiescenceMs) * time.Millisecond,
		Budget:     cfg.Budget,
		K:          cfg.K,
		OnError: func(err error) {
			slog.Warn("lineup solve failed", "err", err)
		},
	})
	rosterService.OnChange(orch.Poke)

	mux.HandleFunc("/solutions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"solutions": orch.Solutions(),
			"budget":    orch.Budget(),
			"k":         orch.K(),
		})
	})
	mux.HandleFunc("/optimize", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			Budget int `json:"budget"`
			K      int `json:"k"`
		}
		// body is optional, a bare POST reruns with current settings
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			if body.Budget > 0 {
				orch.SetBudget(body.Budget)
			}
			if body.K > 0 {
				orch.SetK(body.K)
			}
		}
		orch.RunNow(r.Context())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"solutions": orch.Solutions()})
	})
	return orch
}
