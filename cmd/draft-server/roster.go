package main

import (
	"context"
	"encoding/json"
	"net/http"

	"draftassist-backend/lib/sqliteutil"
	"draftassist-backend/services/roster"
	"draftassist-backend/services/roster/db"
)

type RosterConfig struct {
	Database     string `json:"database"`
	PriceCeiling int    `json:"price_ceiling"`
}

func InitRoster(ctx context.Context, mux *http.ServeMux, cfg RosterConfig) (*roster.Service, error) {
	database, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
	if err != nil {
		return nil, err
	}
	svc, err := roster.NewService(ctx, database, roster.Options{
		PriceCeiling: cfg.PriceCeiling,
	})
	if err != nil {
		return nil, err
	}

	mux.HandleFunc("/players", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"players": svc.Players()})
		case http.MethodPost:
			var body struct {
				Players []roster.Player `json:"players"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid players payload", http.StatusBadRequest)
				return
			}
			svc.Replace(body.Players)
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	return svc, nil
}
