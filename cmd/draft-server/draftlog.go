package main

import (
	"encoding/json"
	"net/http"

	"draftassist-backend/lib/sqliteutil"
	"draftassist-backend/services/draftlog"
	"draftassist-backend/services/draftlog/db"
)

type DraftlogConfig struct {
	Database string `json:"database"`
}

func InitDraftlog(mux *http.ServeMux, cfg DraftlogConfig) (draftlog.Store, error) {
	database, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
	if err != nil {
		return draftlog.Store{}, err
	}
	store := draftlog.NewStore(database)

	mux.HandleFunc("/log", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		sales, err := store.Sales(r.Context())
		if err != nil {
			http.Error(w, "failed to read draft log", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"sales": sales})
	})
	return store, nil
}
