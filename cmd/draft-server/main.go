package main

import (
	"flag"
	"net/http"

	"draftassist-backend/lib/configutil"
	"draftassist-backend/lib/util/serviceutil"
)

type Config struct {
	Scanner   ScannerConfig   `json:"scanner"`
	Roster    RosterConfig    `json:"roster"`
	Optimizer OptimizerConfig `json:"optimizer"`
	Draftlog  DraftlogConfig  `json:"draftlog"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	mux := http.NewServeMux()

	rosterService, err := InitRoster(ctx, mux, cfg.Roster)
	if err != nil {
		serviceutil.Fatal("init roster", err)
	}
	logStore, err := InitDraftlog(mux, cfg.Draftlog)
	if err != nil {
		serviceutil.Fatal("init draftlog", err)
	}
	InitOptimizer(mux, cfg.Optimizer, rosterService)
	relayService := InitRelay(mux, rosterService, logStore)
	err = InitScanner(ctx, cfg.Scanner, relayService)
	if err != nil {
		serviceutil.Fatal("init scanner", err)
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go serviceutil.StartHttpServer(8000, mux)
	<-ctx.Done()
}
