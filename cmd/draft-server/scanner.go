package main

import (
	"context"
	"log/slog"
	"time"

	"draftassist-backend/services/relay"
	"draftassist-backend/services/scanner"
)

type ScannerConfig struct {
	// snapshot endpoint serving the rendered auction page, scanning is
	// disabled when unset
	SnapshotUrl      string `json:"snapshot_url"`
	BidIntervalMs    int    `json:"bid_interval_ms"`
	RosterIntervalMs int    `json:"roster_interval_ms"`
	PriceCeiling     int    `json:"price_ceiling"`
}

func InitScanner(ctx context.Context, cfg ScannerConfig, relayService *relay.Service) error {
	if cfg.SnapshotUrl == "" {
		slog.InfoContext(ctx, "no snapshot url configured, scanner disabled")
		return nil
	}

	source := scanner.NewSnapshotClient(scanner.SnapshotClientOptions{
		BaseUrl: cfg.SnapshotUrl,
	})
	s := scanner.New(scanner.Options{
		Source:         source,
		Transport:      relay.LocalTransport{Service: relayService},
		BidInterval:    time.Duration(cfg.BidIntervalMs) * time.Millisecond,
		RosterInterval: time.Duration(cfg.RosterIntervalMs) * time.Millisecond,
		PriceCeiling:   cfg.PriceCeiling,
	})
	if err := s.Start(ctx); err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}
