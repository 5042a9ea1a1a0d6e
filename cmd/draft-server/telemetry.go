package main

import (
	"context"
	"log/slog"

	"draftassist-backend/lib/telemetry"
	"draftassist-backend/lib/util/serviceutil"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.SetupFromEnv(ctx, "draft-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		t.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)
}
