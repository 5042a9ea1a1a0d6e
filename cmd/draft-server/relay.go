package main

import (
	"context"
	"net/http"

	"draftassist-backend/lib/events"
	"draftassist-backend/services/draftlog"
	"draftassist-backend/services/relay"
	"draftassist-backend/services/roster"
)

func InitRelay(mux *http.ServeMux, rosterService *roster.Service, logStore draftlog.Store) *relay.Service {
	svc := relay.NewService(func(ctx context.Context, ev events.Event) {
		rosterService.Apply(ctx, ev)
		logStore.Record(ctx, ev)
	})
	mux.HandleFunc("/events", svc.HandleIngest)
	mux.HandleFunc("/events/stream", svc.HandleStream)
	return svc
}
