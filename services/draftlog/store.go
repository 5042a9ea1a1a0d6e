// Package draftlog journals completed sales so the prices paid during a
// draft survive the session.
package draftlog

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"draftassist-backend/lib/events"
	"draftassist-backend/services/draftlog/db"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

// Sale is one journaled player sale.
type Sale struct {
	Time   time.Time `json:"time"`
	Player string    `json:"player"`
	// nil when the sale price never appeared on the page
	Price  *int   `json:"price,omitempty"`
	Winner string `json:"winner,omitempty"`
}

// Record journals sale events and ignores everything else. Failures are
// logged, not surfaced: a gap in the journal must never stall the draft.
func (s Store) Record(ctx context.Context, ev events.Event) {
	if ev.Type != events.TypePlayerSold {
		return
	}

	price := sql.NullInt64{}
	if ev.Bid != nil {
		price = sql.NullInt64{Int64: int64(*ev.Bid), Valid: true}
	}
	err := s.qry.CreateSale(ctx, db.CreateSaleParams{
		Time:   time.Now().Unix(),
		Player: ev.PlayerName,
		Price:  price,
		Winner: ev.Winner,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to journal sale", "player", ev.PlayerName, "err", err)
	}
}

// Sales returns every journaled sale in draft order.
func (s Store) Sales(ctx context.Context) ([]Sale, error) {
	rows, err := s.qry.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Sale, 0, len(rows))
	for _, r := range rows {
		sale := Sale{
			Time:   time.Unix(r.Time, 0),
			Player: r.Player,
			Winner: r.Winner,
		}
		if r.Price.Valid {
			price := int(r.Price.Int64)
			sale.Price = &price
		}
		out = append(out, sale)
	}
	return out, nil
}
