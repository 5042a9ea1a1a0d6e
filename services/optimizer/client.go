// Package optimizer drives the external lineup solver: a JSON HTTP
// client for its /optimize endpoint and an orchestrator that decides
// when calling it is worthwhile.
package optimizer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"draftassist-backend/lib/telemetry"
	"draftassist-backend/services/roster"

	"github.com/go-resty/resty/v2"
)

// SolutionRow is one slotted player inside a solved lineup.
type SolutionRow struct {
	Slot       string  `json:"Slot"`
	Name       string  `json:"Name"`
	Pos        string  `json:"Pos"`
	Price      int     `json:"Price"`
	Projection float64 `json:"Projection"`
	// projected points per dollar spent
	PointsPerDollar float64 `json:"PP$"`
}

// Solution is one ranked lineup returned by the solver.
type Solution struct {
	Rank        int           `json:"rank"`
	TotalCost   int           `json:"total_cost"`
	TotalPoints float64       `json:"total_points"`
	Table       []SolutionRow `json:"table"`
}

type solveRequest struct {
	Players []roster.Player `json:"players"`
	Budget  int             `json:"budget"`
	K       int             `json:"k"`
}

type solveResponse struct {
	Solutions []Solution `json:"solutions"`
	Anchors   []string   `json:"anchors,omitempty"`
	Excludes  []string   `json:"excludes,omitempty"`
	Error     string     `json:"error,omitempty"`
}

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// base url of the solver, e.g. "http://localhost:5000"
	BaseUrl string
	// solver calls can take a while on big pools, default 30s
	Timeout time.Duration
}

func NewClient(options ClientOptions) *Client {
	if options.Timeout <= 0 {
		options.Timeout = time.Second * 30
	}
	client := resty.New().
		SetBaseURL(options.BaseUrl).
		SetTimeout(options.Timeout).
		SetHeader("Content-Type", "application/json")
	telemetry.InstrumentResty(client, "draftassist.services.optimizer.client")
	return &Client{http: client}
}

// Solve submits the player pool with its anchor/exclude flags and
// returns the solver's ranked lineups.
func (c *Client) Solve(ctx context.Context, players []roster.Player, budget, k int) ([]Solution, error) {
	var out solveResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(solveRequest{Players: players, Budget: budget, K: k}).
		SetResult(&out).
		SetError(&out).
		Post("/optimize")
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("solver: %s", out.Error)
		}
		return nil, fmt.Errorf("solver: unexpected status %d", res.StatusCode())
	}
	return out.Solutions, nil
}
