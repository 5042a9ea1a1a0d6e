package optimizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClientSolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/optimize", r.URL.Path)

		var req solveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Players, 2)
		require.Equal(t, 180, req.Budget)
		require.Equal(t, 5, req.K)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(solveResponse{
			Solutions: []Solution{{
				Rank:        1,
				TotalCost:   178,
				TotalPoints: 1502.3,
				Table: []SolutionRow{{
					Slot: "QB", Name: "Jared Goff", Pos: "QB",
					Price: 6, Projection: 290, PointsPerDollar: 48.33,
				}},
			}},
		})
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	sols, err := client.Solve(context.Background(), testPool(), 180, 5)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]Solution{{
		Rank:        1,
		TotalCost:   178,
		TotalPoints: 1502.3,
		Table: []SolutionRow{{
			Slot: "QB", Name: "Jared Goff", Pos: "QB",
			Price: 6, Projection: 290, PointsPerDollar: 48.33,
		}},
	}}, sols))
}

func TestClientSolveSurfacesSolverError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(solveResponse{Error: "anchors make the lineup infeasible"})
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	_, err := client.Solve(context.Background(), testPool(), 180, 5)
	require.ErrorContains(t, err, "anchors make the lineup infeasible")
}

func TestClientSolveHonorsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	_, err := client.Solve(ctx, testPool(), 180, 5)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}
