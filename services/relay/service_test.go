package relay

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"draftassist-backend/lib/events"

	"github.com/stretchr/testify/require"
)

func TestIngestForwardsToSink(t *testing.T) {
	var mu sync.Mutex
	var received []events.Event
	svc := NewService(func(ctx context.Context, ev events.Event) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, ev)
	})

	body, err := json.Marshal(events.BidUpdate("Jaylen Waddle", 17))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	svc.HandleIngest(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	require.Equal(t, events.TypeBidUpdate, received[0].Type)
	require.Equal(t, "Jaylen Waddle", received[0].PlayerName)
	require.Equal(t, 17, *received[0].Bid)
}

func TestIngestRejectsMalformedPayloads(t *testing.T) {
	svc := NewService(nil)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	svc.HandleIngest(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("{}"))
	rec = httptest.NewRecorder()
	svc.HandleIngest(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	rec = httptest.NewRecorder()
	svc.HandleIngest(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStreamBroadcastsIngestedEvents(t *testing.T) {
	svc := NewService(nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/events", svc.HandleIngest)
	mux.HandleFunc("/events/stream", svc.HandleStream)
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events/stream", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	lines := make(chan string, 8)
	go func() {
		scanner := bufio.NewScanner(res.Body)
		for scanner.Scan() {
			if line := scanner.Text(); strings.HasPrefix(line, "data: ") {
				lines <- strings.TrimPrefix(line, "data: ")
			}
		}
	}()

	// the subscriber registers before the handler writes headers, but
	// give the connection a moment to be established end to end
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return len(svc.subscribers) == 1
	}, time.Second, 5*time.Millisecond)

	body, err := json.Marshal(events.BidUpdate("Zay Flowers", 23))
	require.NoError(t, err)
	ingestRes, err := http.Post(server.URL+"/events", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	ingestRes.Body.Close()

	select {
	case raw := <-lines:
		var ev events.Event
		require.NoError(t, json.Unmarshal([]byte(raw), &ev))
		require.Equal(t, events.TypeBidUpdate, ev.Type)
		require.Equal(t, "Zay Flowers", ev.PlayerName)
		require.Equal(t, 23, *ev.Bid)
	case <-time.After(time.Second * 2):
		t.Fatal("timed out waiting for streamed event")
	}
}

func TestClientSendPostsEvent(t *testing.T) {
	var mu sync.Mutex
	var got events.Event
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	client.Send(context.Background(), events.BidUpdate("Jared Goff", 6))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, events.TypeBidUpdate, got.Type)
	require.Equal(t, "Jared Goff", got.PlayerName)
	require.Equal(t, 6, *got.Bid)
}
