package http

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/ratechat/ratechat-server/internal/config"
	"github.com/ratechat/ratechat-server/internal/core"
	"github.com/ratechat/ratechat-server/internal/exchange"
	"github.com/ratechat/ratechat-server/internal/log"
	"github.com/ratechat/ratechat-server/internal/store/filelog"
)

func startTestServer(t *testing.T, ratesURL string) *httptest.Server {
	t.Helper()

	logger := log.Nop()

	audit, err := filelog.New(filepath.Join(t.TempDir(), "info.txt"))
	if err != nil {
		t.Fatalf("init audit store: %v", err)
	}
	t.Cleanup(func() { _ = audit.Close() })

	rates := exchange.NewClient(ratesURL, time.Second, logger)
	router := core.NewRouter(rates, exchange.NewDateValidator(10), audit, logger)
	hub := core.NewHub(logger)

	server := NewServer(hub, router, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func startRatesStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func readText(t *testing.T, ctx context.Context, conn *websocket.Conn) string {
	t.Helper()

	typ, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if typ != websocket.MessageText {
		t.Fatalf("unexpected message type: %v", typ)
	}
	return string(data)
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t, "http://127.0.0.1:0")

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestChatBroadcastToAllClients(t *testing.T) {
	ts := startTestServer(t, "http://127.0.0.1:0")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dial(t, ctx, ts)
	connB := dial(t, ctx, ts)

	if err := connA.Write(ctx, websocket.MessageText, []byte("hi there")); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Both peers receive the message, sender included, prefixed with the
	// sender's assigned display name.
	gotB := readText(t, ctx, connB)
	gotA := readText(t, ctx, connA)

	if !strings.HasSuffix(gotB, ": hi there") {
		t.Fatalf("unexpected broadcast: %q", gotB)
	}
	if gotA != gotB {
		t.Fatalf("sender saw %q, peer saw %q", gotA, gotB)
	}
}

func TestExchangeCommandBroadcastsRate(t *testing.T) {
	rates := startRatesStub(t, 200,
		`{"exchangeRate":[{"currency":"USD","purchaseRateNB":41.0,"saleRateNB":41.6}]}`)
	ts := startTestServer(t, rates.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dial(t, ctx, ts)
	connB := dial(t, ctx, ts)

	cmd := "exchange USD " + time.Now().Format("2.1.2006")
	if err := connA.Write(ctx, websocket.MessageText, []byte(cmd)); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := "Currency: USD, buy: 41.0, sale: 41.6"
	if got := readText(t, ctx, connB); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFailedExchangeKeepsSessionAlive(t *testing.T) {
	rates := startRatesStub(t, 500, "")
	ts := startTestServer(t, rates.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dial(t, ctx, ts)
	connB := dial(t, ctx, ts)

	// The failed lookup is dropped silently; the next message still flows.
	cmd := "exchange USD " + time.Now().Format("2.1.2006")
	if err := connA.Write(ctx, websocket.MessageText, []byte(cmd)); err != nil {
		t.Fatalf("write command: %v", err)
	}
	if err := connA.Write(ctx, websocket.MessageText, []byte("still here")); err != nil {
		t.Fatalf("write chat: %v", err)
	}

	if got := readText(t, ctx, connB); !strings.HasSuffix(got, ": still here") {
		t.Fatalf("expected only the chat message, got %q", got)
	}
}
