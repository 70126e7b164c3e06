// Command ws_smoke sends one chat message and verifies the broadcast comes
// back with a display name prefix. Exits non-zero on any mismatch.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/coder/websocket"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	if err := conn.Write(ctx, websocket.MessageText, []byte(*text)); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	_, data, err := conn.Read(ctx)
	if err != nil {
		return fmt.Errorf("read broadcast: %w", err)
	}

	got := string(data)
	if !strings.HasSuffix(got, ": "+*text) {
		return fmt.Errorf("unexpected broadcast %q, want suffix %q", got, ": "+*text)
	}

	fmt.Printf("ok: %s\n", got)
	return nil
}
