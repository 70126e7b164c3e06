package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/rs/zerolog"

	"github.com/ratechat/ratechat-server/internal/config"
	"github.com/ratechat/ratechat-server/internal/core"
)

// NewServer builds an HTTP server exposing the chat WebSocket and a health probe.
func NewServer(hub *core.Hub, router *core.Router, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	mux := stdhttp.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/ws", NewWSHandler(hub, router, logger))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	_, _ = fmt.Fprint(w, "ok")
}
