package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/ratechat/ratechat-server/internal/core"
	"github.com/ratechat/ratechat-server/internal/utils"
)

// WSHandler upgrades HTTP connections and runs one chat session per
// connection: register, read messages until disconnect, route each through
// the message router, broadcast the result, unregister on every exit path.
type WSHandler struct {
	hub    *core.Hub
	router *core.Router
	log    *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, router *core.Router, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: hub, router: router, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	client := core.NewClient(utils.NewID(), utils.RandomDisplayName(), r.RemoteAddr)
	if err := h.hub.Register(client); err != nil {
		h.log.Error().Err(err).Str("client_id", client.ID).Msg("register client")
		return
	}
	defer h.hub.Unregister(client)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

// readLoop processes inbound frames in arrival order, preserving per-client
// message ordering. A failed command pipeline drops only that message; the
// loop keeps reading.
func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		outbound, ok := h.router.Route(ctx, client.Name, string(data))
		if !ok {
			continue
		}
		h.hub.Broadcast(outbound)
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		select {
		case text := <-client.Out:
			if err := conn.Write(ctx, websocket.MessageText, []byte(text)); err != nil {
				h.log.Error().Err(err).Str("client_id", client.ID).Msg("write ws message")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
