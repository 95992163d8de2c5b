package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// SessionOptions tunes a websocket session.
type SessionOptions struct {
	WriteTimeout time.Duration
	PingInterval time.Duration
}

type wsChannel struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
}

// NewWebSocketChannel adapts conn to a Channel.
func NewWebSocketChannel(conn *websocket.Conn, writeTimeout time.Duration) Channel {
	return &wsChannel{conn: conn, writeTimeout: writeTimeout}
}

func (w *wsChannel) Send(ctx context.Context, payload []byte) error {
	if w.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.writeTimeout)
		defer cancel()
	}

	return w.conn.Write(ctx, websocket.MessageText, payload)
}

func (w *wsChannel) Close(reason string) error {
	return w.conn.Close(websocket.StatusNormalClosure, reason)
}

// Serve registers conn for parentID and blocks until the client goes away
// or ctx ends. Inbound frames are read and discarded to keep the
// connection alive.
func Serve(ctx context.Context, registry *Registry, parentID uuid.UUID, conn *websocket.Conn, opts SessionOptions, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handle := registry.Register(parentID, NewWebSocketChannel(conn, opts.WriteTimeout))
	defer func() {
		registry.Unregister(handle)
		_ = conn.Close(websocket.StatusNormalClosure, "session closed")
	}()

	logger.Info("Live session opened", slog.String("parent_id", parentID.String()))

	if opts.PingInterval > 0 {
		go heartbeat(ctx, cancel, conn, opts.PingInterval)
	}

	for {
		if _, _, err := conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				logger.Info("Live session closed", slog.String("parent_id", parentID.String()))
			} else {
				logger.Warn("Live session read failed",
					slog.String("parent_id", parentID.String()),
					slog.Any("error", err),
				)
			}

			return
		}
	}
}

func heartbeat(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pingCtx, pingCancel := context.WithTimeout(ctx, interval)
		err := conn.Ping(pingCtx)
		pingCancel()
		if err != nil {
			cancel()

			return
		}
	}
}
