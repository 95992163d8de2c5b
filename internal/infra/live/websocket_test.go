package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServer(t *testing.T, registry *Registry, parentID uuid.UUID) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		Serve(r.Context(), registry, parentID, conn, SessionOptions{
			WriteTimeout: time.Second,
			PingInterval: time.Minute,
		}, newDiscardLogger())
	}))
	t.Cleanup(srv.Close)

	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	return conn
}

func TestServe_DeliversPushesAndUnregistersOnClose(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()
	srv := newSessionServer(t, registry, parentID)

	client := dial(t, srv)
	require.Eventually(t, func() bool { return registry.Connected(parentID) }, 5*time.Second, 10*time.Millisecond)

	// Client keepalive text is accepted and ignored.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Write(ctx, websocket.MessageText, []byte("ping")))

	require.NoError(t, registry.TrySend(ctx, parentID, []byte(`{"type":"geofence_alert"}`)))

	typ, data, err := client.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)
	assert.JSONEq(t, `{"type":"geofence_alert"}`, string(data))

	require.NoError(t, client.Close(websocket.StatusNormalClosure, "bye"))
	assert.Eventually(t, func() bool { return !registry.Connected(parentID) }, 5*time.Second, 10*time.Millisecond)
}

func TestServe_SecondSessionReplacesFirst(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()
	srv := newSessionServer(t, registry, parentID)

	first := dial(t, srv)
	require.Eventually(t, func() bool { return registry.Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	second := dial(t, srv)
	defer second.Close(websocket.StatusNormalClosure, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The replaced connection is closed by the server.
	_, _, err := first.Read(ctx)
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return registry.TrySend(ctx, parentID, []byte(`"hi"`)) == nil
	}, 5*time.Second, 10*time.Millisecond)

	_, data, err := second.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `"hi"`, string(data))
	assert.Equal(t, 1, registry.Len())
}
