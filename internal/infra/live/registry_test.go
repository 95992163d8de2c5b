package live

import (
	"context"
	"sync"
	"testing"

	"guardian/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	mu      sync.Mutex
	sent    [][]byte
	closed  []string
	sendErr error
}

func (f *fakeChannel) Send(_ context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, payload)

	return nil
}

func (f *fakeChannel) Close(reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = append(f.closed, reason)

	return nil
}

func (f *fakeChannel) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([][]byte(nil), f.sent...)
}

func (f *fakeChannel) closeReasons() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.closed...)
}

func TestRegistry_TrySendWithoutChannel(t *testing.T) {
	registry := NewRegistry(nil)

	err := registry.TrySend(context.Background(), uuid.New(), []byte("x"))

	assert.ErrorIs(t, err, ErrNoChannel)
}

func TestRegistry_RegisterAndSend(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()
	ch := &fakeChannel{}

	registry.Register(parentID, ch)

	require.NoError(t, registry.TrySend(context.Background(), parentID, []byte("hello")))
	assert.Equal(t, [][]byte{[]byte("hello")}, ch.messages())
	assert.True(t, registry.Connected(parentID))
}

func TestRegistry_LastConnectWins(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()
	first := &fakeChannel{}
	second := &fakeChannel{}

	firstHandle := registry.Register(parentID, first)
	registry.Register(parentID, second)

	require.NoError(t, registry.TrySend(context.Background(), parentID, []byte("msg")))
	assert.Empty(t, first.messages())
	assert.Len(t, second.messages(), 1)
	assert.Equal(t, []string{replacedReason}, first.closeReasons())

	// The stale session disconnecting must not evict the newer one.
	assert.False(t, registry.Unregister(firstHandle))
	assert.True(t, registry.Connected(parentID))
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()

	handle := registry.Register(parentID, &fakeChannel{})

	assert.True(t, registry.Unregister(handle))
	assert.False(t, registry.Unregister(handle))
	assert.False(t, registry.Unregister(nil))
	assert.ErrorIs(t, registry.TrySend(context.Background(), parentID, []byte("x")), ErrNoChannel)
}

func TestRegistry_SendFailureIsNotRetried(t *testing.T) {
	registry := NewRegistry(nil)
	parentID := uuid.New()
	ch := &fakeChannel{sendErr: errors.New("broken pipe")}

	registry.Register(parentID, ch)
	err := registry.TrySend(context.Background(), parentID, []byte("x"))

	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestRegistry_TracksSessionGauge(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	registry := NewRegistry(m)

	a := registry.Register(uuid.New(), &fakeChannel{})
	registry.Register(uuid.New(), &fakeChannel{})
	assert.InDelta(t, 2, testutil.ToFloat64(m.LiveSessions), 0)

	registry.Unregister(a)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LiveSessions), 0)

	registry.CloseAll("shutdown")
	assert.InDelta(t, 0, testutil.ToFloat64(m.LiveSessions), 0)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry(nil)
	parentIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			parentID := parentIDs[i%len(parentIDs)]
			handle := registry.Register(parentID, &fakeChannel{})
			_ = registry.TrySend(context.Background(), parentID, []byte("x"))
			registry.Unregister(handle)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, registry.Len(), len(parentIDs))
}
