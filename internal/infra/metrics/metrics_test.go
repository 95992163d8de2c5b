package metrics

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveIngest(time.Now())
	m.IncAlertRecorded("geofence_enter")
	m.IncAlertRecorded("geofence_enter")
	m.IncAlertRecordError()
	m.IncLivePush(PushNoChannel)
	m.SetLiveSessions(3)
	m.IncEventPublished(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SamplesIngested))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AlertsRecorded.WithLabelValues("geofence_enter")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AlertRecordErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LivePushes.WithLabelValues(PushNoChannel)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LiveSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("error")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveIngest(time.Now())
		m.IncAlertRecorded("geofence_enter")
		m.IncAlertRecordError()
		m.IncLivePush(PushSent)
		m.SetLiveSessions(1)
		m.IncEventPublished(true)
		_ = m.WatchDB(nil, "guardian")
	})
}

type refusingDriver struct{}

func (refusingDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("no connections in tests")
}

func TestMetrics_WatchDB(t *testing.T) {
	sql.Register("metrics-refusing", refusingDriver{})
	db, err := sql.Open("metrics-refusing", "")
	require.NoError(t, err)
	defer db.Close()

	reg := prometheus.NewRegistry()
	m := New(reg)

	require.NoError(t, m.WatchDB(db, "guardian"))
	assert.Error(t, m.WatchDB(db, "guardian"), "second registration collides")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "go_sql_max_open_connections")
}
