package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMutation(t *testing.T) {
	m := New()
	m.RecordMutation("budgets", "create", 1)
	m.RecordMutation("notifications", "update", 3)
	m.RecordMutation("notifications", "update", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeMutations.WithLabelValues("budgets", "create")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.storeMutations.WithLabelValues("notifications", "update")))
}

func TestObserveSnapshotWrite(t *testing.T) {
	m := New()
	m.ObserveSnapshotWrite(nil, 5*time.Millisecond)
	m.ObserveSnapshotWrite(errors.New("disk full"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotWrites.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotWrites.WithLabelValues("error")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordPriceUpdates(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "moap_price_sync_updates_total 2"))
}
