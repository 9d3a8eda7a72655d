package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNew_OwnRegistryPerInstance(t *testing.T) {
	a := New(nil, nil)
	b := New(nil, []float64{100, 10})

	a.Ledger.MonthlyStays.Set(3)
	b.Ledger.MonthlyStays.Set(7)

	require.Equal(t, 3.0, testutil.ToFloat64(a.Ledger.MonthlyStays))
	require.Equal(t, 7.0, testutil.ToFloat64(b.Ledger.MonthlyStays))
}

func TestDigestRunsByResult(t *testing.T) {
	m := New(nil, nil)
	m.Ledger.DigestRuns.WithLabelValues("ok").Inc()
	m.Ledger.DigestRuns.WithLabelValues("ok").Inc()
	m.Ledger.DigestRuns.WithLabelValues("error").Inc()

	require.Equal(t, 2.0, testutil.ToFloat64(m.Ledger.DigestRuns.WithLabelValues("ok")))
	require.Equal(t, 2, testutil.CollectAndCount(m.Ledger.DigestRuns))
}

func TestDurationMillis(t *testing.T) {
	require.Equal(t, 1500.0, DurationMillis(1500*time.Millisecond))
}
