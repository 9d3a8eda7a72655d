package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/platform/logger"
	"pet-boarding-ledger/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSource struct {
	snap ledger.Snapshot
	err  error
}

func (f fakeSource) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	return f.snap, f.err
}

func TestDigest_UpdatesGaugesAndLogs(t *testing.T) {
	m := metrics.New(nil, nil)
	core, logs := observer.New(zapcore.InfoLevel)

	src := fakeSource{snap: ledger.Snapshot{
		Stays:  []ledger.Stay{{ID: "s1", Start: "2024-05-01", Fee: 94.5}, {ID: "s2", Start: "2024-04-30", Fee: 10}},
		Visits: []ledger.Visit{{ID: "v1", Start: "2024-05-03", Fee: 60}},
	}}
	s := New(src, Options{
		Spec:     "0 8 * * *",
		Location: time.UTC,
		Money:    pricing.NewFormatter("A$"),
		Metrics:  m.Ledger,
		Logger:   logger.FromZap(zap.New(core)),
	})
	s.now = func() time.Time { return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC) }

	sum, err := s.Digest(context.Background())
	require.NoError(t, err)
	require.Equal(t, 154.5, sum.Revenue)
	require.Equal(t, 1, sum.CatsCount)
	require.Equal(t, 1, sum.VisitsCount)

	require.Equal(t, 154.5, testutil.ToFloat64(m.Ledger.MonthlyRevenue))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Ledger.DigestRuns.WithLabelValues("ok")))

	entries := logs.FilterMessage("monthly digest").All()
	require.Len(t, entries, 1)
	require.Equal(t, "A$154.5", entries[0].ContextMap()["revenue"])
	require.Equal(t, "2024 年 5 月", entries[0].ContextMap()["month"])
}

func TestDigest_StoreError(t *testing.T) {
	m := metrics.New(nil, nil)
	s := New(fakeSource{err: errors.New("down")}, Options{Spec: "@daily", Metrics: m.Ledger})

	_, err := s.Digest(context.Background())
	require.Error(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(m.Ledger.DigestRuns.WithLabelValues("error")))
}

func TestStart_RejectsBadSpec(t *testing.T) {
	s := New(fakeSource{}, Options{Spec: "not a cron"})
	require.Error(t, s.Start())
}

func TestStartStop(t *testing.T) {
	m := metrics.New(nil, nil)
	s := New(fakeSource{}, Options{Spec: "0 8 * * *", Metrics: m.Ledger})
	require.NoError(t, s.Start())
	s.Stop()
	require.Equal(t, 1.0, testutil.ToFloat64(m.Ledger.DigestRuns.WithLabelValues("ok")), "runs once on start")
}
