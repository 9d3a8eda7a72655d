package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test de integración: requiere TEST_DB_DSN apuntando a una base descartable.
func openTestDB(t *testing.T) *LedgerRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return NewLedgerRepo(db)
}

func TestLedgerRepo_RoundTripAndCascade(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	ownerID := uuid.NewString()
	catID := uuid.NewString()
	stayID := uuid.NewString()
	markID := uuid.NewString()
	visitID := uuid.NewString()

	require.NoError(t, repo.UpsertOwner(ctx, ledger.Owner{ID: ownerID, Name: "Ana", DiscountPercent: 10, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.UpsertCat(ctx, ledger.Cat{ID: catID, Name: "Mimi", OwnerID: ownerID, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.SaveStay(ctx, ledger.Stay{
		ID: stayID, CatID: catID, Type: ledger.StaySingle,
		Start: "2024-05-01", End: "2024-05-03", UnitPrice: 35, Days: 3, Fee: 94.5,
		CreatedAt: now, UpdatedAt: now,
	}, &ledger.CareMark{ID: markID, CatID: catID, Date: "2024-05-02", Type: ledger.CareMedicine, CreatedAt: now, UpdatedAt: now}, ""))
	require.NoError(t, repo.UpsertVisit(ctx, ledger.Visit{
		ID: visitID, OwnerID: ownerID, Start: "2024-05-01", End: "2024-05-05",
		Frequency: schedule.FrequencyAlternate, UnitPrice: 20, Count: 3, Fee: 60,
		CreatedAt: now, UpdatedAt: now,
	}))

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	st, ok := snap.Stay(stayID)
	require.True(t, ok)
	require.Equal(t, "2024-05-01", st.Start)
	require.Equal(t, "2024-05-03", st.End)
	m, ok := snap.CareMark(markID)
	require.True(t, ok)
	require.Equal(t, "2024-05-02", m.Date)

	plan := ledger.PlanCascade(snap, ledger.KindOwner, ownerID)
	require.NoError(t, repo.Delete(ctx, plan))

	snap, err = repo.Snapshot(ctx)
	require.NoError(t, err)
	_, ok = snap.Cat(catID)
	require.False(t, ok)
	_, ok = snap.Stay(stayID)
	require.False(t, ok)
	_, ok = snap.Visit(visitID)
	require.True(t, ok, "visits are never cascaded")

	require.NoError(t, repo.Delete(ctx, ledger.PlanCascade(snap, ledger.KindVisit, visitID)))
}

func TestLedgerRepo_RejectsBadDateKey(t *testing.T) {
	repo := NewLedgerRepo(nil)
	err := repo.SaveStay(context.Background(), ledger.Stay{ID: "s1", Start: "nope", End: "2024-05-01"}, nil, "")
	require.ErrorIs(t, err, ErrInvalidDate)

	err = repo.SaveStay(context.Background(),
		ledger.Stay{ID: "s1", Start: "2024-05-01", End: "2024-05-01"},
		&ledger.CareMark{ID: "m1", Date: "later"}, "")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestLedgerRepo_SaveStayRemovesCareMark(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	stayID := uuid.NewString()
	markID := uuid.NewString()
	stay := ledger.Stay{ID: stayID, CatID: "c1", Type: ledger.StayGroup, Start: "2024-06-01", End: "2024-06-02", Days: 2, CreatedAt: now, UpdatedAt: now}

	require.NoError(t, repo.SaveStay(ctx, stay, &ledger.CareMark{ID: markID, CatID: "c1", Date: "2024-06-01", Type: ledger.CareGrooming, CreatedAt: now, UpdatedAt: now}, ""))
	require.NoError(t, repo.SaveStay(ctx, stay, nil, markID))

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	_, ok := snap.Stay(stayID)
	require.True(t, ok)
	_, ok = snap.CareMark(markID)
	require.False(t, ok)

	require.NoError(t, repo.Delete(ctx, ledger.PlanCascade(snap, ledger.KindStay, stayID)))
}
