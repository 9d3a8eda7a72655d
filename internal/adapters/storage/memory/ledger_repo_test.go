package memory

import (
	"context"
	"errors"
	"testing"

	"pet-boarding-ledger/internal/domain/ledger"

	"github.com/stretchr/testify/require"
)

func TestLedgerRepo_UpsertKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepo()

	require.NoError(t, r.UpsertOwner(ctx, ledger.Owner{ID: "o1", Name: "Ana"}))
	require.NoError(t, r.UpsertOwner(ctx, ledger.Owner{ID: "o2", Name: "Ben"}))
	require.NoError(t, r.UpsertOwner(ctx, ledger.Owner{ID: "o1", Name: "Ana Li"}))

	snap, err := r.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Owners, 2)
	require.Equal(t, "Ana Li", snap.Owners[0].Name)
	require.Equal(t, "o2", snap.Owners[1].ID)
}

func TestLedgerRepo_RejectsEmptyID(t *testing.T) {
	r := NewLedgerRepo()
	require.ErrorIs(t, r.UpsertCat(context.Background(), ledger.Cat{Name: "Mimi"}), ErrIDRequired)
}

func TestLedgerRepo_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepo()
	require.NoError(t, r.UpsertCat(ctx, ledger.Cat{ID: "c1", Name: "Mimi"}))

	snap, _ := r.Snapshot(ctx)
	snap.Cats[0].Name = "changed"

	again, _ := r.Snapshot(ctx)
	require.Equal(t, "Mimi", again.Cats[0].Name)
}

func TestLedgerRepo_DeleteAppliesPlan(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepo()
	require.NoError(t, r.UpsertCat(ctx, ledger.Cat{ID: "c1"}))
	require.NoError(t, r.SaveStay(ctx, ledger.Stay{ID: "s1", CatID: "c1"}, nil, ""))
	require.NoError(t, r.UpsertVisit(ctx, ledger.Visit{ID: "v1"}))

	require.NoError(t, r.Delete(ctx, ledger.DeletePlan{Cats: []string{"c1"}, Stays: []string{"s1"}}))

	snap, _ := r.Snapshot(ctx)
	require.Empty(t, snap.Cats)
	require.Empty(t, snap.Stays)
	require.Len(t, snap.Visits, 1)
}

func TestLedgerRepo_FailedPersistLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	fail := false
	r := NewLedgerRepoFrom(ledger.Snapshot{}, func(ledger.Snapshot) error {
		if fail {
			return errors.New("disk full")
		}
		return nil
	})

	require.NoError(t, r.UpsertOwner(ctx, ledger.Owner{ID: "o1", Name: "Ana"}))
	fail = true
	require.Error(t, r.UpsertOwner(ctx, ledger.Owner{ID: "o2", Name: "Ben"}))

	snap, _ := r.Snapshot(ctx)
	require.Len(t, snap.Owners, 1)
	require.NotNil(t, snap.CareMarks)
}

func TestLedgerRepo_SaveStayWritesCareChangeTogether(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepo()

	require.NoError(t, r.SaveStay(ctx, ledger.Stay{ID: "s1", CatID: "c1"}, &ledger.CareMark{ID: "m1", CatID: "c1", Date: "2024-05-01"}, ""))
	snap, _ := r.Snapshot(ctx)
	require.Len(t, snap.Stays, 1)
	require.Len(t, snap.CareMarks, 1)

	require.NoError(t, r.SaveStay(ctx, ledger.Stay{ID: "s1", CatID: "c1", Days: 2}, nil, "m1"))
	snap, _ = r.Snapshot(ctx)
	require.Equal(t, 2, snap.Stays[0].Days)
	require.Empty(t, snap.CareMarks)

	require.ErrorIs(t, r.SaveStay(ctx, ledger.Stay{ID: "s2"}, &ledger.CareMark{}, ""), ErrIDRequired)
	snap, _ = r.Snapshot(ctx)
	require.Len(t, snap.Stays, 1)
}

func TestLedgerRepo_SaveStayFailedPersistWritesNothing(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepoFrom(ledger.Snapshot{}, func(ledger.Snapshot) error {
		return errors.New("disk full")
	})

	err := r.SaveStay(ctx, ledger.Stay{ID: "s1", CatID: "c1"}, &ledger.CareMark{ID: "m1", CatID: "c1", Date: "2024-05-01"}, "")
	require.Error(t, err)

	snap, _ := r.Snapshot(ctx)
	require.Empty(t, snap.Stays)
	require.Empty(t, snap.CareMarks)
}
