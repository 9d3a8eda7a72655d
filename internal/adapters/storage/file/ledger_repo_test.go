package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/platform/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.json")

	repo, err := Open(path, logger.Nop())
	require.NoError(t, err)

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.Owners)
	require.NotNil(t, snap.Owners)
}

func TestOpen_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.json")

	repo, err := Open(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, repo.UpsertOwner(ctx, ledger.Owner{ID: "o1", Name: "Ana", DiscountPercent: 10}))
	require.NoError(t, repo.UpsertCareMark(ctx, ledger.CareMark{ID: "m1", CatID: "c1", Date: "2024-05-02", Type: ledger.CareMedicine}))

	reopened, err := Open(path, logger.Nop())
	require.NoError(t, err)
	snap, err := reopened.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Owners, 1)
	require.Equal(t, 10.0, snap.Owners[0].DiscountPercent)
	require.Len(t, snap.CareMarks, 1)
	require.Equal(t, ledger.CareMedicine, snap.CareMarks[0].Type)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOpen_ReadsLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	doc := `{"owners":[{"id":"o1","name":"Ana","contact":"","discountPercent":10,"note":""}],
	"cats":[{"id":"c1","name":"Mimi","ownerId":"o1","note":""}],
	"stays":[{"id":"s1","catId":"c1","type":"single","start":"2024-05-01","end":"2024-05-03","unitPrice":35,"days":3,"fee":94.5}],
	"visits":[],"careMarks":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	repo, err := Open(path, logger.Nop())
	require.NoError(t, err)
	snap, _ := repo.Snapshot(context.Background())
	require.Len(t, snap.Stays, 1)
	require.Equal(t, 94.5, snap.Stays[0].Fee)
	require.Equal(t, 10.0, snap.DiscountForCat("c1"))
}

func TestOpen_CorruptDocumentWarnsAndResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"owners": [`), 0o600))

	core, logs := observer.New(zapcore.WarnLevel)
	repo, err := Open(path, logger.FromZap(zap.New(core)))
	require.NoError(t, err)

	snap, _ := repo.Snapshot(context.Background())
	require.Empty(t, snap.Owners)
	require.Equal(t, 1, logs.FilterMessage("stored ledger is corrupt, starting empty").Len())

	// la próxima escritura reemplaza el archivo roto
	require.NoError(t, repo.UpsertCat(context.Background(), ledger.Cat{ID: "c1", Name: "Mimi"}))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Cats, 1)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ", nil)
	require.Error(t, err)
}
