package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pet-boarding-ledger/internal/adapters/storage/memory"
	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/platform/logger"
)

// Open carga el documento JSON {owners,cats,stays,visits,careMarks} de path
// y devuelve un repo que lo reescribe completo en cada cambio.
//
// Archivo inexistente: arranca vacío. Archivo corrupto: se loguea un warning
// y se arranca vacío; la próxima escritura lo reemplaza.
func Open(path string, log logger.Logger) (*memory.LedgerRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("data file path is empty")
	}
	if log == nil {
		log = logger.Nop()
	}

	snap, err := Load(path)
	if err != nil {
		var syntax *json.SyntaxError
		var typ *json.UnmarshalTypeError
		if !errors.As(err, &syntax) && !errors.As(err, &typ) && !errors.Is(err, errEmptyDocument) {
			return nil, err
		}
		log.Warn("stored ledger is corrupt, starting empty", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		snap = ledger.Snapshot{}
	}

	return memory.NewLedgerRepoFrom(snap, func(next ledger.Snapshot) error {
		return Save(path, next)
	}), nil
}

var errEmptyDocument = errors.New("empty ledger document")

// Load lee el documento. Colecciones ausentes quedan vacías.
func Load(path string) (ledger.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ledger.Snapshot{}, nil
		}
		return ledger.Snapshot{}, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ledger.Snapshot{}, errEmptyDocument
	}

	var snap ledger.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return ledger.Snapshot{}, err
	}
	return memory.Clone(snap), nil
}

// Save escribe el documento de forma atómica: archivo temporal en el mismo
// directorio y rename encima del destino.
func Save(path string, snap ledger.Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(memory.Clone(snap), "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
