package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-boarding-ledger/internal/domain/ledger"
)

var (
	ErrIDRequired = errors.New("id required")
)

// LedgerRepo guarda las cinco colecciones en memoria, en orden de alta.
// Upsert reemplaza en su lugar si el id ya existe.
type LedgerRepo struct {
	mu   sync.RWMutex
	snap ledger.Snapshot

	// onChange se llama con el snapshot nuevo, con el lock tomado.
	// Lo usa el file store para persistir.
	onChange func(ledger.Snapshot) error
}

func NewLedgerRepo() *LedgerRepo {
	return &LedgerRepo{snap: emptySnapshot()}
}

// NewLedgerRepoFrom arranca con datos ya cargados (p.ej. desde disco).
func NewLedgerRepoFrom(snap ledger.Snapshot, onChange func(ledger.Snapshot) error) *LedgerRepo {
	return &LedgerRepo{snap: Clone(snap), onChange: onChange}
}

func (r *LedgerRepo) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Clone(r.snap), nil
}

func (r *LedgerRepo) UpsertOwner(ctx context.Context, o ledger.Owner) error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrIDRequired
	}
	return r.mutate(func(s *ledger.Snapshot) {
		s.Owners = upsert(s.Owners, o, func(x ledger.Owner) string { return x.ID })
	})
}

func (r *LedgerRepo) UpsertCat(ctx context.Context, c ledger.Cat) error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrIDRequired
	}
	return r.mutate(func(s *ledger.Snapshot) {
		s.Cats = upsert(s.Cats, c, func(x ledger.Cat) string { return x.ID })
	})
}

// SaveStay aplica la estadía y su marca en un solo mutate.
func (r *LedgerRepo) SaveStay(ctx context.Context, st ledger.Stay, care *ledger.CareMark, removeCareID string) error {
	if strings.TrimSpace(st.ID) == "" {
		return ErrIDRequired
	}
	if care != nil && strings.TrimSpace(care.ID) == "" {
		return ErrIDRequired
	}
	return r.mutate(func(s *ledger.Snapshot) {
		s.Stays = upsert(s.Stays, st, func(x ledger.Stay) string { return x.ID })
		if care != nil {
			s.CareMarks = upsert(s.CareMarks, *care, func(x ledger.CareMark) string { return x.ID })
		}
		if removeCareID != "" {
			*s = ledger.DeletePlan{CareMarks: []string{removeCareID}}.Apply(*s)
		}
	})
}

func (r *LedgerRepo) UpsertVisit(ctx context.Context, v ledger.Visit) error {
	if strings.TrimSpace(v.ID) == "" {
		return ErrIDRequired
	}
	return r.mutate(func(s *ledger.Snapshot) {
		s.Visits = upsert(s.Visits, v, func(x ledger.Visit) string { return x.ID })
	})
}

func (r *LedgerRepo) UpsertCareMark(ctx context.Context, m ledger.CareMark) error {
	if strings.TrimSpace(m.ID) == "" {
		return ErrIDRequired
	}
	return r.mutate(func(s *ledger.Snapshot) {
		s.CareMarks = upsert(s.CareMarks, m, func(x ledger.CareMark) string { return x.ID })
	})
}

func (r *LedgerRepo) Delete(ctx context.Context, plan ledger.DeletePlan) error {
	if plan.Empty() {
		return nil
	}
	return r.mutate(func(s *ledger.Snapshot) {
		*s = plan.Apply(*s)
	})
}

// mutate aplica fn sobre una copia; si persistir falla, el estado en memoria no cambia.
func (r *LedgerRepo) mutate(fn func(*ledger.Snapshot)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := Clone(r.snap)
	fn(&next)

	if r.onChange != nil {
		if err := r.onChange(next); err != nil {
			return err
		}
	}
	r.snap = next
	return nil
}

func upsert[T any](items []T, v T, id func(T) string) []T {
	key := id(v)
	for i := range items {
		if id(items[i]) == key {
			items[i] = v
			return items
		}
	}
	return append(items, v)
}

func emptySnapshot() ledger.Snapshot {
	return ledger.Snapshot{
		Owners:    []ledger.Owner{},
		Cats:      []ledger.Cat{},
		Stays:     []ledger.Stay{},
		Visits:    []ledger.Visit{},
		CareMarks: []ledger.CareMark{},
	}
}

// Clone copia las colecciones; nunca devuelve slices nil.
func Clone(s ledger.Snapshot) ledger.Snapshot {
	return ledger.Snapshot{
		Owners:    append(make([]ledger.Owner, 0, len(s.Owners)), s.Owners...),
		Cats:      append(make([]ledger.Cat, 0, len(s.Cats)), s.Cats...),
		Stays:     append(make([]ledger.Stay, 0, len(s.Stays)), s.Stays...),
		Visits:    append(make([]ledger.Visit, 0, len(s.Visits)), s.Visits...),
		CareMarks: append(make([]ledger.CareMark, 0, len(s.CareMarks)), s.CareMarks...),
	}
}
