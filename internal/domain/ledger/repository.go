package ledger

import "context"

// Repository es el record store. Upsert crea o reemplaza por ID;
// DeletePlan se aplica completo o no se aplica. SaveStay escribe la estadía
// junto con el cambio de su marca de cuidado: todo o nada.
type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)

	UpsertOwner(ctx context.Context, o Owner) error
	UpsertCat(ctx context.Context, c Cat) error
	SaveStay(ctx context.Context, s Stay, care *CareMark, removeCareID string) error
	UpsertVisit(ctx context.Context, v Visit) error
	UpsertCareMark(ctx context.Context, m CareMark) error

	Delete(ctx context.Context, plan DeletePlan) error
}
