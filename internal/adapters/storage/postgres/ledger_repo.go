package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/schedule"
)

// execer es *sql.DB o *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type LedgerRepo struct {
	db *sql.DB
}

func NewLedgerRepo(db *sql.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// Snapshot lee las cinco tablas dentro de una tx de solo lectura para que el
// resultado sea consistente.
func (r *LedgerRepo) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return ledger.Snapshot{}, err
	}
	defer func() { _ = tx.Rollback() }()

	snap := ledger.Snapshot{}
	if snap.Owners, err = listOwners(ctx, tx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Cats, err = listCats(ctx, tx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Stays, err = listStays(ctx, tx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.Visits, err = listVisits(ctx, tx); err != nil {
		return ledger.Snapshot{}, err
	}
	if snap.CareMarks, err = listCareMarks(ctx, tx); err != nil {
		return ledger.Snapshot{}, err
	}
	return snap, tx.Commit()
}

func (r *LedgerRepo) UpsertOwner(ctx context.Context, o ledger.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (id, name, contact, discount_percent, note, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			contact = EXCLUDED.contact,
			discount_percent = EXCLUDED.discount_percent,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at
	`,
		o.ID,
		o.Name,
		o.Contact,
		o.DiscountPercent,
		o.Note,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *LedgerRepo) UpsertCat(ctx context.Context, c ledger.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (id, name, owner_id, note, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			owner_id = EXCLUDED.owner_id,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at
	`,
		c.ID,
		c.Name,
		c.OwnerID,
		c.Note,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// SaveStay escribe la estadía y el cambio de su marca de cuidado en una tx.
func (r *LedgerRepo) SaveStay(ctx context.Context, s ledger.Stay, care *ledger.CareMark, removeCareID string) error {
	// fechas inválidas se rechazan antes de abrir la tx
	if _, _, err := dateRange(s.Start, s.End); err != nil {
		return err
	}
	if care != nil {
		if _, ok := schedule.ParseDate(care.Date); !ok {
			return ErrInvalidDate
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertStay(ctx, tx, s); err != nil {
		return err
	}
	if care != nil {
		if err := upsertCareMark(ctx, tx, *care); err != nil {
			return err
		}
	}
	if removeCareID != "" {
		if _, err := tx.ExecContext(ctx, `DELETE FROM care_marks WHERE id = $1`, removeCareID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func upsertStay(ctx context.Context, db execer, s ledger.Stay) error {
	start, end, err := dateRange(s.Start, s.End)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO stays (id, cat_id, type, start_date, end_date, unit_price, days, fee, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			cat_id = EXCLUDED.cat_id,
			type = EXCLUDED.type,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			unit_price = EXCLUDED.unit_price,
			days = EXCLUDED.days,
			fee = EXCLUDED.fee,
			updated_at = EXCLUDED.updated_at
	`,
		s.ID,
		s.CatID,
		string(s.Type),
		start,
		end,
		s.UnitPrice,
		s.Days,
		s.Fee,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *LedgerRepo) UpsertVisit(ctx context.Context, v ledger.Visit) error {
	start, end, err := dateRange(v.Start, v.End)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO visits (id, owner_id, start_date, end_date, frequency, custom_dates, unit_price, count, fee, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			frequency = EXCLUDED.frequency,
			custom_dates = EXCLUDED.custom_dates,
			unit_price = EXCLUDED.unit_price,
			count = EXCLUDED.count,
			fee = EXCLUDED.fee,
			updated_at = EXCLUDED.updated_at
	`,
		v.ID,
		v.OwnerID,
		start,
		end,
		string(v.Frequency),
		v.CustomDates,
		v.UnitPrice,
		v.Count,
		v.Fee,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *LedgerRepo) UpsertCareMark(ctx context.Context, m ledger.CareMark) error {
	return upsertCareMark(ctx, r.db, m)
}

func upsertCareMark(ctx context.Context, db execer, m ledger.CareMark) error {
	date, ok := schedule.ParseDate(m.Date)
	if !ok {
		return ErrInvalidDate
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO care_marks (id, cat_id, date, type, note, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			cat_id = EXCLUDED.cat_id,
			date = EXCLUDED.date,
			type = EXCLUDED.type,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at
	`,
		m.ID,
		m.CatID,
		date,
		string(m.Type),
		m.Note,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

// Delete aplica el plan completo en una tx.
func (r *LedgerRepo) Delete(ctx context.Context, plan ledger.DeletePlan) error {
	if plan.Empty() {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	steps := []struct {
		table string
		ids   []string
	}{
		{"care_marks", plan.CareMarks},
		{"stays", plan.Stays},
		{"visits", plan.Visits},
		{"cats", plan.Cats},
		{"owners", plan.Owners},
	}
	for _, s := range steps {
		if len(s.ids) == 0 {
			continue
		}
		// table viene de la lista fija de arriba, nunca del request.
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE id = ANY($1)`, s.ids); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ---- reads ----

func listOwners(ctx context.Context, tx *sql.Tx) ([]ledger.Owner, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, contact, discount_percent, note, created_at, updated_at
		FROM owners
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ledger.Owner, 0)
	for rows.Next() {
		var o ledger.Owner
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.Contact,
			&o.DiscountPercent,
			&o.Note,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func listCats(ctx context.Context, tx *sql.Tx) ([]ledger.Cat, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, owner_id, note, created_at, updated_at
		FROM cats
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ledger.Cat, 0)
	for rows.Next() {
		var c ledger.Cat
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.OwnerID,
			&c.Note,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func listStays(ctx context.Context, tx *sql.Tx) ([]ledger.Stay, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, cat_id, type, start_date, end_date, unit_price, days, fee, created_at, updated_at
		FROM stays
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ledger.Stay, 0)
	for rows.Next() {
		var s ledger.Stay
		var typ string
		var start, end time.Time
		if err := rows.Scan(
			&s.ID,
			&s.CatID,
			&typ,
			&start,
			&end,
			&s.UnitPrice,
			&s.Days,
			&s.Fee,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.Type = ledger.StayType(typ)
		s.Start = schedule.ToDateKey(start)
		s.End = schedule.ToDateKey(end)
		out = append(out, s)
	}
	return out, rows.Err()
}

func listVisits(ctx context.Context, tx *sql.Tx) ([]ledger.Visit, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, owner_id, start_date, end_date, frequency, custom_dates, unit_price, count, fee, created_at, updated_at
		FROM visits
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ledger.Visit, 0)
	for rows.Next() {
		var v ledger.Visit
		var freq string
		var start, end time.Time
		if err := rows.Scan(
			&v.ID,
			&v.OwnerID,
			&start,
			&end,
			&freq,
			&v.CustomDates,
			&v.UnitPrice,
			&v.Count,
			&v.Fee,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		v.Frequency = schedule.Frequency(freq)
		v.Start = schedule.ToDateKey(start)
		v.End = schedule.ToDateKey(end)
		out = append(out, v)
	}
	return out, rows.Err()
}

func listCareMarks(ctx context.Context, tx *sql.Tx) ([]ledger.CareMark, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, cat_id, date, type, note, created_at, updated_at
		FROM care_marks
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ledger.CareMark, 0)
	for rows.Next() {
		var m ledger.CareMark
		var typ string
		var date time.Time
		if err := rows.Scan(
			&m.ID,
			&m.CatID,
			&date,
			&typ,
			&m.Note,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.Type = ledger.CareType(typ)
		// ojo: DATE llega como time.Time a medianoche UTC
		m.Date = schedule.ToDateKey(date)
		out = append(out, m)
	}
	return out, rows.Err()
}

func dateRange(startKey, endKey string) (time.Time, time.Time, error) {
	start, ok := schedule.ParseDate(startKey)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, ok := schedule.ParseDate(endKey)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return start, end, nil
}
