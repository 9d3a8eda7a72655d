package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/domain/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo     Repository
	now      func() time.Time
	newID    func() string
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		newID:    uuid.NewString,
		validate: validator.New(),
	}
}

// ---- inputs ----

// Un ID vacío crea; un ID existente reemplaza.

type OwnerInput struct {
	ID              string
	Name            string  `validate:"required"`
	Contact         string
	DiscountPercent float64 `validate:"gte=0,lte=100"`
	Note            string
}

type CatInput struct {
	ID      string
	Name    string `validate:"required"`
	OwnerID string
	Note    string
}

type StayInput struct {
	ID        string
	CatID     string  `validate:"required"`
	Type      string  `validate:"required"`
	Start     string  `validate:"required"`
	End       string  `validate:"required"`
	UnitPrice float64 `validate:"gte=0"`

	// Care es la marca de cuidado que se edita junto con la estadía (opcional).
	Care *CareInput
}

// CareInput: con Date y Type se crea/actualiza la marca para el gato de la estadía.
// Con ID y sin Date o Type se borra esa marca.
type CareInput struct {
	ID   string
	Date string
	Type string
	Note string
}

type VisitInput struct {
	ID          string
	OwnerID     string  `validate:"required"`
	Start       string  `validate:"required"`
	End         string  `validate:"required"`
	Frequency   string  `validate:"required"`
	CustomDates string
	UnitPrice   float64 `validate:"gte=0"`
}

type CareMarkInput struct {
	ID    string
	CatID string `validate:"required"`
	Date  string `validate:"required"`
	Type  string `validate:"required"`
	Note  string
}

// StaySaved es la estadía guardada y, si corresponde, su marca de cuidado.
type StaySaved struct {
	Stay        Stay
	Care        *CareMark
	CareRemoved string
}

// ---- reads ----

func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.repo.Snapshot(ctx)
}

func (s *Service) GetOwner(ctx context.Context, id string) (Owner, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Owner{}, err
	}
	o, ok := snap.Owner(strings.TrimSpace(id))
	if !ok {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (s *Service) GetCat(ctx context.Context, id string) (Cat, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Cat{}, err
	}
	c, ok := snap.Cat(strings.TrimSpace(id))
	if !ok {
		return Cat{}, ErrNotFound
	}
	return c, nil
}

// GetStay devuelve la estadía y la marca de cuidado del mismo gato en el día
// de inicio, que es la que se edita junto con la estadía.
func (s *Service) GetStay(ctx context.Context, id string) (Stay, *CareMark, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Stay{}, nil, err
	}
	st, ok := snap.Stay(strings.TrimSpace(id))
	if !ok {
		return Stay{}, nil, ErrNotFound
	}
	for _, m := range snap.CareMarks {
		if m.CatID == st.CatID && m.Date == st.Start {
			m := m
			return st, &m, nil
		}
	}
	return st, nil, nil
}

func (s *Service) GetVisit(ctx context.Context, id string) (Visit, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Visit{}, err
	}
	v, ok := snap.Visit(strings.TrimSpace(id))
	if !ok {
		return Visit{}, ErrNotFound
	}
	return v, nil
}

func (s *Service) GetCareMark(ctx context.Context, id string) (CareMark, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return CareMark{}, err
	}
	m, ok := snap.CareMark(strings.TrimSpace(id))
	if !ok {
		return CareMark{}, ErrNotFound
	}
	return m, nil
}

// ---- writes ----

func (s *Service) SaveOwner(ctx context.Context, in OwnerInput) (Owner, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return Owner{}, err
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Owner{}, err
	}

	now := s.now()
	o := Owner{
		ID:              in.ID,
		Name:            in.Name,
		Contact:         strings.TrimSpace(in.Contact),
		DiscountPercent: in.DiscountPercent,
		Note:            strings.TrimSpace(in.Note),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if o.ID == "" {
		o.ID = s.newID()
	} else {
		prev, ok := snap.Owner(o.ID)
		if !ok {
			return Owner{}, ErrNotFound
		}
		o.CreatedAt = prev.CreatedAt
	}

	if err := s.repo.UpsertOwner(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) SaveCat(ctx context.Context, in CatInput) (Cat, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	if err := s.check(in); err != nil {
		return Cat{}, err
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Cat{}, err
	}

	now := s.now()
	c := Cat{
		ID:        in.ID,
		Name:      in.Name,
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.ID == "" {
		c.ID = s.newID()
	} else {
		prev, ok := snap.Cat(c.ID)
		if !ok {
			return Cat{}, ErrNotFound
		}
		c.CreatedAt = prev.CreatedAt
	}

	if err := s.repo.UpsertCat(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

// SaveStay deriva days y fee. El descuento se busca gato -> dueño al momento
// de calcular; un gato o dueño inexistente es 0%.
func (s *Service) SaveStay(ctx context.Context, in StayInput) (StaySaved, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.CatID = strings.TrimSpace(in.CatID)
	in.Type = strings.TrimSpace(in.Type)
	in.Start = strings.TrimSpace(in.Start)
	in.End = strings.TrimSpace(in.End)
	if err := s.check(in); err != nil {
		return StaySaved{}, err
	}

	typ, err := ParseStayType(in.Type)
	if err != nil {
		return StaySaved{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start, ok := schedule.NormalizeKey(in.Start)
	if !ok {
		return StaySaved{}, fmt.Errorf("%w: start must be YYYY-MM-DD", ErrInvalidInput)
	}
	end, ok := schedule.NormalizeKey(in.End)
	if !ok {
		return StaySaved{}, fmt.Errorf("%w: end must be YYYY-MM-DD", ErrInvalidInput)
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return StaySaved{}, err
	}

	now := s.now()
	days := schedule.DaysBetweenKeys(start, end)
	st := Stay{
		ID:        in.ID,
		CatID:     in.CatID,
		Type:      typ,
		Start:     start,
		End:       end,
		UnitPrice: in.UnitPrice,
		Days:      days,
		Fee:       pricing.StayFee(in.UnitPrice, days, snap.DiscountForCat(in.CatID)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if st.ID == "" {
		st.ID = s.newID()
	} else {
		prev, ok := snap.Stay(st.ID)
		if !ok {
			return StaySaved{}, ErrNotFound
		}
		st.CreatedAt = prev.CreatedAt
	}

	// Validar la marca antes de escribir nada.
	careMark, removeID, err := s.stayCare(snap, st.CatID, in.Care, now)
	if err != nil {
		return StaySaved{}, err
	}

	// Una marca que ya no existe no se informa como borrada.
	if removeID != "" && PlanCascade(snap, KindCareMark, removeID).Empty() {
		removeID = ""
	}

	if err := s.repo.SaveStay(ctx, st, careMark, removeID); err != nil {
		return StaySaved{}, err
	}
	return StaySaved{Stay: st, Care: careMark, CareRemoved: removeID}, nil
}

func (s *Service) stayCare(snap Snapshot, catID string, in *CareInput, now time.Time) (*CareMark, string, error) {
	if in == nil {
		return nil, "", nil
	}
	id := strings.TrimSpace(in.ID)
	date := strings.TrimSpace(in.Date)
	typ := strings.TrimSpace(in.Type)

	if date == "" || typ == "" {
		if id != "" {
			return nil, id, nil
		}
		return nil, "", nil
	}

	ct, err := ParseCareType(typ)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	key, ok := schedule.NormalizeKey(date)
	if !ok {
		return nil, "", fmt.Errorf("%w: care date must be YYYY-MM-DD", ErrInvalidInput)
	}

	m := CareMark{
		ID:        id,
		CatID:     catID,
		Date:      key,
		Type:      ct,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if m.ID == "" {
		m.ID = s.newID()
	} else if prev, ok := snap.CareMark(m.ID); ok {
		m.CreatedAt = prev.CreatedAt
	}
	return &m, "", nil
}

func (s *Service) SaveVisit(ctx context.Context, in VisitInput) (Visit, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.Start = strings.TrimSpace(in.Start)
	in.End = strings.TrimSpace(in.End)
	in.Frequency = strings.TrimSpace(in.Frequency)
	if err := s.check(in); err != nil {
		return Visit{}, err
	}

	freq, err := schedule.ParseFrequency(in.Frequency)
	if err != nil {
		return Visit{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start, ok := schedule.NormalizeKey(in.Start)
	if !ok {
		return Visit{}, fmt.Errorf("%w: start must be YYYY-MM-DD", ErrInvalidInput)
	}
	end, ok := schedule.NormalizeKey(in.End)
	if !ok {
		return Visit{}, fmt.Errorf("%w: end must be YYYY-MM-DD", ErrInvalidInput)
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Visit{}, err
	}

	now := s.now()
	v := Visit{
		ID:          in.ID,
		OwnerID:     in.OwnerID,
		Start:       start,
		End:         end,
		Frequency:   freq,
		CustomDates: strings.TrimSpace(in.CustomDates),
		UnitPrice:   in.UnitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	v.Count = schedule.Count(v.Recurrence())
	v.Fee = pricing.VisitFee(v.UnitPrice, v.Count)

	if v.ID == "" {
		v.ID = s.newID()
	} else {
		prev, ok := snap.Visit(v.ID)
		if !ok {
			return Visit{}, ErrNotFound
		}
		v.CreatedAt = prev.CreatedAt
	}

	if err := s.repo.UpsertVisit(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) SaveCareMark(ctx context.Context, in CareMarkInput) (CareMark, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.CatID = strings.TrimSpace(in.CatID)
	in.Date = strings.TrimSpace(in.Date)
	in.Type = strings.TrimSpace(in.Type)
	if err := s.check(in); err != nil {
		return CareMark{}, err
	}

	ct, err := ParseCareType(in.Type)
	if err != nil {
		return CareMark{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	date, ok := schedule.NormalizeKey(in.Date)
	if !ok {
		return CareMark{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return CareMark{}, err
	}

	now := s.now()
	m := CareMark{
		ID:        in.ID,
		CatID:     in.CatID,
		Date:      date,
		Type:      ct,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if m.ID == "" {
		m.ID = s.newID()
	} else {
		prev, ok := snap.CareMark(m.ID)
		if !ok {
			return CareMark{}, ErrNotFound
		}
		m.CreatedAt = prev.CreatedAt
	}

	if err := s.repo.UpsertCareMark(ctx, m); err != nil {
		return CareMark{}, err
	}
	return m, nil
}

// Delete borra el registro y todo lo que depende de él (ver PlanCascade)
// y devuelve el plan aplicado.
func (s *Service) Delete(ctx context.Context, kind Kind, id string) (DeletePlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DeletePlan{}, ErrInvalidInput
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return DeletePlan{}, err
	}

	plan := PlanCascade(snap, kind, id)
	if plan.Empty() {
		return DeletePlan{}, ErrNotFound
	}
	if err := s.repo.Delete(ctx, plan); err != nil {
		return DeletePlan{}, err
	}
	return plan, nil
}

// ---- quotes (borradores de formulario) ----

type StayDraft struct {
	CatID     string
	Start     string
	End       string
	UnitPrice float64
}

type StayQuote struct {
	Days            int
	DiscountPercent float64
	Fee             float64
}

// QuoteStay recalcula days/fee de un borrador. Con alguna fecha vacía, days = 0.
func (s *Service) QuoteStay(ctx context.Context, d StayDraft) (StayQuote, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return StayQuote{}, err
	}
	days := schedule.DaysBetweenKeys(d.Start, d.End)
	discount := snap.DiscountForCat(strings.TrimSpace(d.CatID))
	return StayQuote{
		Days:            days,
		DiscountPercent: discount,
		Fee:             pricing.StayFee(d.UnitPrice, days, discount),
	}, nil
}

type VisitDraft struct {
	Start       string
	End         string
	Frequency   string
	CustomDates string
	UnitPrice   float64
}

type VisitQuote struct {
	Count int
	Dates []string
	Fee   float64
}

func QuoteVisit(d VisitDraft) (VisitQuote, error) {
	freq, err := schedule.ParseFrequency(d.Frequency)
	if err != nil {
		return VisitQuote{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	r := schedule.Recurrence{
		Start:       strings.TrimSpace(d.Start),
		End:         strings.TrimSpace(d.End),
		Frequency:   freq,
		CustomDates: strings.TrimSpace(d.CustomDates),
	}
	count := schedule.Count(r)
	dates := []string{}
	if count > 0 {
		dates = schedule.ResolveDates(r)
	}
	return VisitQuote{
		Count: count,
		Dates: dates,
		Fee:   pricing.VisitFee(d.UnitPrice, count),
	}, nil
}

func (s *Service) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
