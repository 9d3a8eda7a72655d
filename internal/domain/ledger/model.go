package ledger

import (
	"errors"
	"strings"
	"time"

	"pet-boarding-ledger/internal/domain/schedule"
)

var (
	ErrUnknownStayType = errors.New("unknown stay type")
	ErrUnknownCareType = errors.New("unknown care type")
)

// StayType define el tipo de alojamiento.
// @Enum single, group
type StayType string

const (
	StaySingle StayType = "single" // habitación individual
	StayGroup  StayType = "group"  // guardería compartida
)

func ParseStayType(s string) (StayType, error) {
	t := StayType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case StaySingle, StayGroup:
		return t, nil
	default:
		return "", ErrUnknownStayType
	}
}

func (t StayType) Label() string {
	if t == StaySingle {
		return "单间"
	}
	return "幼儿园"
}

// CareType define el tipo de cuidado especial marcado en un día.
// @Enum attention, medical, medicine, grooming
type CareType string

const (
	CareAttention CareType = "attention"
	CareMedical   CareType = "medical"
	CareMedicine  CareType = "medicine"
	CareGrooming  CareType = "grooming"
)

type careOption struct {
	label string
	icon  string
}

var careOptions = map[CareType]careOption{
	CareAttention: {label: "重点关注", icon: "⭐"},
	CareMedical:   {label: "医疗照顾", icon: "🏥"},
	CareMedicine:  {label: "喂药", icon: "💊"},
	CareGrooming:  {label: "清洁护理", icon: "🧴"},
}

// CareTypes en el orden en que se ofrecen en formularios.
var CareTypes = []CareType{CareAttention, CareMedical, CareMedicine, CareGrooming}

func ParseCareType(s string) (CareType, error) {
	t := CareType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := careOptions[t]; !ok {
		return "", ErrUnknownCareType
	}
	return t, nil
}

// Label y Icon toleran valores viejos/desconocidos guardados en disco.
func (t CareType) Label() string {
	if o, ok := careOptions[t]; ok {
		return o.label
	}
	return "特殊照顾"
}

func (t CareType) Icon() string {
	if o, ok := careOptions[t]; ok {
		return o.icon
	}
	return "⭐"
}

// Los tags JSON son las claves del documento guardado
// (owners/cats/stays/visits/careMarks) que lee el file store.

type Owner struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Contact         string  `json:"contact"`
	DiscountPercent float64 `json:"discountPercent"` // 0 = sin descuento
	Note            string  `json:"note"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Cat struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"` // puede estar vacío o apuntar a un dueño borrado
	Note    string `json:"note"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stay ocupa cada día de [Start, End] inclusive. Days y Fee son derivados.
type Stay struct {
	ID        string   `json:"id"`
	CatID     string   `json:"catId"`
	Type      StayType `json:"type"`
	Start     string   `json:"start"` // YYYY-MM-DD
	End       string   `json:"end"`   // YYYY-MM-DD
	UnitPrice float64  `json:"unitPrice"`
	Days      int      `json:"days"`
	Fee       float64  `json:"fee"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contains compara claves como string; vale porque son YYYY-MM-DD con ceros.
func (s Stay) Contains(dateKey string) bool {
	return dateKey >= s.Start && dateKey <= s.End
}

type Visit struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"ownerId"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Frequency   schedule.Frequency `json:"frequency"`
	CustomDates string             `json:"customDates"`
	UnitPrice   float64            `json:"unitPrice"`
	Count       int                `json:"count"`
	Fee         float64            `json:"fee"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (v Visit) Recurrence() schedule.Recurrence {
	return schedule.Recurrence{
		Start:       v.Start,
		End:         v.End,
		Frequency:   v.Frequency,
		CustomDates: v.CustomDates,
	}
}

// CareMark es independiente de las estadías: se asocia a gato + día.
type CareMark struct {
	ID    string   `json:"id"`
	CatID string   `json:"catId"`
	Date  string   `json:"date"`
	Type  CareType `json:"type"`
	Note  string   `json:"note"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot son las cinco colecciones completas, en orden de alta.
type Snapshot struct {
	Owners    []Owner    `json:"owners"`
	Cats      []Cat      `json:"cats"`
	Stays     []Stay     `json:"stays"`
	Visits    []Visit    `json:"visits"`
	CareMarks []CareMark `json:"careMarks"`
}

func (s Snapshot) Owner(id string) (Owner, bool) {
	if id == "" {
		return Owner{}, false
	}
	for _, o := range s.Owners {
		if o.ID == id {
			return o, true
		}
	}
	return Owner{}, false
}

func (s Snapshot) Cat(id string) (Cat, bool) {
	if id == "" {
		return Cat{}, false
	}
	for _, c := range s.Cats {
		if c.ID == id {
			return c, true
		}
	}
	return Cat{}, false
}

func (s Snapshot) Stay(id string) (Stay, bool) {
	for _, st := range s.Stays {
		if st.ID == id {
			return st, true
		}
	}
	return Stay{}, false
}

func (s Snapshot) Visit(id string) (Visit, bool) {
	for _, v := range s.Visits {
		if v.ID == id {
			return v, true
		}
	}
	return Visit{}, false
}

func (s Snapshot) CareMark(id string) (CareMark, bool) {
	for _, m := range s.CareMarks {
		if m.ID == id {
			return m, true
		}
	}
	return CareMark{}, false
}

// DiscountForCat resuelve gato -> dueño -> descuento. Referencias colgadas dan 0.
func (s Snapshot) DiscountForCat(catID string) float64 {
	c, ok := s.Cat(catID)
	if !ok {
		return 0
	}
	o, ok := s.Owner(c.OwnerID)
	if !ok {
		return 0
	}
	return o.DiscountPercent
}
