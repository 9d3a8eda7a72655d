package ledger

import (
	"errors"
	"strings"
)

var (
	ErrUnknownKind = errors.New("unknown record kind")
)

// Kind identifica una colección del ledger.
type Kind string

const (
	KindOwner    Kind = "owner"
	KindCat      Kind = "cat"
	KindStay     Kind = "stay"
	KindVisit    Kind = "visit"
	KindCareMark Kind = "care_mark"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindOwner, KindCat, KindStay, KindVisit, KindCareMark:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

// DeletePlan lista todos los ids a borrar en un solo paso.
// Se calcula completo antes de tocar el store, así no quedan cascadas a medias.
type DeletePlan struct {
	Owners    []string `json:"owners"`
	Cats      []string `json:"cats"`
	Stays     []string `json:"stays"`
	Visits    []string `json:"visits"`
	CareMarks []string `json:"care_marks"`
}

func (p DeletePlan) Count() int {
	return len(p.Owners) + len(p.Cats) + len(p.Stays) + len(p.Visits) + len(p.CareMarks)
}

func (p DeletePlan) Empty() bool {
	return p.Count() == 0
}

// PlanCascade calcula qué se borra al eliminar (kind, id):
//   - owner: el dueño, sus gatos y las estadías/marcas de esos gatos
//   - cat: el gato, sus estadías y sus marcas
//   - stay/visit/care_mark: solo el registro
//
// Las visitas del dueño no se tocan. Un id inexistente da un plan vacío.
func PlanCascade(snap Snapshot, kind Kind, id string) DeletePlan {
	plan := DeletePlan{}
	if strings.TrimSpace(id) == "" {
		return plan
	}

	switch kind {
	case KindOwner:
		if _, ok := snap.Owner(id); !ok {
			return plan
		}
		plan.Owners = []string{id}

		cats := map[string]struct{}{}
		for _, c := range snap.Cats {
			if c.OwnerID == id {
				cats[c.ID] = struct{}{}
				plan.Cats = append(plan.Cats, c.ID)
			}
		}
		plan.Stays, plan.CareMarks = dependentsOfCats(snap, cats)

	case KindCat:
		if _, ok := snap.Cat(id); !ok {
			return plan
		}
		plan.Cats = []string{id}
		plan.Stays, plan.CareMarks = dependentsOfCats(snap, map[string]struct{}{id: {}})

	case KindStay:
		if _, ok := snap.Stay(id); ok {
			plan.Stays = []string{id}
		}

	case KindVisit:
		if _, ok := snap.Visit(id); ok {
			plan.Visits = []string{id}
		}

	case KindCareMark:
		if _, ok := snap.CareMark(id); ok {
			plan.CareMarks = []string{id}
		}
	}

	return plan
}

func dependentsOfCats(snap Snapshot, cats map[string]struct{}) (stays, marks []string) {
	for _, s := range snap.Stays {
		if _, ok := cats[s.CatID]; ok {
			stays = append(stays, s.ID)
		}
	}
	for _, m := range snap.CareMarks {
		if _, ok := cats[m.CatID]; ok {
			marks = append(marks, m.ID)
		}
	}
	return stays, marks
}

// Apply aplica el plan sobre un snapshot en memoria y devuelve el resultado.
// Lo usan los stores que guardan las colecciones completas.
func (p DeletePlan) Apply(snap Snapshot) Snapshot {
	drop := func(ids []string) map[string]struct{} {
		m := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			m[id] = struct{}{}
		}
		return m
	}
	owners, cats, stays, visits, marks := drop(p.Owners), drop(p.Cats), drop(p.Stays), drop(p.Visits), drop(p.CareMarks)

	out := Snapshot{
		Owners:    make([]Owner, 0, len(snap.Owners)),
		Cats:      make([]Cat, 0, len(snap.Cats)),
		Stays:     make([]Stay, 0, len(snap.Stays)),
		Visits:    make([]Visit, 0, len(snap.Visits)),
		CareMarks: make([]CareMark, 0, len(snap.CareMarks)),
	}
	for _, o := range snap.Owners {
		if _, ok := owners[o.ID]; !ok {
			out.Owners = append(out.Owners, o)
		}
	}
	for _, c := range snap.Cats {
		if _, ok := cats[c.ID]; !ok {
			out.Cats = append(out.Cats, c)
		}
	}
	for _, s := range snap.Stays {
		if _, ok := stays[s.ID]; !ok {
			out.Stays = append(out.Stays, s)
		}
	}
	for _, v := range snap.Visits {
		if _, ok := visits[v.ID]; !ok {
			out.Visits = append(out.Visits, v)
		}
	}
	for _, m := range snap.CareMarks {
		if _, ok := marks[m.ID]; !ok {
			out.CareMarks = append(out.CareMarks, m)
		}
	}
	return out
}
