package calendar

import (
	"fmt"
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/schedule"
)

// WeekdayLabels empieza en domingo, igual que la grilla del calendario.
var WeekdayLabels = [7]string{"日", "一", "二", "三", "四", "五", "六"}

type MonthView struct {
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Title    string    `json:"title"`
	Weekdays [7]string `json:"weekdays"`
	Cells    []DayCell `json:"cells"`
}

// DayCell es una celda de la grilla. Las celdas Blank solo alinean el día 1
// bajo su columna y no llevan datos.
type DayCell struct {
	Blank     bool       `json:"blank"`
	Date      string     `json:"date,omitempty"`
	Day       int        `json:"day,omitempty"`
	Weekday   string     `json:"weekday,omitempty"`
	Stays     []StayTag  `json:"stays,omitempty"`
	Visits    []VisitTag `json:"visits,omitempty"`
	ExtraCare []CareTag  `json:"extra_care,omitempty"`
}

type CareIcon struct {
	MarkID string          `json:"mark_id"`
	Type   ledger.CareType `json:"type"`
	Icon   string          `json:"icon"`
	Label  string          `json:"label"`
	Note   string          `json:"note,omitempty"`
}

type StayTag struct {
	StayID    string          `json:"stay_id"`
	CatID     string          `json:"cat_id"`
	CatName   string          `json:"cat_name"`
	Type      ledger.StayType `json:"type"`
	TypeLabel string          `json:"type_label"`
	Label     string          `json:"label"`
	Care      []CareIcon      `json:"care,omitempty"`
}

type VisitTag struct {
	VisitID   string `json:"visit_id"`
	OwnerID   string `json:"owner_id"`
	OwnerName string `json:"owner_name"`
	Label     string `json:"label"`
}

// CareTag agrupa las marcas de un gato que ese día no tiene estadía.
type CareTag struct {
	CatID   string     `json:"cat_id"`
	CatName string     `json:"cat_name"`
	Care    []CareIcon `json:"care"`
}

func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%d 年 %d 月", year, int(month))
}

// AggregateMonth arma la vista del mes. Referencias colgadas dan nombres
// vacíos, nunca un error.
func AggregateMonth(year int, month time.Month, snap ledger.Snapshot) MonthView {
	view := MonthView{
		Year:     year,
		Month:    int(month),
		Title:    MonthTitle(year, month),
		Weekdays: WeekdayLabels,
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	days := schedule.DaysInMonth(year, month)
	view.Cells = make([]DayCell, 0, offset+days)
	for i := 0; i < offset; i++ {
		view.Cells = append(view.Cells, DayCell{Blank: true})
	}

	catNames := make(map[string]string, len(snap.Cats))
	for _, c := range snap.Cats {
		catNames[c.ID] = c.Name
	}
	ownerNames := make(map[string]string, len(snap.Owners))
	for _, o := range snap.Owners {
		ownerNames[o.ID] = o.Name
	}

	// Las fechas de cada visita se resuelven una sola vez por mes.
	visitDates := make([]map[string]struct{}, len(snap.Visits))
	for i, v := range snap.Visits {
		visitDates[i] = schedule.DateSet(v.Recurrence())
	}

	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1)
		key := schedule.ToDateKey(date)

		cell := DayCell{
			Date:    key,
			Day:     d,
			Weekday: WeekdayLabels[date.Weekday()],
		}

		careByCat := map[string][]CareIcon{}
		careOrder := []string{}
		for _, m := range snap.CareMarks {
			if m.Date != key {
				continue
			}
			if _, ok := careByCat[m.CatID]; !ok {
				careOrder = append(careOrder, m.CatID)
			}
			careByCat[m.CatID] = append(careByCat[m.CatID], toCareIcon(m))
		}

		stayCats := map[string]struct{}{}
		for _, st := range snap.Stays {
			if !st.Contains(key) {
				continue
			}
			stayCats[st.CatID] = struct{}{}
			name := catNames[st.CatID]
			cell.Stays = append(cell.Stays, StayTag{
				StayID:    st.ID,
				CatID:     st.CatID,
				CatName:   name,
				Type:      st.Type,
				TypeLabel: st.Type.Label(),
				Label:     name + " · " + st.Type.Label(),
				Care:      careByCat[st.CatID],
			})
		}

		for i, v := range snap.Visits {
			if _, ok := visitDates[i][key]; !ok {
				continue
			}
			name := ownerNames[v.OwnerID]
			cell.Visits = append(cell.Visits, VisitTag{
				VisitID:   v.ID,
				OwnerID:   v.OwnerID,
				OwnerName: name,
				Label:     "上门 · " + name,
			})
		}

		for _, catID := range careOrder {
			if _, ok := stayCats[catID]; ok {
				continue
			}
			cell.ExtraCare = append(cell.ExtraCare, CareTag{
				CatID:   catID,
				CatName: catNames[catID],
				Care:    careByCat[catID],
			})
		}

		view.Cells = append(view.Cells, cell)
	}

	return view
}

// Day devuelve la celda del día d (1-based), salteando las celdas vacías.
func (v MonthView) Day(d int) (DayCell, bool) {
	for _, c := range v.Cells {
		if !c.Blank && c.Day == d {
			return c, true
		}
	}
	return DayCell{}, false
}

func toCareIcon(m ledger.CareMark) CareIcon {
	return CareIcon{
		MarkID: m.ID,
		Type:   m.Type,
		Icon:   m.Type.Icon(),
		Label:  m.Type.Label(),
		Note:   m.Note,
	}
}
