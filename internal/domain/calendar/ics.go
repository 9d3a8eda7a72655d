package calendar

import (
	"strings"
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/domain/schedule"

	ical "github.com/arran4/golang-ical"
)

const icsProductID = "-//pet-boarding-ledger//calendar//ZH"

// ExportICS genera un VCALENDAR con eventos de día completo:
//   - una estadía = un evento de start a end (DTEND exclusivo, end+1)
//   - una visita = un evento por fecha resuelta
//   - una marca de cuidado = un evento en su día
func ExportICS(snap ledger.Snapshot, money pricing.Formatter, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("猫咪寄养")

	catNames := make(map[string]string, len(snap.Cats))
	for _, c := range snap.Cats {
		catNames[c.ID] = c.Name
	}
	ownerNames := make(map[string]string, len(snap.Owners))
	for _, o := range snap.Owners {
		ownerNames[o.ID] = o.Name
	}

	stamp = stamp.UTC()

	for _, st := range snap.Stays {
		start, ok := schedule.ParseDate(st.Start)
		if !ok {
			continue
		}
		end, ok := schedule.ParseDate(st.End)
		if !ok || end.Before(start) {
			end = start
		}

		ev := cal.AddEvent("stay-" + st.ID)
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(end.AddDate(0, 0, 1))
		ev.SetSummary(catNames[st.CatID] + " · " + st.Type.Label())
		ev.SetDescription(money.Format(st.Fee))
	}

	for _, v := range snap.Visits {
		summary := "上门 · " + ownerNames[v.OwnerID]
		for _, key := range schedule.ResolveDates(v.Recurrence()) {
			day, ok := schedule.ParseDate(key)
			if !ok {
				continue
			}
			ev := cal.AddEvent("visit-" + v.ID + "-" + key)
			ev.SetDtStampTime(stamp)
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			ev.SetSummary(summary)
		}
	}

	for _, m := range snap.CareMarks {
		day, ok := schedule.ParseDate(m.Date)
		if !ok {
			continue
		}
		ev := cal.AddEvent("care-" + m.ID)
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetSummary(strings.TrimSpace(m.Type.Icon() + " " + catNames[m.CatID] + " " + m.Type.Label()))
		if m.Note != "" {
			ev.SetDescription(m.Note)
		}
	}

	return cal.Serialize()
}
