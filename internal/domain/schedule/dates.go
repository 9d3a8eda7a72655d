package schedule

import (
	"strings"
	"time"
)

// DateLayout es el formato canónico de las claves de fecha (YYYY-MM-DD).
// Las claves van con ceros a la izquierda, así que compararlas como string
// equivale a compararlas como fechas.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
}

// ParseDate interpreta una fecha de calendario y la devuelve a medianoche UTC.
// Si viene con hora (RFC3339) se toma el día calendario de su propia zona.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return civil(t), true
		}
	}
	return time.Time{}, false
}

// ToDateKey devuelve la clave YYYY-MM-DD del día calendario de t en su propia zona.
func ToDateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeKey reescribe una fecha aceptada por ParseDate en su clave canónica.
func NormalizeKey(s string) (string, bool) {
	t, ok := ParseDate(s)
	if !ok {
		return "", false
	}
	return ToDateKey(t), true
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween cuenta días inclusive entre start y end, nunca menos de 1.
// Solo importa el día calendario; la hora y los cambios de horario no afectan.
func DaysBetween(start, end time.Time) int {
	// ambos a medianoche UTC; en segundos Unix no hay tope de 292 años como con Duration
	days := int((civil(end).Unix()-civil(start).Unix())/secondsPerDay) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DaysBetweenKeys es DaysBetween sobre claves. Devuelve 0 si falta alguna
// de las dos fechas (borrador incompleto).
func DaysBetweenKeys(start, end string) int {
	s, ok := ParseDate(start)
	if !ok {
		return 0
	}
	e, ok := ParseDate(end)
	if !ok {
		return 0
	}
	return DaysBetween(s, e)
}

// ParseCustomDates separa por coma ASCII o coma de ancho completo (，),
// recorta, descarta vacíos y deduplica manteniendo el primer orden visto.
func ParseCustomDates(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '，'
	})

	seen := map[string]struct{}{}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// DaysInMonth devuelve la cantidad de días del mes.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// InMonth indica si la clave cae en year/month.
func InMonth(key string, year int, month time.Month) bool {
	t, ok := ParseDate(key)
	if !ok {
		return false
	}
	return t.Year() == year && t.Month() == month
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
