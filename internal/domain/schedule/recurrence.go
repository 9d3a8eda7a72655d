package schedule

import (
	"errors"
	"strings"

	"github.com/teambition/rrule-go"
)

var (
	ErrUnknownFrequency = errors.New("unknown frequency")
)

// Frequency define cada cuánto se repite una visita a domicilio.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyAlternate Frequency = "alternate"
	FrequencyCustom    Frequency = "custom"
)

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", ErrUnknownFrequency
	}
	return f, nil
}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyAlternate, FrequencyCustom:
		return true
	default:
		return false
	}
}

func (f Frequency) Label() string {
	switch f {
	case FrequencyDaily:
		return "每天"
	case FrequencyAlternate:
		return "隔一天"
	case FrequencyCustom:
		return "自定义"
	default:
		return ""
	}
}

// interval: alternate salta de a 2 días, cualquier otro valor de a 1.
func (f Frequency) interval() int {
	if f == FrequencyAlternate {
		return 2
	}
	return 1
}

// Recurrence es la definición de fechas de una visita.
// CustomDates solo se usa con FrequencyCustom.
type Recurrence struct {
	Start       string
	End         string
	Frequency   Frequency
	CustomDates string
}

// ResolveDates expande la recurrencia en claves de fecha ordenadas.
// Es una función pura: llamarla dos veces da el mismo resultado.
//
//   - custom: las fechas de CustomDates normalizadas, en orden de entrada y sin repetidos.
//     Las entradas que no son fechas se descartan.
//   - daily/alternate: desde Start, de a 1 o 2 días, mientras sea <= End.
//     Sin Start/End o con End < Start el resultado es vacío.
func ResolveDates(r Recurrence) []string {
	if r.Frequency == FrequencyCustom {
		return resolveCustom(r.CustomDates)
	}

	start, ok := ParseDate(r.Start)
	if !ok {
		return []string{}
	}
	end, ok := ParseDate(r.End)
	if !ok || end.Before(start) {
		return []string{}
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.DAILY,
		Interval: r.Frequency.interval(),
		Dtstart:  start,
		Until:    end,
	})
	if err != nil {
		return []string{}
	}

	occ := rule.All()
	out := make([]string, 0, len(occ))
	for _, t := range occ {
		out = append(out, ToDateKey(t))
	}
	return out
}

// Count es la cantidad de fechas resueltas. Sin Start o End devuelve 0
// sin resolver nada, también para custom.
func Count(r Recurrence) int {
	if strings.TrimSpace(r.Start) == "" || strings.TrimSpace(r.End) == "" {
		return 0
	}
	return len(ResolveDates(r))
}

// DateSet devuelve las fechas resueltas como conjunto, para consultas por día.
func DateSet(r Recurrence) map[string]struct{} {
	dates := ResolveDates(r)
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func resolveCustom(text string) []string {
	raw := ParseCustomDates(text)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		key, ok := NormalizeKey(s)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
